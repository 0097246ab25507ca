// Package rawread implements the incremental luxem parse engine.
//
// A Reader turns a byte stream into an ordered sequence of structural events
// (object/array begin and end, key, type, primitive) delivered through
// caller-supplied callbacks. Input arrives in arbitrary chunks via Feed;
// a chunk may end in the middle of a token and the partial token is carried
// in an internal pending buffer, so feeding a document in any chunking
// yields the same event sequence as feeding it whole. Every tokenizer step
// is re-entrant from serialized state alone; no call stack is suspended
// between chunks.
//
// Errors are disjoint in kind: malformed input produces a
// *format.FormatError carrying the byte offset of the problem, while an
// error returned by a callback aborts the feed and is surfaced verbatim so
// the caller can recover the exact failure it raised. Either kind poisons
// the Reader; subsequent calls fail immediately.
//
// Readers hold no internal lock and must not be invoked concurrently.
package rawread
