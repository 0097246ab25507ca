// Package rawwrite implements the luxem write engine: a sequencing-validated
// event-to-bytes encoder.
//
// A Writer is driven by the same seven events the read engine produces
// (object/array begin and end, key, type, primitive). Before any byte is
// emitted for a call, the writer validates that the event is legal in the
// current position; violations return a *format.FormatError and leave the
// sink untouched for that call. Output goes to one of three sinks: an
// in-memory growable buffer (retrieved with Dump), a blocking io.Writer, or
// a caller-supplied callback. Failures raised by the stream or callback sink
// are returned verbatim as pass-through errors.
//
// Writers are single-writer, synchronous, and not safe for concurrent use.
// Any returned error poisons the writer; subsequent calls fail immediately
// with the same error.
package rawwrite
