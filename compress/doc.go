// Package compress provides stream compression codecs for luxem documents.
//
// luxem is processed incrementally in bounded chunks, so compression is
// offered in stream form rather than as whole-buffer transforms: NewReader
// wraps a compressed source for feeding into the read engine, and NewWriter
// wraps a destination for use as a write-engine stream sink.
//
// Supported algorithms:
//   - None: no compression (wrapping only)
//   - Zstd: excellent compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression
//
// The Zstd codec has two implementations selected at build time: the default
// pure-Go encoder from klauspost/compress, and a cgo variant backed by
// valyala/gozstd behind the "gozstd" build tag.
package compress
