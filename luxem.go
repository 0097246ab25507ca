// Package luxem provides a streaming, callback-driven codec for the luxem
// textual structured-data format: a generalization of JSON with per-value
// type tags and a reversible binary-to-text encoding.
//
// luxem documents are processed incrementally in bounded-size chunks; no
// whole-document tree is ever materialized. The module is organized as:
//
//   - rawread: the incremental parse engine. Bytes go in through Feed (or a
//     blocking source through FeedReader) and come out as an ordered event
//     sequence delivered to caller callbacks.
//   - rawwrite: the sequencing-validated write engine. Event calls go in,
//     validated against the current structural position, and bytes come out
//     through a buffer, stream, or callback sink, optionally pretty-printed.
//   - ascii16: the pure binary-to-text codec used for arbitrary byte
//     payloads inside documents.
//   - compress: stream compression codecs (zstd, s2, lz4) that compose with
//     the engines' sources and sinks.
//   - format: the shared error model. Malformed content is a
//     *format.FormatError with a byte offset; failures raised by caller
//     code pass through verbatim.
//
// # Basic usage
//
// Parsing:
//
//	r := rawread.NewReader(rawread.Callbacks{
//	    Key:       func(text []byte) error { fmt.Printf("key %s\n", text); return nil },
//	    Primitive: func(text []byte) error { fmt.Printf("value %s\n", text); return nil },
//	})
//	_, err := r.Feed([]byte(`{greeting:"hello",}`), true)
//
// Writing:
//
//	w := rawwrite.NewBufferWriter(rawwrite.WithPretty('\t', 1))
//	_ = w.ObjectBegin()
//	_ = w.Key("greeting")
//	_ = w.Primitive("hello")
//	_ = w.ObjectEnd()
//	out, err := w.Dump()
//
// This package adds document-level conveniences built from those engines.
package luxem

import (
	"github.com/cespare/xxhash/v2"

	"github.com/rendaw/luxem-go/rawread"
	"github.com/rendaw/luxem-go/rawwrite"
)

// Valid reports whether data is a well-formed luxem document.
func Valid(data []byte) bool {
	r := rawread.NewReader(rawread.Callbacks{})
	_, err := r.Feed(data, true)

	return err == nil
}

// Canonical re-encodes data in minimal form: no whitespace, trailing commas,
// binary payloads in ascii16 only where the bytes are not plain text. Two
// documents with the same structure and content share one canonical form.
// The document must hold a single root value.
func Canonical(data []byte) ([]byte, error) {
	w := rawwrite.NewBufferWriter()
	defer w.Release()
	if err := transcode(data, w); err != nil {
		return nil, err
	}

	return w.Dump()
}

// Indent re-encodes data pretty-printed, indenting each nesting level with
// multiple repetitions of indentChar. The document must hold a single root
// value.
func Indent(data []byte, indentChar byte, multiple int) ([]byte, error) {
	w := rawwrite.NewBufferWriter(rawwrite.WithPretty(indentChar, multiple))
	defer w.Release()
	if err := transcode(data, w); err != nil {
		return nil, err
	}

	return w.Dump()
}

// Digest returns the xxHash64 of data's canonical encoding. Documents that
// differ only in whitespace, quoting, or payload spelling share a digest.
func Digest(data []byte) (uint64, error) {
	h := xxhash.New()
	w := rawwrite.NewStreamWriter(h)
	if err := transcode(data, w); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

// transcode replays data's event sequence into w.
func transcode(data []byte, w *rawwrite.Writer) error {
	r := rawread.NewReader(rawread.Callbacks{
		ObjectBegin: w.ObjectBegin,
		ObjectEnd:   w.ObjectEnd,
		ArrayBegin:  w.ArrayBegin,
		ArrayEnd:    w.ArrayEnd,
		Key:         w.KeyBytes,
		Type:        w.TypeBytes,
		Primitive:   w.PrimitiveBytes,
	})
	_, err := r.Feed(data, true)

	return err
}
