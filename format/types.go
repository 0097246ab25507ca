// Package format defines the shared error model and enum types used by the
// luxem read, write and compression packages.
//
// Every fallible luxem operation returns one of two disjoint error kinds:
//
//   - *FormatError: malformed input or an invalid call sequence. Always
//     carries a message and the byte offset at which the problem was
//     detected.
//   - pass-through: a failure raised by caller code (an event callback or a
//     write sink). The engines return such errors verbatim, without wrapping
//     or reformatting, so the caller recovers the exact value it raised.
package format

import (
	"errors"
	"fmt"
)

// FormatError describes malformed luxem content or an operation invoked in an
// illegal sequence.
type FormatError struct {
	// Msg describes what was expected versus what was found.
	Msg string
	// Offset is the byte position the error was detected at: the running
	// consumed count for readers, the number of bytes emitted so far for
	// writers, and the index of the first bad character for ascii16.
	Offset uint64
}

// Error renders the message with its byte offset appended.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s [offset %d]", e.Msg, e.Offset)
}

// Errorf creates a FormatError at the given offset with a formatted message.
func Errorf(offset uint64, msg string, args ...any) *FormatError {
	return &FormatError{Msg: fmt.Sprintf(msg, args...), Offset: offset}
}

// AsFormatError returns the *FormatError in err's chain, or nil if err does
// not represent a format problem.
func AsFormatError(err error) *FormatError {
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe
	}

	return nil
}

// IsPassThrough reports whether err originated in caller code (an event
// callback, write sink, or blocking source) rather than in the engine.
// Pass-through errors are never wrapped; err is the exact value the caller
// raised and may be compared with errors.Is against the caller's sentinel.
func IsPassThrough(err error) bool {
	return err != nil && AsFormatError(err) == nil
}

// CompressionType identifies a stream compression codec for luxem documents.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
