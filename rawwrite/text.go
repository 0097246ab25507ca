package rawwrite

import (
	"unicode/utf8"

	"github.com/rendaw/luxem-go/ascii16"
)

// appendToken appends text as a luxem token: bare when every byte is
// word-safe, otherwise quoted with backslash escapes.
func appendToken(dst []byte, text string) []byte {
	if wordSafe(text) {
		return append(dst, text...)
	}

	dst = append(dst, '"')
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '"' || c == '\\' {
			dst = append(dst, '\\')
		}
		dst = append(dst, c)
	}

	return append(dst, '"')
}

// appendTokenBytes appends arbitrary bytes as a luxem token. Plain text is
// written as a regular token; anything else is written in ascii16 form,
// which the read engine decodes back to the original bytes.
func appendTokenBytes(dst []byte, b []byte) []byte {
	if plainText(b) {
		return appendToken(dst, string(b))
	}

	dst = append(dst, '<')
	dst = ascii16.AppendEncode(dst, b)

	return append(dst, '>')
}

// wordSafe reports whether text may be written bare, without quoting.
func wordSafe(text string) bool {
	if len(text) == 0 {
		return false
	}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ', '\t', '\n', '\r',
			'{', '}', '[', ']', '(', ')',
			':', ',', '"', '\\', '<', '>':
			return false
		}
	}

	return true
}

// plainText reports whether b is valid UTF-8 with no control bytes, i.e.
// representable as a bare or quoted token without loss.
func plainText(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, c := range b {
		if c < 0x20 && c != '\t' && c != '\n' && c != '\r' {
			return false
		}
	}

	return true
}
