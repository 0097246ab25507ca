// Package ascii16 implements luxem's reversible binary-to-text encoding.
//
// Each input byte maps to exactly two symbols from a fixed 16-letter
// alphabet ('a' through 'p'), the high nibble first. The output is therefore
// always twice the length of the input, contains no delimiters, and never
// requires escaping inside a luxem document. Both directions are pure
// functions with no shared state.
package ascii16

import (
	"github.com/rendaw/luxem-go/format"
)

// Alphabet is the 16-symbol encoding alphabet. Symbol i encodes nibble i.
const Alphabet = "abcdefghijklmnop"

// EncodedLen returns the encoded length of n source bytes.
func EncodedLen(n int) int { return n * 2 }

// DecodedLen returns the decoded length of n encoded symbols.
// n must be even; DecodeString reports odd lengths as errors.
func DecodedLen(n int) int { return n / 2 }

// EncodeToString encodes src into its ascii16 text form. Encoding is total
// and never fails; len(result) == 2*len(src).
func EncodeToString(src []byte) string {
	return string(AppendEncode(make([]byte, 0, EncodedLen(len(src))), src))
}

// AppendEncode appends the ascii16 encoding of src to dst and returns the
// extended slice.
func AppendEncode(dst, src []byte) []byte {
	for _, b := range src {
		dst = append(dst, Alphabet[b>>4], Alphabet[b&0x0f])
	}

	return dst
}

// DecodeString decodes ascii16 text back into bytes.
//
// It fails with a *format.FormatError when the input has odd length (offset
// = len(s), where the missing symbol would start) or contains a character
// outside the alphabet (offset = index of the first such character).
func DecodeString(s string) ([]byte, error) {
	return AppendDecode(make([]byte, 0, DecodedLen(len(s))), []byte(s))
}

// AppendDecode appends the decoded form of src to dst and returns the
// extended slice. Error behavior matches DecodeString.
func AppendDecode(dst, src []byte) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, format.Errorf(uint64(len(src)), "ascii16 input has odd length %d", len(src))
	}

	for i := 0; i < len(src); i += 2 {
		hi, ok := nibble(src[i])
		if !ok {
			return nil, format.Errorf(uint64(i), "invalid ascii16 character %q", src[i])
		}
		lo, ok := nibble(src[i+1])
		if !ok {
			return nil, format.Errorf(uint64(i+1), "invalid ascii16 character %q", src[i+1])
		}
		dst = append(dst, hi<<4|lo)
	}

	return dst, nil
}

func nibble(c byte) (byte, bool) {
	if c < 'a' || c > 'p' {
		return 0, false
	}

	return c - 'a', true
}
