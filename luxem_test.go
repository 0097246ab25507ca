package luxem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rendaw/luxem-go/format"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"object", `{a:1,}`, true},
		{"typed array", `(ids)[1,2,3]`, true},
		{"ascii16 payload", `<aapp>`, true},
		{"empty", ``, true},
		{"mismatched close", `{a:1,]`, false},
		{"dangling key", `{a:}`, false},
		{"truncated", `[1,2`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Valid([]byte(tt.input)))
		})
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"strips whitespace", " { a : 1 ,\n b : 2 } ", `{a:1,b:2,}`},
		{"adds trailing commas", `[1,2]`, `[1,2,]`},
		{"typed value", `{v:(int) 3}`, `{v:(int)3,}`},
		{"unquotes safe words", `{"a":"b",}`, `{a:b,}`},
		{"keeps needed quotes", `{"a b":c,}`, `{"a b":c,}`},
		{"ascii16 for binary only", `[<gigj>,<aapp>,]`, `[hi,<aapp>,]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Canonical([]byte(tt.input))
			require.NoError(t, err)
			require.Equal(t, tt.want, string(got))
		})
	}
}

func TestCanonical_Idempotent(t *testing.T) {
	input := []byte(` { list : [ (pair) { x : 1 , y : "two words" , } , <aapp> , ] , } `)
	once, err := Canonical(input)
	require.NoError(t, err)
	twice, err := Canonical(once)
	require.NoError(t, err)
	require.Equal(t, once, twice)
}

func TestCanonical_Malformed(t *testing.T) {
	_, err := Canonical([]byte(`{a:1,]`))
	require.NotNil(t, format.AsFormatError(err))
}

func TestIndent(t *testing.T) {
	got, err := Indent([]byte(`{a:1,}`), '\t', 2)
	require.NoError(t, err)
	require.Equal(t, "{\n\t\ta: 1,\n}\n", string(got))
}

func TestDigest(t *testing.T) {
	a, err := Digest([]byte(`{a:1,b:[x,y],}`))
	require.NoError(t, err)

	// Whitespace and quoting do not affect the digest.
	b, err := Digest([]byte(" { \"a\" : 1 ,\n b : [ x , \"y\" ] }\t"))
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := Digest([]byte(`{a:2,b:[x,y],}`))
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestDigest_Malformed(t *testing.T) {
	_, err := Digest([]byte(`[`))
	require.Error(t, err)
}
