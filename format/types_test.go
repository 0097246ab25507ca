package format

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatError_Error(t *testing.T) {
	err := Errorf(12, "expected %q, got %q", '}', ']')
	require.EqualError(t, err, `expected '}', got ']' [offset 12]`)
	require.Equal(t, uint64(12), err.Offset)
}

func TestAsFormatError(t *testing.T) {
	fe := Errorf(3, "bad character")
	require.Equal(t, fe, AsFormatError(fe))

	wrapped := fmt.Errorf("while parsing: %w", fe)
	require.Equal(t, fe, AsFormatError(wrapped))

	require.Nil(t, AsFormatError(nil))
	require.Nil(t, AsFormatError(errors.New("caller failure")))
}

func TestIsPassThrough(t *testing.T) {
	sentinel := errors.New("caller failure")
	require.True(t, IsPassThrough(sentinel))
	require.False(t, IsPassThrough(Errorf(0, "bad")))
	require.False(t, IsPassThrough(nil))
}

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		typ  CompressionType
		want string
	}{
		{CompressionNone, "None"},
		{CompressionZstd, "Zstd"},
		{CompressionS2, "S2"},
		{CompressionLZ4, "LZ4"},
		{CompressionType(0xff), "Unknown"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.typ.String())
	}
}
