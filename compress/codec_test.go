package compress

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rendaw/luxem-go/format"
	"github.com/rendaw/luxem-go/rawread"
)

var codecTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func TestRoundTrip(t *testing.T) {
	payload := []byte(strings.Repeat(`{metric:cpu,values:[1,2,3,],}`+"\n", 200))

	for _, typ := range codecTypes {
		t.Run(typ.String(), func(t *testing.T) {
			var compressed bytes.Buffer
			w, err := NewWriter(typ, &compressed)
			require.NoError(t, err)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := NewReader(typ, bytes.NewReader(compressed.Bytes()))
			require.NoError(t, err)
			defer r.Close()

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, payload, got)
		})
	}
}

func TestRoundTrip_Empty(t *testing.T) {
	for _, typ := range codecTypes {
		t.Run(typ.String(), func(t *testing.T) {
			var compressed bytes.Buffer
			w, err := NewWriter(typ, &compressed)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := NewReader(typ, bytes.NewReader(compressed.Bytes()))
			require.NoError(t, err)
			defer r.Close()

			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Empty(t, got)
		})
	}
}

func TestUnsupportedType(t *testing.T) {
	_, err := NewReader(format.CompressionType(0xff), bytes.NewReader(nil))
	require.Error(t, err)
	_, err = NewWriter(format.CompressionType(0xff), io.Discard)
	require.Error(t, err)
}

// A compressed luxem stream feeds straight into the read engine.
func TestCompressedDocumentFeed(t *testing.T) {
	const doc = `{name:(utf8)"luxem stream",payload:<aapp>,}`

	for _, typ := range codecTypes {
		t.Run(typ.String(), func(t *testing.T) {
			var compressed bytes.Buffer
			w, err := NewWriter(typ, &compressed)
			require.NoError(t, err)
			_, err = io.Copy(w, strings.NewReader(doc))
			require.NoError(t, err)
			require.NoError(t, w.Close())

			src, err := NewReader(typ, bytes.NewReader(compressed.Bytes()))
			require.NoError(t, err)
			defer src.Close()

			var keys []string
			r := rawread.NewReader(rawread.Callbacks{
				Key: func(text []byte) error {
					keys = append(keys, string(text))
					return nil
				},
			})
			require.NoError(t, r.FeedReader(src, nil, nil))
			require.Equal(t, []string{"name", "payload"}, keys)
		})
	}
}
