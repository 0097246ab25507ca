package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"

	"github.com/rendaw/luxem-go/format"
)

// NewReader wraps src so that reads return the decompressed stream.
// The caller must Close the result to release codec resources; closing does
// not close src.
func NewReader(typ format.CompressionType, src io.Reader) (io.ReadCloser, error) {
	switch typ {
	case format.CompressionNone:
		return readCloser{Reader: src}, nil
	case format.CompressionZstd:
		return newZstdReader(src)
	case format.CompressionS2:
		return readCloser{Reader: s2.NewReader(src)}, nil
	case format.CompressionLZ4:
		return readCloser{Reader: lz4.NewReader(src)}, nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %s", typ)
	}
}

// NewWriter wraps dst so that written bytes are compressed into it.
// The caller must Close the result to flush the codec's final frame; closing
// does not close dst.
func NewWriter(typ format.CompressionType, dst io.Writer) (io.WriteCloser, error) {
	switch typ {
	case format.CompressionNone:
		return nopWriteCloser{Writer: dst}, nil
	case format.CompressionZstd:
		return newZstdWriter(dst)
	case format.CompressionS2:
		return s2.NewWriter(dst), nil
	case format.CompressionLZ4:
		return lz4.NewWriter(dst), nil
	default:
		return nil, fmt.Errorf("unsupported compression type: %s", typ)
	}
}

// readCloser adds a Close method to a decompressing reader, optionally
// releasing codec resources.
type readCloser struct {
	io.Reader
	release func()
}

func (rc readCloser) Close() error {
	if rc.release != nil {
		rc.release()
	}

	return nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
