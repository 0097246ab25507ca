//go:build !gozstd

package compress

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// Pure-Go Zstandard codec. The decoder runs single-threaded so reads stay
// synchronous with the blocking feed loop.

func newZstdReader(src io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(src, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}

	return readCloser{Reader: dec, release: dec.Close}, nil
}

func newZstdWriter(dst io.Writer) (io.WriteCloser, error) {
	enc, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, err
	}

	return enc, nil
}
