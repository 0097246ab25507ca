//go:build gozstd

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// cgo Zstandard codec backed by libzstd, selected with the "gozstd" build
// tag. Wire-compatible with the pure-Go implementation.

func newZstdReader(src io.Reader) (io.ReadCloser, error) {
	r := gozstd.NewReader(src)

	return readCloser{Reader: r, release: r.Release}, nil
}

func newZstdWriter(dst io.Writer) (io.WriteCloser, error) {
	return &zstdCgoWriter{w: gozstd.NewWriter(dst)}, nil
}

type zstdCgoWriter struct {
	w *gozstd.Writer
}

func (zw *zstdCgoWriter) Write(p []byte) (int, error) {
	return zw.w.Write(p)
}

func (zw *zstdCgoWriter) Close() error {
	err := zw.w.Close()
	zw.w.Release()

	return err
}
