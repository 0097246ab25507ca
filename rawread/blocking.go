package rawread

import (
	"io"

	"github.com/rendaw/luxem-go/internal/pool"
)

// FeedReader runs a chunked read-and-tokenize loop over src until EOF,
// blocking on reads. It is the blocking-source variant of Feed; the document
// must be complete at EOF.
//
// preBlock is invoked immediately before every blocking read and postBlock
// immediately after it, strictly before any callback runs, so a host runtime
// can release and reacquire an exclusive execution context around the block.
// The hooks must be supplied together; FeedReader panics if only one is
// given or if the alternation is ever violated. Pass nil for both when no
// context needs releasing.
//
// Errors returned by src are passed through verbatim; they poison the
// Reader like any other error.
func (r *Reader) FeedReader(src io.Reader, preBlock, postBlock func()) error {
	if r.err != nil {
		return r.err
	}
	if (preBlock == nil) != (postBlock == nil) {
		panic("rawread: pre-block and post-block hooks must be supplied together")
	}

	bb := pool.GetDocBuffer()
	defer pool.PutDocBuffer(bb)
	chunk := bb.Bytes()[:pool.DocBufferDefaultSize]

	for {
		r.enterBlock(preBlock)
		n, readErr := src.Read(chunk)
		r.exitBlock(postBlock)

		if n > 0 {
			if _, err := r.Feed(chunk[:n], false); err != nil {
				return err
			}
		}
		if readErr == io.EOF {
			_, err := r.Feed(nil, true)
			return err
		}
		if readErr != nil {
			r.err = readErr // source failure, passed through verbatim
			return readErr
		}
	}
}

func (r *Reader) enterBlock(pre func()) {
	if r.blocked {
		panic("rawread: pre-block hook invoked twice without post-block")
	}
	r.blocked = true
	if pre != nil {
		pre()
	}
}

func (r *Reader) exitBlock(post func()) {
	if !r.blocked {
		panic("rawread: post-block hook invoked without matching pre-block")
	}
	r.blocked = false
	if post != nil {
		post()
	}
}
