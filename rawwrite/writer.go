package rawwrite

import (
	"io"

	"github.com/rendaw/luxem-go/format"
	"github.com/rendaw/luxem-go/internal/pool"
)

// lastEmitted tracks the most recent event the writer emitted. Sequencing
// legality is decided from this plus the top of the frame stack.
type lastEmitted uint8

const (
	lastNone lastEmitted = iota
	lastObjectOpen
	lastArrayOpen
	lastKey
	lastType
	lastValue
	lastClose
)

func (l lastEmitted) String() string {
	switch l {
	case lastNone:
		return "nothing"
	case lastObjectOpen:
		return "object open"
	case lastArrayOpen:
		return "array open"
	case lastKey:
		return "key"
	case lastType:
		return "type"
	case lastValue:
		return "value"
	case lastClose:
		return "close"
	default:
		return "unknown"
	}
}

type frameKind uint8

const (
	frameObject frameKind = iota
	frameArray
)

// Writer encodes a single luxem document through sequencing-validated event
// calls. Construct one with NewBufferWriter, NewStreamWriter or
// NewCallbackWriter.
type Writer struct {
	sink    func([]byte) error
	buf     *pool.ByteBuffer // non-nil only for the buffer sink
	scratch []byte

	stack       []frameKind
	last        lastEmitted
	written     uint64
	err         error
	pretty      bool
	atLineStart bool
	indentChar  byte
	indentMult  int
}

// Option configures a Writer at construction time.
type Option func(*Writer)

// WithPretty enables pretty printing: every open, close and element is
// followed by a line break, and lines at nesting depth d are indented with
// multiple repetitions of indentChar applied d times.
func WithPretty(indentChar byte, multiple int) Option {
	return func(w *Writer) {
		w.pretty = true
		w.indentChar = indentChar
		w.indentMult = multiple
	}
}

// NewBufferWriter creates a Writer that accumulates output in memory.
// The rendered document is retrieved with Dump.
func NewBufferWriter(opts ...Option) *Writer {
	buf := pool.GetDocBuffer()
	w := newWriter(func(p []byte) error {
		_, _ = buf.Write(p)
		return nil
	}, opts)
	w.buf = buf

	return w
}

// NewStreamWriter creates a Writer that writes synchronously to dst.
// Errors returned by dst are passed through verbatim.
func NewStreamWriter(dst io.Writer, opts ...Option) *Writer {
	return newWriter(func(p []byte) error {
		_, err := dst.Write(p)
		return err
	}, opts)
}

// NewCallbackWriter creates a Writer that forwards each emitted fragment to
// fn. An error returned by fn is passed through verbatim.
func NewCallbackWriter(fn func([]byte) error, opts ...Option) *Writer {
	return newWriter(fn, opts)
}

func newWriter(sink func([]byte) error, opts []Option) *Writer {
	w := &Writer{sink: sink, atLineStart: true}
	for _, opt := range opts {
		opt(w)
	}

	return w
}

// ObjectBegin opens an object in value position.
func (w *Writer) ObjectBegin() error {
	return w.open(frameObject, '{', "object begin")
}

// ArrayBegin opens an array in value position.
func (w *Writer) ArrayBegin() error {
	return w.open(frameArray, '[', "array begin")
}

// ObjectEnd closes the innermost open object.
func (w *Writer) ObjectEnd() error {
	return w.close(frameObject, '}', "object end")
}

// ArrayEnd closes the innermost open array.
func (w *Writer) ArrayEnd() error {
	return w.close(frameArray, ']', "array end")
}

// Key writes an object key. Legal only inside an object and only when the
// previous sibling value is complete.
func (w *Writer) Key(text string) error {
	if w.err != nil {
		return w.err
	}
	if err := w.checkKey(); err != nil {
		return err
	}

	out := appendToken(w.indent(), text)
	out = append(out, ':')
	if w.pretty {
		out = append(out, ' ')
	}
	w.last = lastKey

	return w.emit(out)
}

// KeyBytes writes an object key holding arbitrary bytes. Byte sequences that
// are not plain text are emitted in ascii16 form and recovered as the same
// bytes by the read engine.
func (w *Writer) KeyBytes(b []byte) error {
	if w.err != nil {
		return w.err
	}
	if err := w.checkKey(); err != nil {
		return err
	}

	out := appendTokenBytes(w.indent(), b)
	out = append(out, ':')
	if w.pretty {
		out = append(out, ' ')
	}
	w.last = lastKey

	return w.emit(out)
}

// Type writes a type tag. Legal only immediately before a primitive, object
// begin or array begin; it tags the following value.
func (w *Writer) Type(text string) error {
	if w.err != nil {
		return w.err
	}
	if err := w.checkType(); err != nil {
		return err
	}

	out := append(w.indent(), '(')
	out = appendToken(out, text)
	out = append(out, ')')
	if w.pretty {
		out = append(out, ' ')
	}
	w.last = lastType

	return w.emit(out)
}

// TypeBytes writes a type tag holding arbitrary bytes, in ascii16 form when
// the bytes are not plain text.
func (w *Writer) TypeBytes(b []byte) error {
	if w.err != nil {
		return w.err
	}
	if err := w.checkType(); err != nil {
		return err
	}

	out := append(w.indent(), '(')
	out = appendTokenBytes(out, b)
	out = append(out, ')')
	if w.pretty {
		out = append(out, ' ')
	}
	w.last = lastType

	return w.emit(out)
}

// Primitive writes a primitive value in value position.
func (w *Writer) Primitive(text string) error {
	if w.err != nil {
		return w.err
	}
	if err := w.checkValue("value"); err != nil {
		return err
	}

	out := appendToken(w.indent(), text)
	w.last = lastValue

	return w.emit(w.finishElement(out))
}

// PrimitiveBytes writes a primitive holding arbitrary bytes, in ascii16 form
// when the bytes are not plain text.
func (w *Writer) PrimitiveBytes(b []byte) error {
	if w.err != nil {
		return w.err
	}
	if err := w.checkValue("value"); err != nil {
		return err
	}

	out := appendTokenBytes(w.indent(), b)
	w.last = lastValue

	return w.emit(w.finishElement(out))
}

// Dump returns everything rendered so far. It is legal only for Writers
// created with NewBufferWriter.
func (w *Writer) Dump() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.buf == nil {
		return nil, w.fail("dump requires a buffer sink")
	}

	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())

	return out, nil
}

// Release poisons the writer and returns its buffer, if any, to the pool.
// The Writer must not be used afterwards.
func (w *Writer) Release() {
	if w.buf != nil {
		pool.PutDocBuffer(w.buf)
		w.buf = nil
	}
	if w.err == nil {
		w.err = format.Errorf(w.written, "writer released")
	}
}

// Err returns the error that poisoned the writer, if any.
func (w *Writer) Err() error {
	return w.err
}

// Depth returns the current nesting depth.
func (w *Writer) Depth() int {
	return len(w.stack)
}

func (w *Writer) open(kind frameKind, ch byte, what string) error {
	if w.err != nil {
		return w.err
	}
	if err := w.checkValue(what); err != nil {
		return err
	}

	out := append(w.indent(), ch)
	if w.pretty {
		out = append(out, '\n')
	}
	w.stack = append(w.stack, kind)
	if kind == frameObject {
		w.last = lastObjectOpen
	} else {
		w.last = lastArrayOpen
	}

	return w.emit(out)
}

func (w *Writer) close(kind frameKind, ch byte, what string) error {
	if w.err != nil {
		return w.err
	}
	if len(w.stack) == 0 {
		return w.fail("%s with no open %s", what, kindName(kind))
	}
	if top := w.stack[len(w.stack)-1]; top != kind {
		return w.fail("%s while the innermost open frame is %s", what, kindName(top))
	}
	if w.last == lastKey || w.last == lastType {
		return w.fail("%s while a %s is pending a value", what, w.last)
	}

	w.stack = w.stack[:len(w.stack)-1]
	out := append(w.indent(), ch)
	w.last = lastClose

	return w.emit(w.finishElement(out))
}

// checkValue validates value position: at the root before any value, inside
// an array between elements, or immediately after a key or type.
func (w *Writer) checkValue(what string) error {
	if w.last == lastKey || w.last == lastType {
		return nil
	}
	if len(w.stack) == 0 {
		if w.last == lastNone {
			return nil
		}

		return w.fail("%s not legal after %s: the root holds a single value", what, w.last)
	}
	if w.stack[len(w.stack)-1] == frameArray {
		return nil
	}

	return w.fail("%s not legal after %s: a key must precede each value in an object", what, w.last)
}

// checkType validates type position: value position, except that a type may
// not follow another type — a tag belongs to the single value after it.
func (w *Writer) checkType() error {
	if w.last == lastType {
		return w.fail("type not legal after type: a type tags the single value that follows")
	}

	return w.checkValue("type")
}

func (w *Writer) checkKey() error {
	if len(w.stack) == 0 || w.stack[len(w.stack)-1] != frameObject {
		return w.fail("key not legal outside an object")
	}
	switch w.last {
	case lastObjectOpen, lastValue, lastClose:
		return nil
	default:
		return w.fail("key not legal after %s: expected object open or a complete sibling value", w.last)
	}
}

// indent begins this call's output in the scratch buffer, prefixed with
// pretty indentation when the call starts a new line.
func (w *Writer) indent() []byte {
	out := w.scratch[:0]
	if w.pretty && w.atLineStart {
		n := len(w.stack) * w.indentMult
		for i := 0; i < n; i++ {
			out = append(out, w.indentChar)
		}
	}

	return out
}

// finishElement appends the element separator after a complete value or
// close: a comma inside any container, a line break in pretty mode.
func (w *Writer) finishElement(out []byte) []byte {
	if len(w.stack) > 0 {
		out = append(out, ',')
	}
	if w.pretty {
		out = append(out, '\n')
	}

	return out
}

func (w *Writer) emit(out []byte) error {
	w.scratch = out[:0]
	w.atLineStart = len(out) > 0 && out[len(out)-1] == '\n'
	if err := w.sink(out); err != nil {
		w.err = err // pass-through, verbatim
		return err
	}
	w.written += uint64(len(out))

	return nil
}

func (w *Writer) fail(msg string, args ...any) error {
	err := format.Errorf(w.written, msg, args...)
	w.err = err

	return err
}

func kindName(k frameKind) string {
	if k == frameObject {
		return "object"
	}

	return "array"
}
