package rawread

import (
	"github.com/rendaw/luxem-go/ascii16"
	"github.com/rendaw/luxem-go/format"
)

// DefaultMaxDepth is the default nesting depth limit.
const DefaultMaxDepth = 200

// Callbacks holds one function per event type. Nil entries are skipped; the
// corresponding events are recognized and discarded.
//
// Token-bearing callbacks receive a byte slice that is only valid for the
// duration of the call. An error returned by any callback aborts the current
// feed immediately and is surfaced to the caller verbatim.
type Callbacks struct {
	ObjectBegin func() error
	ObjectEnd   func() error
	ArrayBegin  func() error
	ArrayEnd    func() error
	Key         func(text []byte) error
	Type        func(text []byte) error
	Primitive   func(text []byte) error
}

type frameKind uint8

const (
	frameObject frameKind = iota
	frameArray
)

func (k frameKind) String() string {
	if k == frameObject {
		return "object"
	}

	return "array"
}

type scanState uint8

const (
	scanValue     scanState = iota // expecting a value
	scanKey                        // inside an object, expecting a key or '}'
	scanPostKey                    // expecting ':' after a key
	scanPostValue                  // expecting ',' or a close after a value
	scanTypeText                   // after '(', expecting the type text
	scanTypeEnd                    // expecting ')' after the type text
	tokWord                        // accumulating a bare token
	tokQuoted                      // accumulating a quoted token
	tokQuotedEsc                   // inside a quoted token, after '\'
	tokA16                         // accumulating an ascii16 token
)

type tokenRole uint8

const (
	rolePrimitive tokenRole = iota
	roleKey
	roleType
)

// Reader is the incremental parse engine. Construct one with NewReader; the
// zero value is not usable.
type Reader struct {
	cb Callbacks

	stack       []frameKind
	state       scanState
	role        tokenRole
	typePending bool   // a type tag was emitted, a value must follow
	token       []byte // partial token carried across Feed calls
	tokenStart  uint64 // offset of the current token's first byte
	pos         uint64 // running count of consumed bytes
	maxDepth    int
	err         error
	blocked     bool // a pre-block hook is active (FeedReader)
}

// NewReader creates a Reader delivering events to cb.
func NewReader(cb Callbacks) *Reader {
	return &Reader{cb: cb, maxDepth: DefaultMaxDepth}
}

// MaxDepth sets the maximum allowed nesting depth. Zero disables the limit.
func (r *Reader) MaxDepth(n int) {
	r.maxDepth = n
}

// Position returns the total number of bytes consumed so far.
func (r *Reader) Position() uint64 {
	return r.pos
}

// Depth returns the current nesting depth.
func (r *Reader) Depth() int {
	return len(r.stack)
}

// Err returns the error that poisoned the Reader, if any.
func (r *Reader) Err() error {
	return r.err
}

// Feed tokenizes data, invoking callbacks as tokens complete, and returns
// the number of bytes consumed. A trailing partial token is retained and
// completed by the next call.
//
// When finish is true the residual input must complete a well-formed
// document; otherwise a *format.FormatError fires at the offset where input
// ended. Any returned error poisons the Reader.
func (r *Reader) Feed(data []byte, finish bool) (int, error) {
	if r.err != nil {
		return 0, r.err
	}

	i := 0
	for i < len(data) {
		consumed, err := r.step(data[i])
		if consumed {
			// Count the byte even when the event it completed failed: the
			// token was recognized and the state advanced past it.
			i++
			r.pos++
		}
		if err != nil {
			r.err = err
			return i, err
		}
	}

	if finish {
		if err := r.finishInput(); err != nil {
			r.err = err
			return i, err
		}
	}

	return i, nil
}

// step processes one byte. It reports whether the byte was consumed; an
// unconsumed byte is reprocessed in the state a completed token selected.
func (r *Reader) step(ch byte) (bool, error) {
	switch r.state {
	case scanValue:
		return r.stepValue(ch)
	case scanKey:
		return r.stepKey(ch)
	case scanPostKey:
		if isSpace(ch) {
			return true, nil
		}
		if ch == ':' {
			r.state = scanValue
			return true, nil
		}

		return false, format.Errorf(r.pos, "expected ':' after key, got %q", ch)
	case scanPostValue:
		return r.stepPostValue(ch)
	case scanTypeText:
		return r.stepTypeText(ch)
	case scanTypeEnd:
		if isSpace(ch) {
			return true, nil
		}
		if ch == ')' {
			r.typePending = true
			r.state = scanValue

			return true, nil
		}

		return false, format.Errorf(r.pos, "expected ')' after type, got %q", ch)
	case tokWord:
		if isWordChar(ch) {
			r.token = append(r.token, ch)
			return true, nil
		}

		// Delimiter: complete the token, then reprocess the byte.
		return false, r.finishToken()
	case tokQuoted:
		switch ch {
		case '"':
			return true, r.finishToken()
		case '\\':
			r.state = tokQuotedEsc
			return true, nil
		default:
			r.token = append(r.token, ch)
			return true, nil
		}
	case tokQuotedEsc:
		r.token = append(r.token, ch)
		r.state = tokQuoted

		return true, nil
	case tokA16:
		if ch >= 'a' && ch <= 'p' {
			r.token = append(r.token, ch)
			return true, nil
		}
		if ch == '>' {
			return true, r.finishToken()
		}

		return false, format.Errorf(r.tokenStart, "invalid ascii16 payload: unexpected character %q", ch)
	default:
		return false, format.Errorf(r.pos, "corrupt parse state")
	}
}

func (r *Reader) stepValue(ch byte) (bool, error) {
	switch {
	case isSpace(ch):
		return true, nil
	case ch == '{':
		if err := r.push(frameObject); err != nil {
			return false, err
		}
		r.typePending = false
		r.state = scanKey

		return true, r.emitVoid(r.cb.ObjectBegin)
	case ch == '[':
		if err := r.push(frameArray); err != nil {
			return false, err
		}
		r.typePending = false
		r.state = scanValue

		return true, r.emitVoid(r.cb.ArrayBegin)
	case ch == '}' || ch == ']':
		if r.typePending {
			return false, format.Errorf(r.pos, "expected value after type, got %q", ch)
		}
		if len(r.stack) > 0 && r.stack[len(r.stack)-1] == frameObject {
			return false, format.Errorf(r.pos, "expected value after key, got %q", ch)
		}

		return r.stepClose(ch)
	case ch == '(':
		if r.typePending {
			return false, format.Errorf(r.pos, "expected value after type, got '('")
		}
		r.state = scanTypeText

		return true, nil
	case ch == '"':
		r.beginToken(rolePrimitive)
		r.state = tokQuoted

		return true, nil
	case ch == '<':
		r.beginToken(rolePrimitive)
		r.state = tokA16

		return true, nil
	case isWordChar(ch):
		r.beginToken(rolePrimitive)
		r.state = tokWord
		r.token = append(r.token, ch)

		return true, nil
	default:
		return false, format.Errorf(r.pos, "expected value, got %q", ch)
	}
}

func (r *Reader) stepKey(ch byte) (bool, error) {
	switch {
	case isSpace(ch):
		return true, nil
	case ch == '}' || ch == ']':
		return r.stepClose(ch)
	case ch == '"':
		r.beginToken(roleKey)
		r.state = tokQuoted

		return true, nil
	case ch == '<':
		r.beginToken(roleKey)
		r.state = tokA16

		return true, nil
	case isWordChar(ch):
		r.beginToken(roleKey)
		r.state = tokWord
		r.token = append(r.token, ch)

		return true, nil
	default:
		return false, format.Errorf(r.pos, "expected key, got %q", ch)
	}
}

func (r *Reader) stepPostValue(ch byte) (bool, error) {
	switch {
	case isSpace(ch):
		return true, nil
	case ch == ',':
		if len(r.stack) > 0 && r.stack[len(r.stack)-1] == frameObject {
			r.state = scanKey
		} else {
			r.state = scanValue
		}

		return true, nil
	case ch == '}' || ch == ']':
		return r.stepClose(ch)
	default:
		return false, format.Errorf(r.pos, "expected ',' or close after value, got %q", ch)
	}
}

func (r *Reader) stepTypeText(ch byte) (bool, error) {
	switch {
	case isSpace(ch):
		return true, nil
	case ch == '"':
		r.beginToken(roleType)
		r.state = tokQuoted

		return true, nil
	case ch == '<':
		r.beginToken(roleType)
		r.state = tokA16

		return true, nil
	case isWordChar(ch):
		r.beginToken(roleType)
		r.state = tokWord
		r.token = append(r.token, ch)

		return true, nil
	default:
		return false, format.Errorf(r.pos, "expected type text, got %q", ch)
	}
}

// stepClose handles '}' and ']' in any position where a close may be legal.
func (r *Reader) stepClose(ch byte) (bool, error) {
	want := frameObject
	if ch == ']' {
		want = frameArray
	}
	if len(r.stack) == 0 {
		return false, format.Errorf(r.pos, "%s close with no open %s", want, want)
	}
	top := r.stack[len(r.stack)-1]
	if top != want {
		return false, format.Errorf(r.pos, "%s close while the innermost open frame is %s", want, top)
	}

	r.stack = r.stack[:len(r.stack)-1]
	r.state = scanPostValue

	if want == frameObject {
		return true, r.emitVoid(r.cb.ObjectEnd)
	}

	return true, r.emitVoid(r.cb.ArrayEnd)
}

func (r *Reader) beginToken(role tokenRole) {
	r.role = role
	r.token = r.token[:0]
	r.tokenStart = r.pos
	r.typePending = false
}

// finishToken dispatches the accumulated token for its role and selects the
// follow state. For ascii16 tokens the payload is decoded first; a bad
// payload is a FormatError at the token's start offset.
func (r *Reader) finishToken() error {
	text := r.token
	if r.state == tokA16 {
		decoded, err := ascii16.AppendDecode(r.token[len(r.token):], r.token)
		if err != nil {
			return format.Errorf(r.tokenStart, "invalid ascii16 payload: %s", format.AsFormatError(err).Msg)
		}
		text = decoded
	}

	switch r.role {
	case roleKey:
		r.state = scanPostKey
		return r.emitText(r.cb.Key, text)
	case roleType:
		r.state = scanTypeEnd
		// The tag only counts as pending once ')' is seen.
		return r.emitText(r.cb.Type, text)
	default:
		r.state = scanPostValue
		return r.emitText(r.cb.Primitive, text)
	}
}

// finishInput validates that the document is complete at end of input.
func (r *Reader) finishInput() error {
	switch r.state {
	case tokWord:
		// End of input terminates a bare token.
		if err := r.finishToken(); err != nil {
			return err
		}
	case tokQuoted, tokQuotedEsc:
		return format.Errorf(r.pos, "unexpected end of input inside quoted token")
	case tokA16:
		return format.Errorf(r.pos, "unexpected end of input inside ascii16 token")
	}

	if len(r.stack) > 0 {
		return format.Errorf(r.pos, "unexpected end of input with open %s", r.stack[len(r.stack)-1])
	}

	switch r.state {
	case scanPostKey:
		return format.Errorf(r.pos, "unexpected end of input after key")
	case scanTypeText, scanTypeEnd:
		return format.Errorf(r.pos, "unexpected end of input inside type")
	}

	if r.typePending {
		return format.Errorf(r.pos, "unexpected end of input: expected value after type")
	}

	return nil
}

func (r *Reader) push(kind frameKind) error {
	if r.maxDepth > 0 && len(r.stack) >= r.maxDepth {
		return format.Errorf(r.pos, "nesting depth exceeds %d", r.maxDepth)
	}
	r.stack = append(r.stack, kind)

	return nil
}

// emitVoid and emitText invoke callbacks; any error is returned verbatim so
// the caller recovers the exact failure it raised.
func (r *Reader) emitVoid(fn func() error) error {
	if fn == nil {
		return nil
	}

	return fn()
}

func (r *Reader) emitText(fn func([]byte) error, text []byte) error {
	if fn == nil {
		return nil
	}

	return fn(text)
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isWordChar(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r',
		'{', '}', '[', ']', '(', ')',
		':', ',', '"', '<', '>':
		return false
	default:
		return true
	}
}
