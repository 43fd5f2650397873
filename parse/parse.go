package parse

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Error is the single error kind produced by parsers.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Msg)
}

// Errorf creates an [Error] positioned at the current offset of in.
func Errorf(in Input, format string, args ...any) error {
	return errors.WithStack(&Error{Offset: in.pos, Msg: fmt.Sprintf(format, args...)})
}

// Wrap positions err at the current offset of in. The cause chain survives
// for errors.Cause and errors.Is.
func Wrap(in Input, err error, msg string) error {
	return errors.Wrap(err, (&Error{Offset: in.pos, Msg: msg}).Error())
}

// Input is an immutable cursor into the string being parsed.
type Input struct {
	src string
	pos int
}

func NewInput(s string) Input { return Input{src: s} }

func (in Input) Offset() int { return in.pos }

func (in Input) Empty() bool { return in.pos >= len(in.src) }

// Rest returns the unconsumed portion of the input.
func (in Input) Rest() string { return in.src[in.pos:] }

func (in Input) Peek() (byte, bool) {
	if in.Empty() {
		return 0, false
	}
	return in.src[in.pos], true
}

// PeekAt returns the byte i positions past the cursor.
func (in Input) PeekAt(i int) (byte, bool) {
	if in.pos+i >= len(in.src) {
		return 0, false
	}
	return in.src[in.pos+i], true
}

func (in Input) Advance(n int) Input {
	in.pos += n
	if in.pos > len(in.src) {
		in.pos = len(in.src)
	}
	return in
}

type Parser[T any] func(in Input) (T, Input, error)

type Formatter[T any] func(v T, b *strings.Builder)

// Mapping pairs the parser and formatter of one grammar rule.
type Mapping[T any] struct {
	Parser    Parser[T]
	Formatter Formatter[T]
}

// Parse runs the parser over the whole input. Trailing bytes after the
// production are an error.
func (m Mapping[T]) Parse(s string) (T, error) {
	var zero T
	v, rest, err := m.Parser(NewInput(s))
	if err != nil {
		return zero, err
	}
	if !rest.Empty() {
		return zero, Errorf(rest, "unexpected trailing input %q", rest.Rest())
	}
	return v, nil
}

// TryParse reports success instead of failing hard. The boolean mirrors the
// Ok/Err split; the error carries the failure detail.
func (m Mapping[T]) TryParse(s string) (v T, ok bool, err error) {
	v, err = m.Parse(s)
	if err != nil {
		var zero T
		return zero, false, err
	}
	return v, true, nil
}

// MustParse panics on invalid input. For literals known to be valid.
func (m Mapping[T]) MustParse(s string) T {
	v, err := m.Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Format emits the canonical textual form of v. Formatters are total.
func (m Mapping[T]) Format(v T) string {
	b := new(strings.Builder)
	m.Formatter(v, b)
	return b.String()
}
