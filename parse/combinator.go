package parse

// Byte consumes a single byte admitted by pred.
func Byte(pred func(byte) bool, expect string) Parser[byte] {
	return func(in Input) (byte, Input, error) {
		c, ok := in.Peek()
		if !ok {
			return 0, in, Errorf(in, "expected %s, got end of input", expect)
		}
		if !pred(c) {
			return 0, in, Errorf(in, "expected %s, got %q", expect, c)
		}
		return c, in.Advance(1), nil
	}
}

// Char consumes exactly the byte c.
func Char(c byte) Parser[byte] {
	return func(in Input) (byte, Input, error) {
		got, ok := in.Peek()
		if !ok || got != c {
			return 0, in, Errorf(in, "expected %q", c)
		}
		return c, in.Advance(1), nil
	}
}

// Literal consumes exactly the string s.
func Literal(s string) Parser[string] {
	return func(in Input) (string, Input, error) {
		rest := in.Rest()
		if len(rest) < len(s) || rest[:len(s)] != s {
			return "", in, Errorf(in, "expected %q", s)
		}
		return s, in.Advance(len(s)), nil
	}
}

// Map transforms the result of p with f.
func Map[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(in Input) (B, Input, error) {
		a, rest, err := p(in)
		if err != nil {
			var zero B
			return zero, in, err
		}
		return f(a), rest, nil
	}
}

// Opt makes p optional. A failed attempt consumes nothing and yields nil.
func Opt[T any](p Parser[T]) Parser[*T] {
	return func(in Input) (*T, Input, error) {
		v, rest, err := p(in)
		if err != nil {
			return nil, in, nil
		}
		return &v, rest, nil
	}
}

// Many0 applies p zero or more times.
func Many0[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) ([]T, Input, error) {
		var out []T
		for {
			v, rest, err := p(in)
			if err != nil || rest.Offset() == in.Offset() {
				return out, in, nil
			}
			out = append(out, v)
			in = rest
		}
	}
}

// Many1 applies p one or more times.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return func(in Input) ([]T, Input, error) {
		first, rest, err := p(in)
		if err != nil {
			return nil, in, err
		}
		out := []T{first}
		in = rest
		for {
			v, rest, err := p(in)
			if err != nil || rest.Offset() == in.Offset() {
				return out, in, nil
			}
			out = append(out, v)
			in = rest
		}
	}
}

// Choice tries alternatives in order, backtracking on failure. The first
// success wins.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		var zero T
		var lastErr error
		for _, p := range ps {
			v, rest, err := p(in)
			if err == nil {
				return v, rest, nil
			}
			lastErr = err
		}
		if lastErr == nil {
			lastErr = Errorf(in, "no alternatives given")
		}
		return zero, in, lastErr
	}
}

// SepBy1 parses one or more p separated by sep.
func SepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return func(in Input) ([]T, Input, error) {
		first, rest, err := p(in)
		if err != nil {
			return nil, in, err
		}
		out := []T{first}
		in = rest
		for {
			_, afterSep, err := sep(in)
			if err != nil {
				return out, in, nil
			}
			v, afterItem, err := p(afterSep)
			if err != nil {
				// Separator without a following item is not part of the list.
				return out, in, nil
			}
			out = append(out, v)
			in = afterItem
		}
	}
}

// Between parses open, then p, then close, yielding p's result.
func Between[T any](open, close byte, p Parser[T]) Parser[T] {
	return func(in Input) (T, Input, error) {
		var zero T
		_, rest, err := Char(open)(in)
		if err != nil {
			return zero, in, err
		}
		v, rest, err := p(rest)
		if err != nil {
			return zero, in, err
		}
		_, rest, err = Char(close)(rest)
		if err != nil {
			return zero, in, err
		}
		return v, rest, nil
	}
}

// TakeWhile1 consumes the longest non-empty run of bytes admitted by pred.
func TakeWhile1(pred func(byte) bool, expect string) Parser[string] {
	return func(in Input) (string, Input, error) {
		rest := in.Rest()
		n := 0
		for n < len(rest) && pred(rest[n]) {
			n++
		}
		if n == 0 {
			return "", in, Errorf(in, "expected %s", expect)
		}
		return rest[:n], in.Advance(n), nil
	}
}

// RunMinMax consumes between min and max bytes admitted by pred, greedily.
// The run must not be extendable: a run of max bytes followed by another
// admissible byte fails. This is the negative look-ahead the bounded
// subtag grammars rely on.
func RunMinMax(min, max int, pred func(byte) bool, expect string) Parser[string] {
	return func(in Input) (string, Input, error) {
		rest := in.Rest()
		n := 0
		for n < len(rest) && n < max && pred(rest[n]) {
			n++
		}
		if n < min {
			return "", in, Errorf(in, "expected at least %d of %s", min, expect)
		}
		out := in.Advance(n)
		if _, _, err := NotFollowedBy(pred)(out); err != nil {
			return "", in, Errorf(in, "expected at most %d of %s", max, expect)
		}
		return rest[:n], out, nil
	}
}

// NotFollowedBy succeeds, consuming nothing, when the next byte is absent
// or not admitted by pred.
func NotFollowedBy(pred func(byte) bool) Parser[struct{}] {
	return func(in Input) (struct{}, Input, error) {
		if c, ok := in.Peek(); ok && pred(c) {
			return struct{}{}, in, Errorf(in, "unexpected %q", c)
		}
		return struct{}{}, in, nil
	}
}

// Multi applies p repeatedly and concatenates the yielded slices. Used by
// the URI-template matcher, where one variable may bind multiple items.
func Multi[T any](p Parser[[]T]) Parser[[]T] {
	return func(in Input) ([]T, Input, error) {
		var out []T
		for {
			vs, rest, err := p(in)
			if err != nil || rest.Offset() == in.Offset() {
				return out, in, nil
			}
			out = append(out, vs...)
			in = rest
		}
	}
}

// MultiSepBy is Multi with a separator between applications of p.
func MultiSepBy[T any](p Parser[[]T], sep byte) Parser[[]T] {
	tail := func(in Input) ([]T, Input, error) {
		_, afterSep, err := Char(sep)(in)
		if err != nil {
			return nil, in, err
		}
		vs, rest, err := p(afterSep)
		if err != nil {
			return nil, in, err
		}
		return vs, rest, nil
	}
	return func(in Input) ([]T, Input, error) {
		first, rest, err := p(in)
		if err != nil {
			return nil, in, err
		}
		more, rest, _ := Multi(Parser[[]T](tail))(rest)
		return append(append([]T(nil), first...), more...), rest, nil
	}
}
