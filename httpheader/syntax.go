package httpheader

import (
	"strings"

	"http-grammar/parse"
	"http-grammar/rule"
)

// ows consumes optional whitespace. It never fails.
func ows(in parse.Input) (struct{}, parse.Input, error) {
	rest := in.Rest()
	n := 0
	for n < len(rest) && rule.IsOWS(rest[n]) {
		n++
	}
	return struct{}{}, in.Advance(n), nil
}

func token(in parse.Input) (string, parse.Input, error) {
	return parse.TakeWhile1(rule.IsTChar, "token")(in)
}

// quotedString parses DQUOTE *( qdtext / quoted-pair ) DQUOTE and yields
// the unquoted text.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7230#section-3.2.6
func quotedString(in parse.Input) (string, parse.Input, error) {
	rest := in.Rest()
	if len(rest) == 0 || rest[0] != '"' {
		return "", in, parse.Errorf(in, "expected quoted-string")
	}

	b := new(strings.Builder)
	n := 1
	for n < len(rest) {
		c := rest[n]
		if c == '"' {
			return b.String(), in.Advance(n + 1), nil
		}
		if c == '\\' {
			if n+1 >= len(rest) {
				break
			}
			next := rest[n+1]
			if next != rule.HTAB && next != rule.SP && (rule.IsCTL(next)) {
				return "", in, parse.Errorf(in, "invalid quoted-pair %q", next)
			}
			b.WriteByte(next)
			n += 2
			continue
		}
		if !rule.IsQDText(c) {
			return "", in, parse.Errorf(in, "invalid quoted-string byte %q", c)
		}
		b.WriteByte(c)
		n++
	}

	return "", in, parse.Errorf(in, "unterminated quoted-string")
}

// tokenOrQuoted parses a token or a quoted-string.
func tokenOrQuoted(in parse.Input) (string, parse.Input, error) {
	return parse.Choice(parse.Parser[string](token), parse.Parser[string](quotedString))(in)
}

// formatTokenOrQuoted writes s as a bare token when possible, quoting it
// otherwise.
func formatTokenOrQuoted(s string, b *strings.Builder) {
	if rule.IsValidToken(s) {
		b.WriteString(s)
		return
	}
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
}

// list1 parses the 1#element rule: element *( OWS "," OWS element ).
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7230#section-7
func list1[T any](p parse.Parser[T]) parse.Parser[[]T] {
	sep := func(in parse.Input) (struct{}, parse.Input, error) {
		_, rest, _ := ows(in)
		_, rest, err := parse.Char(',')(rest)
		if err != nil {
			return struct{}{}, in, err
		}
		_, rest, _ = ows(rest)
		return struct{}{}, rest, nil
	}
	return parse.SepBy1(p, parse.Parser[struct{}](sep))
}

func formatList[T any](items []T, f parse.Formatter[T], b *strings.Builder) {
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		f(item, b)
	}
}

// CanonicalFieldName title-cases a valid token field name on '-' boundaries.
// Invalid tokens are returned unchanged.
func CanonicalFieldName(s string) string {
	if !rule.IsValidToken(s) {
		return s
	}

	const capitalDiff = 'a' - 'A'
	b := []byte(s)
	upper := true
	for i, c := range b {
		if upper && 'a' <= c && c <= 'z' {
			c -= capitalDiff
		} else if !upper && 'A' <= c && c <= 'Z' {
			c += capitalDiff
		}
		b[i] = c
		upper = c == '-'
	}
	return string(b)
}
