package uri

import (
	"strings"

	"http-grammar/parse"
	"http-grammar/rule"
)

// Scheme names a URI scheme. It begins with ALPHA; the remainder is
// ALPHA / DIGIT / "+" / "-" / ".".
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.1
type Scheme string

var SchemeMapping = parse.Mapping[Scheme]{
	Parser:    parseScheme,
	Formatter: formatScheme,
}

func ParseScheme(s string) (Scheme, error) { return SchemeMapping.Parse(s) }

func TryParseScheme(s string) (Scheme, bool, error) { return SchemeMapping.TryParse(s) }

func (s Scheme) String() string { return SchemeMapping.Format(s) }

// IsValid reports whether the value matches the scheme production. Hand
// built values are not validated at construction.
func (s Scheme) IsValid() bool {
	if len(s) == 0 || !rule.IsAlpha(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !isSchemeChar(s[i]) {
			return false
		}
	}
	return true
}

func parseScheme(in parse.Input) (Scheme, parse.Input, error) {
	c, ok := in.Peek()
	if !ok || !rule.IsAlpha(c) {
		return "", in, parse.Errorf(in, "scheme must start with ALPHA")
	}

	rest := in.Rest()
	n := 1
	for n < len(rest) && isSchemeChar(rest[n]) {
		n++
	}

	return Scheme(rest[:n]), in.Advance(n), nil
}

func formatScheme(s Scheme, b *strings.Builder) {
	b.WriteString(string(s))
}
