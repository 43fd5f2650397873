package uri

import (
	"strings"

	"http-grammar/parse"
	"http-grammar/percent"
)

// Query holds the decoded query component. Its parser consumes the leading
// "?" and its formatter reproduces it.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.4
type Query string

// Fragment holds the decoded fragment component. Its parser consumes the
// leading "#" and its formatter reproduces it.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.5
type Fragment string

var queryCodec = percent.Codec(isQueryFragChar)

var QueryMapping = parse.Mapping[Query]{
	Parser:    parseQuery,
	Formatter: formatQuery,
}

var FragmentMapping = parse.Mapping[Fragment]{
	Parser:    parseFragment,
	Formatter: formatFragment,
}

func ParseQuery(s string) (Query, error) { return QueryMapping.Parse(s) }

func TryParseQuery(s string) (Query, bool, error) { return QueryMapping.TryParse(s) }

func (q Query) String() string { return QueryMapping.Format(q) }

func ParseFragment(s string) (Fragment, error) { return FragmentMapping.Parse(s) }

func TryParseFragment(s string) (Fragment, bool, error) { return FragmentMapping.TryParse(s) }

func (f Fragment) String() string { return FragmentMapping.Format(f) }

func parseQuery(in parse.Input) (Query, parse.Input, error) {
	_, rest, err := parse.Char('?')(in)
	if err != nil {
		return "", in, err
	}
	s, rest, err := queryCodec.Parser(rest)
	if err != nil {
		return "", in, err
	}
	return Query(s), rest, nil
}

func formatQuery(q Query, b *strings.Builder) {
	b.WriteByte('?')
	queryCodec.Formatter(string(q), b)
}

func parseFragment(in parse.Input) (Fragment, parse.Input, error) {
	_, rest, err := parse.Char('#')(in)
	if err != nil {
		return "", in, err
	}
	s, rest, err := queryCodec.Parser(rest)
	if err != nil {
		return "", in, err
	}
	return Fragment(s), rest, nil
}

func formatFragment(f Fragment, b *strings.Builder) {
	b.WriteByte('#')
	queryCodec.Formatter(string(f), b)
}
