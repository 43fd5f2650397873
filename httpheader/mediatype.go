package httpheader

import (
	"strings"

	"http-grammar/parse"
)

// Parameter is a single media type parameter. The name is lowercased on
// parse; the value keeps its case.
type Parameter struct {
	Name  string
	Value string
}

// MediaType is type "/" subtype *( OWS ";" OWS parameter ), as carried by
// Content-Type. Type and subtype are lowercased on parse.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7231#section-3.1.1.1
type MediaType struct {
	Type       string
	Subtype    string
	Parameters []Parameter
}

var MediaTypeMapping = parse.Mapping[MediaType]{
	Parser:    parseMediaType,
	Formatter: formatMediaType,
}

func ParseMediaType(s string) (MediaType, error) { return MediaTypeMapping.Parse(s) }

func TryParseMediaType(s string) (MediaType, bool, error) { return MediaTypeMapping.TryParse(s) }

func (m MediaType) String() string { return MediaTypeMapping.Format(m) }

// Param returns the value of the named parameter, matching case-insensitively.
func (m MediaType) Param(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, p := range m.Parameters {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

func parseParameter(in parse.Input) (Parameter, parse.Input, error) {
	name, rest, err := token(in)
	if err != nil {
		return Parameter{}, in, err
	}
	_, rest, err = parse.Char('=')(rest)
	if err != nil {
		return Parameter{}, in, err
	}
	value, rest, err := tokenOrQuoted(rest)
	if err != nil {
		return Parameter{}, in, err
	}
	return Parameter{Name: strings.ToLower(name), Value: value}, rest, nil
}

func parseMediaType(in parse.Input) (MediaType, parse.Input, error) {
	typ, rest, err := token(in)
	if err != nil {
		return MediaType{}, in, err
	}
	_, rest, err = parse.Char('/')(rest)
	if err != nil {
		return MediaType{}, in, err
	}
	subtype, rest, err := token(rest)
	if err != nil {
		return MediaType{}, in, err
	}

	out := MediaType{Type: strings.ToLower(typ), Subtype: strings.ToLower(subtype)}

	for {
		attempt := rest
		_, attempt, _ = ows(attempt)
		_, attempt, err := parse.Char(';')(attempt)
		if err != nil {
			break
		}
		_, attempt, _ = ows(attempt)
		param, attempt, err := parseParameter(attempt)
		if err != nil {
			break
		}
		out.Parameters = append(out.Parameters, param)
		rest = attempt
	}

	return out, rest, nil
}

func formatMediaType(m MediaType, b *strings.Builder) {
	b.WriteString(m.Type)
	b.WriteByte('/')
	b.WriteString(m.Subtype)
	for _, p := range m.Parameters {
		b.WriteString("; ")
		b.WriteString(p.Name)
		b.WriteByte('=')
		formatTokenOrQuoted(p.Value, b)
	}
}
