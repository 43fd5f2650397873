package uritemplate

import (
	"strconv"
	"strings"

	"http-grammar/parse"
	"http-grammar/rule"
)

// Part is one element of a template: a Literal run or an Expression.
type Part interface {
	isPart()
	String() string
}

// Literal is a verbatim run of template text. It is stored in its textual
// form, percent-triples included.
type Literal string

// Expression is "{" [Operator] VariableList "}".
//
// Reference: https://datatracker.ietf.org/doc/html/rfc6570#section-2.2
type Expression struct {
	Operator  *Operator
	Variables []VarSpec
}

func (Literal) isPart()    {}
func (Expression) isPart() {}

// Modifier alters how a single variable expands: Prefix truncates atoms,
// Explode spreads composite values across the operator's separator.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc6570#section-2.4
type Modifier interface {
	isModifier()
}

type Prefix struct{ Length int }

type Explode struct{}

func (Prefix) isModifier()  {}
func (Explode) isModifier() {}

// VarSpec is a variable name with an optional modifier. The name keeps its
// textual form: dots and percent-triples are not interpreted.
type VarSpec struct {
	Name     string
	Modifier Modifier
}

// UriTemplate is a non-empty sequence of parts.
type UriTemplate struct {
	Parts []Part
}

var Mapping = parse.Mapping[UriTemplate]{
	Parser:    parseTemplate,
	Formatter: formatTemplate,
}

var PartMapping = parse.Mapping[Part]{
	Parser:    parsePart,
	Formatter: formatPart,
}

func Parse(s string) (UriTemplate, error) { return Mapping.Parse(s) }

func TryParse(s string) (UriTemplate, bool, error) { return Mapping.TryParse(s) }

func (t UriTemplate) String() string { return Mapping.Format(t) }

func (l Literal) String() string { return PartMapping.Format(l) }

func (e Expression) String() string { return PartMapping.Format(e) }

// Concat appends other to t. A literal boundary between the two templates
// is merged into a single literal, so concatenation is associative.
func (t UriTemplate) Concat(other UriTemplate) UriTemplate {
	if len(t.Parts) == 0 {
		return UriTemplate{Parts: other.Parts}
	}
	if len(other.Parts) == 0 {
		return UriTemplate{Parts: t.Parts}
	}

	parts := make([]Part, 0, len(t.Parts)+len(other.Parts))
	parts = append(parts, t.Parts...)

	last, lastIsLit := parts[len(parts)-1].(Literal)
	first, firstIsLit := other.Parts[0].(Literal)
	if lastIsLit && firstIsLit {
		parts[len(parts)-1] = last + first
		parts = append(parts, other.Parts[1:]...)
	} else {
		parts = append(parts, other.Parts...)
	}

	return UriTemplate{Parts: parts}
}

func isLiteralChar(c byte) bool {
	return 0x21 <= c && c <= 0x7E && c != '{' && c != '}' && c != '%'
}

func isTriple(s string, i int) bool {
	return i+2 < len(s) &&
		s[i] == '%' &&
		rule.IsHexDig(s[i+1]) &&
		rule.IsHexDig(s[i+2])
}

func isVarChar(c byte) bool {
	return rule.IsAlphaNum(c) || c == '_'
}

// parseLiteral consumes a non-empty run of literal bytes or percent-triples,
// kept in textual form.
func parseLiteral(in parse.Input) (Literal, parse.Input, error) {
	rest := in.Rest()
	n := 0
	for n < len(rest) {
		if isTriple(rest, n) {
			n += 3
			continue
		}
		if !isLiteralChar(rest[n]) {
			break
		}
		n++
	}
	if n == 0 {
		return "", in, parse.Errorf(in, "expected literal")
	}
	return Literal(rest[:n]), in.Advance(n), nil
}

// parseVarName parses dot-separated runs of varchars. Percent-triples count
// as varchars and stay encoded.
func parseVarName(in parse.Input) (string, parse.Input, error) {
	rest := in.Rest()
	n := 0
	for n < len(rest) {
		c := rest[n]
		if isTriple(rest, n) {
			n += 3
			continue
		}
		if isVarChar(c) {
			n++
			continue
		}
		if c == '.' && n > 0 && n+1 < len(rest) &&
			(isVarChar(rest[n+1]) || isTriple(rest, n+1)) {
			n++
			continue
		}
		break
	}
	if n == 0 {
		return "", in, parse.Errorf(in, "expected variable name")
	}
	return rest[:n], in.Advance(n), nil
}

// max-length is 1-4 DIGIT with a non-zero first digit.
func parseModifier(in parse.Input) (Modifier, parse.Input, error) {
	if _, rest, err := parse.Char('*')(in); err == nil {
		return Explode{}, rest, nil
	}

	_, rest, err := parse.Char(':')(in)
	if err != nil {
		return nil, in, err
	}
	digits, rest, err := parse.RunMinMax(1, 4, rule.IsDigit, "DIGIT")(rest)
	if err != nil {
		return nil, in, err
	}
	if digits[0] == '0' {
		return nil, in, parse.Errorf(in, "prefix length must not start with 0")
	}
	length, err := strconv.Atoi(digits)
	if err != nil {
		return nil, in, parse.Errorf(in, "prefix length is not a number")
	}
	return Prefix{Length: length}, rest, nil
}

func parseVarSpec(in parse.Input) (VarSpec, parse.Input, error) {
	name, rest, err := parseVarName(in)
	if err != nil {
		return VarSpec{}, in, err
	}

	modifier, afterMod, err := parseModifier(rest)
	if err != nil {
		return VarSpec{Name: name}, rest, nil
	}

	return VarSpec{Name: name, Modifier: modifier}, afterMod, nil
}

func parseExpression(in parse.Input) (Expression, parse.Input, error) {
	body := func(in parse.Input) (Expression, parse.Input, error) {
		operator, rest, _ := parse.Opt[Operator](parseOperator)(in)
		variables, rest, err := parse.SepBy1(
			parse.Parser[VarSpec](parseVarSpec),
			parse.Char(','),
		)(rest)
		if err != nil {
			return Expression{}, in, err
		}
		return Expression{Operator: operator, Variables: variables}, rest, nil
	}
	return parse.Between('{', '}', parse.Parser[Expression](body))(in)
}

func parsePart(in parse.Input) (Part, parse.Input, error) {
	if c, ok := in.Peek(); ok && c == '{' {
		expr, rest, err := parseExpression(in)
		if err != nil {
			return nil, in, err
		}
		return expr, rest, nil
	}
	lit, rest, err := parseLiteral(in)
	if err != nil {
		return nil, in, err
	}
	return lit, rest, nil
}

func parseTemplate(in parse.Input) (UriTemplate, parse.Input, error) {
	parts, rest, err := parse.Many1(parse.Parser[Part](parsePart))(in)
	if err != nil {
		return UriTemplate{}, in, err
	}
	return UriTemplate{Parts: parts}, rest, nil
}

func formatPart(p Part, b *strings.Builder) {
	switch part := p.(type) {
	case Literal:
		b.WriteString(string(part))
	case Expression:
		formatExpression(part, b)
	}
}

func formatExpression(e Expression, b *strings.Builder) {
	b.WriteByte('{')
	if e.Operator != nil {
		b.WriteByte(byte(*e.Operator))
	}
	for i, v := range e.Variables {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(v.Name)
		switch mod := v.Modifier.(type) {
		case Prefix:
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(mod.Length))
		case Explode:
			b.WriteByte('*')
		}
	}
	b.WriteByte('}')
}

func formatTemplate(t UriTemplate, b *strings.Builder) {
	for _, part := range t.Parts {
		formatPart(part, b)
	}
}
