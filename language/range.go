package language

import (
	"strings"

	"http-grammar/parse"
	"http-grammar/rule"
)

// LanguageRange matches language tags for content negotiation. Any is the
// wildcard "*"; Range is a basic language range of 1-8 alphanum subtags
// where the first is 1-8 ALPHA.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc4647#section-2.1
type LanguageRange interface {
	isLanguageRange()
	String() string
}

type Any struct{}

type Range []string

func (Any) isLanguageRange()   {}
func (Range) isLanguageRange() {}

var LanguageRangeMapping = parse.Mapping[LanguageRange]{
	Parser:    parseLanguageRange,
	Formatter: formatLanguageRange,
}

func ParseRange(s string) (LanguageRange, error) { return LanguageRangeMapping.Parse(s) }

func TryParseRange(s string) (LanguageRange, bool, error) { return LanguageRangeMapping.TryParse(s) }

func (Any) String() string { return "*" }

func (r Range) String() string { return LanguageRangeMapping.Format(r) }

func parseLanguageRange(in parse.Input) (LanguageRange, parse.Input, error) {
	if _, rest, err := parse.Char('*')(in); err == nil {
		return Any{}, rest, nil
	}

	first, rest, err := alphaRun(1, 8)(in)
	if err != nil {
		return nil, in, parse.Errorf(in, "expected language range")
	}

	subtags := []string{first}
	for {
		subtag, afterSubtag, err := dashed(parse.RunMinMax(1, 8, rule.IsAlphaNum, "alphanum"))(rest)
		if err != nil {
			break
		}
		subtags = append(subtags, subtag)
		rest = afterSubtag
	}

	return Range(subtags), rest, nil
}

func formatLanguageRange(r LanguageRange, b *strings.Builder) {
	switch rng := r.(type) {
	case Any:
		b.WriteByte('*')
	case Range:
		for i, subtag := range rng {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteString(subtag)
		}
	}
}
