package language

import (
	"strings"

	"http-grammar/parse"
	"http-grammar/rule"
)

// Language is the primary language subtag with optional extended language
// subtags.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc5646#section-2.2.1
type Language struct {
	Primary    string
	Extensions []string
}

// Script is a "-"-prefixed 4 ALPHA script subtag.
type Script string

// Region is a "-"-prefixed region subtag: 2 ALPHA or 3 DIGIT.
type Region string

// Variant is the sequence of "-"-prefixed variant subtags.
type Variant []string

// LanguageTag is Language [Script] [Region] Variant.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc5646#section-2.1
type LanguageTag struct {
	Language Language
	Script   *Script
	Region   *Region
	Variant  Variant
}

var LanguageMapping = parse.Mapping[Language]{
	Parser:    parseLanguage,
	Formatter: formatLanguage,
}

var ScriptMapping = parse.Mapping[Script]{
	Parser:    parseScript,
	Formatter: formatScript,
}

var RegionMapping = parse.Mapping[Region]{
	Parser:    parseRegion,
	Formatter: formatRegion,
}

var VariantMapping = parse.Mapping[Variant]{
	Parser:    parseVariant,
	Formatter: formatVariant,
}

var LanguageTagMapping = parse.Mapping[LanguageTag]{
	Parser:    parseLanguageTag,
	Formatter: formatLanguageTag,
}

func ParseLanguage(s string) (Language, error) { return LanguageMapping.Parse(s) }

func ParseTag(s string) (LanguageTag, error) { return LanguageTagMapping.Parse(s) }

func TryParseTag(s string) (LanguageTag, bool, error) { return LanguageTagMapping.TryParse(s) }

func (l Language) String() string { return LanguageMapping.Format(l) }

func (s Script) String() string { return ScriptMapping.Format(s) }

func (r Region) String() string { return RegionMapping.Format(r) }

func (v Variant) String() string { return VariantMapping.Format(v) }

func (t LanguageTag) String() string { return LanguageTagMapping.Format(t) }

// alphaRun consumes a bounded non-extendable ALPHA run.
func alphaRun(min, max int) parse.Parser[string] {
	return parse.RunMinMax(min, max, rule.IsAlpha, "ALPHA")
}

// dashed parses "-" followed by p, backtracking as a unit.
func dashed[T any](p parse.Parser[T]) parse.Parser[T] {
	return func(in parse.Input) (T, parse.Input, error) {
		var zero T
		_, rest, err := parse.Char('-')(in)
		if err != nil {
			return zero, in, err
		}
		v, rest, err := p(rest)
		if err != nil {
			return zero, in, err
		}
		return v, rest, nil
	}
}

// langtag alternatives in order: 2-3 ALPHA with up to three 3 ALPHA
// extensions, 4 ALPHA, 5-8 ALPHA.
func parseLanguage(in parse.Input) (Language, parse.Input, error) {
	if primary, rest, err := alphaRun(2, 3)(in); err == nil {
		var extensions []string
		for i := 0; i < 3; i++ {
			ext, afterExt, err := dashed(alphaRun(3, 3))(rest)
			if err != nil {
				break
			}
			extensions = append(extensions, ext)
			rest = afterExt
		}
		return Language{Primary: primary, Extensions: extensions}, rest, nil
	}

	if primary, rest, err := alphaRun(4, 4)(in); err == nil {
		return Language{Primary: primary}, rest, nil
	}

	primary, rest, err := alphaRun(5, 8)(in)
	if err != nil {
		return Language{}, in, parse.Errorf(in, "expected language subtag")
	}
	return Language{Primary: primary}, rest, nil
}

func formatLanguage(l Language, b *strings.Builder) {
	b.WriteString(l.Primary)
	for _, ext := range l.Extensions {
		b.WriteByte('-')
		b.WriteString(ext)
	}
}

func parseScript(in parse.Input) (Script, parse.Input, error) {
	s, rest, err := dashed(alphaRun(4, 4))(in)
	if err != nil {
		return "", in, err
	}
	return Script(s), rest, nil
}

func formatScript(s Script, b *strings.Builder) {
	b.WriteByte('-')
	b.WriteString(string(s))
}

func parseRegion(in parse.Input) (Region, parse.Input, error) {
	region, rest, err := dashed(parse.Choice(
		alphaRun(2, 2),
		parse.RunMinMax(3, 3, rule.IsDigit, "DIGIT"),
	))(in)
	if err != nil {
		return "", in, err
	}
	return Region(region), rest, nil
}

func formatRegion(r Region, b *strings.Builder) {
	b.WriteByte('-')
	b.WriteString(string(r))
}

// variant subtag: 5-8 alphanumeric, or DIGIT followed by 3 alphanumeric.
func parseVariantSubtag(in parse.Input) (string, parse.Input, error) {
	return parse.Choice(
		parse.RunMinMax(5, 8, rule.IsAlphaNum, "alphanum"),
		func(in parse.Input) (string, parse.Input, error) {
			s, rest, err := parse.RunMinMax(4, 4, rule.IsAlphaNum, "alphanum")(in)
			if err != nil {
				return "", in, err
			}
			if !rule.IsDigit(s[0]) {
				return "", in, parse.Errorf(in, "variant subtag must start with DIGIT")
			}
			return s, rest, nil
		},
	)(in)
}

func parseVariant(in parse.Input) (Variant, parse.Input, error) {
	subtags, rest, _ := parse.Many0(dashed(parse.Parser[string](parseVariantSubtag)))(in)
	return Variant(subtags), rest, nil
}

func formatVariant(v Variant, b *strings.Builder) {
	for _, subtag := range v {
		b.WriteByte('-')
		b.WriteString(subtag)
	}
}

func parseLanguageTag(in parse.Input) (LanguageTag, parse.Input, error) {
	lang, rest, err := parseLanguage(in)
	if err != nil {
		return LanguageTag{}, in, err
	}

	script, rest, _ := parse.Opt[Script](parseScript)(rest)
	region, rest, _ := parse.Opt[Region](parseRegion)(rest)
	variant, rest, _ := parseVariant(rest)

	return LanguageTag{
		Language: lang,
		Script:   script,
		Region:   region,
		Variant:  variant,
	}, rest, nil
}

func formatLanguageTag(t LanguageTag, b *strings.Builder) {
	formatLanguage(t.Language, b)
	if t.Script != nil {
		formatScript(*t.Script, b)
	}
	if t.Region != nil {
		formatRegion(*t.Region, b)
	}
	formatVariant(t.Variant, b)
}
