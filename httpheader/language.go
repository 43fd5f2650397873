package httpheader

import (
	"strings"

	"http-grammar/language"
	"http-grammar/parse"
	"http-grammar/rule"
)

// QValue is a quality weight in thousandths, 0 through 1000.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7231#section-5.3.1
type QValue uint16

// ContentLanguage is 1#language-tag.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7231#section-3.1.3.2
type ContentLanguage []language.LanguageTag

// AcceptLanguageItem is a language range with an optional weight.
type AcceptLanguageItem struct {
	Range  language.LanguageRange
	Weight *QValue
}

// AcceptLanguage is 1#( language-range [ weight ] ).
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7231#section-5.3.5
type AcceptLanguage []AcceptLanguageItem

var QValueMapping = parse.Mapping[QValue]{
	Parser:    parseQValue,
	Formatter: formatQValue,
}

var ContentLanguageMapping = parse.Mapping[ContentLanguage]{
	Parser:    parseContentLanguage,
	Formatter: formatContentLanguage,
}

var AcceptLanguageMapping = parse.Mapping[AcceptLanguage]{
	Parser:    parseAcceptLanguage,
	Formatter: formatAcceptLanguage,
}

func ParseContentLanguage(s string) (ContentLanguage, error) {
	return ContentLanguageMapping.Parse(s)
}

func ParseAcceptLanguage(s string) (AcceptLanguage, error) {
	return AcceptLanguageMapping.Parse(s)
}

func (q QValue) String() string { return QValueMapping.Format(q) }

func (c ContentLanguage) String() string { return ContentLanguageMapping.Format(c) }

func (a AcceptLanguage) String() string { return AcceptLanguageMapping.Format(a) }

// qvalue = ( "0" [ "." 0*3DIGIT ] ) / ( "1" [ "." 0*3("0") ] )
func parseQValue(in parse.Input) (QValue, parse.Input, error) {
	first, ok := in.Peek()
	if !ok || (first != '0' && first != '1') {
		return 0, in, parse.Errorf(in, "expected qvalue")
	}
	rest := in.Advance(1)

	value := QValue(0)
	if first == '1' {
		value = 1000
	}

	c, ok := rest.Peek()
	if !ok || c != '.' {
		return value, rest, nil
	}
	rest = rest.Advance(1)

	scale := QValue(100)
	for i := 0; i < 3; i++ {
		c, ok := rest.Peek()
		if !ok || !rule.IsDigit(c) {
			break
		}
		if first == '1' && c != '0' {
			return 0, in, parse.Errorf(rest, "qvalue exceeds 1")
		}
		value += QValue(c-'0') * scale
		scale /= 10
		rest = rest.Advance(1)
	}

	return value, rest, nil
}

func formatQValue(q QValue, b *strings.Builder) {
	if q >= 1000 {
		b.WriteByte('1')
		return
	}

	b.WriteByte('0')
	if q == 0 {
		return
	}

	digits := []byte{
		byte(q/100) + '0',
		byte(q/10%10) + '0',
		byte(q%10) + '0',
	}
	n := 3
	for n > 1 && digits[n-1] == '0' {
		n--
	}
	b.WriteByte('.')
	b.Write(digits[:n])
}

func parseContentLanguage(in parse.Input) (ContentLanguage, parse.Input, error) {
	tags, rest, err := list1(language.LanguageTagMapping.Parser)(in)
	if err != nil {
		return nil, in, err
	}
	return ContentLanguage(tags), rest, nil
}

func formatContentLanguage(c ContentLanguage, b *strings.Builder) {
	formatList([]language.LanguageTag(c), language.LanguageTagMapping.Formatter, b)
}

// weight = OWS ";" OWS "q=" qvalue
func parseWeight(in parse.Input) (QValue, parse.Input, error) {
	_, rest, _ := ows(in)
	_, rest, err := parse.Char(';')(rest)
	if err != nil {
		return 0, in, err
	}
	_, rest, _ = ows(rest)
	_, rest, err = parse.Choice(parse.Literal("q="), parse.Literal("Q="))(rest)
	if err != nil {
		return 0, in, err
	}
	q, rest, err := parseQValue(rest)
	if err != nil {
		return 0, in, err
	}
	return q, rest, nil
}

func parseAcceptLanguageItem(in parse.Input) (AcceptLanguageItem, parse.Input, error) {
	r, rest, err := language.LanguageRangeMapping.Parser(in)
	if err != nil {
		return AcceptLanguageItem{}, in, err
	}
	weight, rest, _ := parse.Opt[QValue](parseWeight)(rest)
	return AcceptLanguageItem{Range: r, Weight: weight}, rest, nil
}

func parseAcceptLanguage(in parse.Input) (AcceptLanguage, parse.Input, error) {
	items, rest, err := list1(parse.Parser[AcceptLanguageItem](parseAcceptLanguageItem))(in)
	if err != nil {
		return nil, in, err
	}
	return AcceptLanguage(items), rest, nil
}

func formatAcceptLanguageItem(item AcceptLanguageItem, b *strings.Builder) {
	b.WriteString(item.Range.String())
	if item.Weight != nil {
		b.WriteString(";q=")
		formatQValue(*item.Weight, b)
	}
}

func formatAcceptLanguage(a AcceptLanguage, b *strings.Builder) {
	formatList([]AcceptLanguageItem(a), formatAcceptLanguageItem, b)
}
