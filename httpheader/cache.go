package httpheader

import (
	"strconv"
	"strings"
	"time"

	"http-grammar/parse"
	"http-grammar/rule"
)

// Directive is a single cache directive: a lowercased token name and an
// optional argument.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7234#section-5.2
type Directive struct {
	Name  string
	Value *string
}

// CacheControl is 1#cache-directive.
type CacheControl []Directive

// Age is the Age header value in delta-seconds.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7234#section-5.1
type Age uint32

var CacheControlMapping = parse.Mapping[CacheControl]{
	Parser:    parseCacheControl,
	Formatter: formatCacheControl,
}

var AgeMapping = parse.Mapping[Age]{
	Parser:    parseAge,
	Formatter: formatAge,
}

func ParseCacheControl(s string) (CacheControl, error) { return CacheControlMapping.Parse(s) }

func TryParseCacheControl(s string) (CacheControl, bool, error) {
	return CacheControlMapping.TryParse(s)
}

func ParseAge(s string) (Age, error) { return AgeMapping.Parse(s) }

func (c CacheControl) String() string { return CacheControlMapping.Format(c) }

func (a Age) String() string { return AgeMapping.Format(a) }

func (a Age) Duration() time.Duration { return time.Duration(a) * time.Second }

// Get returns the first directive with the given name, matched
// case-insensitively.
func (c CacheControl) Get(name string) (Directive, bool) {
	name = strings.ToLower(name)
	for _, d := range c {
		if d.Name == name {
			return d, true
		}
	}
	return Directive{}, false
}

// Has reports whether the named directive is present, with or without an
// argument.
func (c CacheControl) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// deltaSeconds returns the named directive's argument interpreted as
// delta-seconds.
func (c CacheControl) deltaSeconds(name string) (time.Duration, bool) {
	d, ok := c.Get(name)
	if !ok || d.Value == nil {
		return 0, false
	}
	n, err := strconv.ParseUint(*d.Value, 10, 32)
	if err != nil {
		return 0, false
	}
	return time.Duration(n) * time.Second, true
}

func (c CacheControl) MaxAge() (time.Duration, bool) { return c.deltaSeconds("max-age") }

func (c CacheControl) SMaxAge() (time.Duration, bool) { return c.deltaSeconds("s-maxage") }

func (c CacheControl) NoCache() bool { return c.Has("no-cache") }

func (c CacheControl) NoStore() bool { return c.Has("no-store") }

func parseDirective(in parse.Input) (Directive, parse.Input, error) {
	name, rest, err := token(in)
	if err != nil {
		return Directive{}, in, err
	}

	out := Directive{Name: strings.ToLower(name)}

	if c, ok := rest.Peek(); ok && c == '=' {
		value, afterValue, err := tokenOrQuoted(rest.Advance(1))
		if err != nil {
			return Directive{}, in, err
		}
		out.Value = &value
		rest = afterValue
	}

	return out, rest, nil
}

func parseCacheControl(in parse.Input) (CacheControl, parse.Input, error) {
	directives, rest, err := list1(parse.Parser[Directive](parseDirective))(in)
	if err != nil {
		return nil, in, err
	}
	return CacheControl(directives), rest, nil
}

func formatCacheControl(c CacheControl, b *strings.Builder) {
	format := func(d Directive, b *strings.Builder) {
		b.WriteString(d.Name)
		if d.Value != nil {
			b.WriteByte('=')
			formatTokenOrQuoted(*d.Value, b)
		}
	}
	formatList([]Directive(c), format, b)
}

func parseAge(in parse.Input) (Age, parse.Input, error) {
	digits, rest, err := parse.TakeWhile1(rule.IsDigit, "DIGIT")(in)
	if err != nil {
		return 0, in, err
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, in, parse.Errorf(in, "delta-seconds out of range")
	}
	return Age(n), rest, nil
}

func formatAge(a Age, b *strings.Builder) {
	b.WriteString(strconv.FormatUint(uint64(a), 10))
}
