package httpheader

import (
	"strconv"
	"strings"
	"time"

	"http-grammar/parse"
	"http-grammar/rule"
)

// imfFixdate is the preferred HTTP-date form. Obsolete forms (RFC 850,
// asctime) are accepted on parse.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7231#section-7.1.1.1
const imfFixdate = "Mon, 02 Jan 2006 15:04:05 GMT"

const (
	rfc850Date  = "Monday, 02-Jan-06 15:04:05 GMT"
	asctimeDate = "Mon Jan _2 15:04:05 2006"
)

// HTTPDate carries Date, Expires, Last-Modified and friends. The value is
// always emitted as IMF-fixdate in UTC.
type HTTPDate time.Time

var HTTPDateMapping = parse.Mapping[HTTPDate]{
	Parser:    parseHTTPDate,
	Formatter: formatHTTPDate,
}

func ParseHTTPDate(s string) (HTTPDate, error) { return HTTPDateMapping.Parse(s) }

func TryParseHTTPDate(s string) (HTTPDate, bool, error) { return HTTPDateMapping.TryParse(s) }

func (d HTTPDate) String() string { return HTTPDateMapping.Format(d) }

func (d HTTPDate) Time() time.Time { return time.Time(d) }

// An HTTP-date is always the whole remaining field value; the obsolete
// RFC 850 form has a variable-length weekday, so no fixed width applies.
func parseHTTPDate(in parse.Input) (HTTPDate, parse.Input, error) {
	rest := in.Rest()

	for _, layout := range []string{imfFixdate, rfc850Date, asctimeDate} {
		t, err := time.Parse(layout, rest)
		if err != nil {
			continue
		}
		return HTTPDate(t.UTC()), in.Advance(len(rest)), nil
	}

	return HTTPDate{}, in, parse.Errorf(in, "expected HTTP-date")
}

func formatHTTPDate(d HTTPDate, b *strings.Builder) {
	b.WriteString(time.Time(d).UTC().Format(imfFixdate))
}

// RetryAfter is either an HTTP-date or a delay in delta-seconds.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7231#section-7.1.3
type RetryAfter interface {
	isRetryAfter()
	String() string
}

type RetryDate HTTPDate

type RetryDelay uint32

func (RetryDate) isRetryAfter()  {}
func (RetryDelay) isRetryAfter() {}

var RetryAfterMapping = parse.Mapping[RetryAfter]{
	Parser:    parseRetryAfter,
	Formatter: formatRetryAfter,
}

func ParseRetryAfter(s string) (RetryAfter, error) { return RetryAfterMapping.Parse(s) }

func (r RetryDate) String() string { return RetryAfterMapping.Format(r) }

func (r RetryDelay) String() string { return RetryAfterMapping.Format(r) }

func parseRetryAfter(in parse.Input) (RetryAfter, parse.Input, error) {
	if d, rest, err := parseHTTPDate(in); err == nil {
		return RetryDate(d), rest, nil
	}

	digits, rest, err := parse.TakeWhile1(rule.IsDigit, "DIGIT")(in)
	if err != nil {
		return nil, in, parse.Errorf(in, "expected HTTP-date or delta-seconds")
	}
	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return nil, in, parse.Errorf(in, "delta-seconds out of range")
	}
	return RetryDelay(n), rest, nil
}

func formatRetryAfter(r RetryAfter, b *strings.Builder) {
	switch v := r.(type) {
	case RetryDate:
		formatHTTPDate(HTTPDate(v), b)
	case RetryDelay:
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	}
}
