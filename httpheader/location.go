package httpheader

import (
	"strings"

	"http-grammar/parse"
	"http-grammar/uri"
)

// Location is the Location header value, a URI reference resolved by the
// recipient against the effective request URI.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7231#section-7.1.2
type Location struct {
	Target uri.UriReference
}

// ContentLocation is the Content-Location header value.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7231#section-3.1.4.2
type ContentLocation struct {
	Reference uri.UriReference
}

// Referer is the Referer header value. The fragmentless absolute form and
// the partial form are both URI references without a fragment; the
// fragment is rejected on parse.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc7231#section-5.5.2
type Referer struct {
	Reference uri.UriReference
}

var LocationMapping = parse.Mapping[Location]{
	Parser:    parseLocation,
	Formatter: formatLocation,
}

var ContentLocationMapping = parse.Mapping[ContentLocation]{
	Parser:    parseContentLocation,
	Formatter: formatContentLocation,
}

var RefererMapping = parse.Mapping[Referer]{
	Parser:    parseReferer,
	Formatter: formatReferer,
}

func ParseLocation(s string) (Location, error) { return LocationMapping.Parse(s) }

func ParseContentLocation(s string) (ContentLocation, error) {
	return ContentLocationMapping.Parse(s)
}

func ParseReferer(s string) (Referer, error) { return RefererMapping.Parse(s) }

func (l Location) String() string { return LocationMapping.Format(l) }

func (c ContentLocation) String() string { return ContentLocationMapping.Format(c) }

func (r Referer) String() string { return RefererMapping.Format(r) }

func parseLocation(in parse.Input) (Location, parse.Input, error) {
	ref, rest, err := uri.UriReferenceMapping.Parser(in)
	if err != nil {
		return Location{}, in, err
	}
	return Location{Target: ref}, rest, nil
}

func parseContentLocation(in parse.Input) (ContentLocation, parse.Input, error) {
	ref, rest, err := uri.UriReferenceMapping.Parser(in)
	if err != nil {
		return ContentLocation{}, in, err
	}
	return ContentLocation{Reference: ref}, rest, nil
}

func parseReferer(in parse.Input) (Referer, parse.Input, error) {
	ref, rest, err := uri.UriReferenceMapping.Parser(in)
	if err != nil {
		return Referer{}, in, err
	}
	if fragmented(ref) {
		return Referer{}, in, parse.Errorf(in, "referer must not carry a fragment")
	}
	return Referer{Reference: ref}, rest, nil
}

func fragmented(ref uri.UriReference) bool {
	switch r := ref.(type) {
	case uri.Uri:
		return r.Fragment != nil
	case uri.RelativeReference:
		return r.Fragment != nil
	}
	return false
}

func formatLocation(l Location, b *strings.Builder) {
	b.WriteString(uri.UriReferenceMapping.Format(l.Target))
}

func formatContentLocation(c ContentLocation, b *strings.Builder) {
	b.WriteString(uri.UriReferenceMapping.Format(c.Reference))
}

func formatReferer(r Referer, b *strings.Builder) {
	b.WriteString(uri.UriReferenceMapping.Format(r.Reference))
}
