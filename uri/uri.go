package uri

import (
	"strings"

	"http-grammar/parse"
)

// HierarchyPart is the hier-part production: authority with a path, one of
// the authority-less path forms, or nothing at all.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3
type HierarchyPart interface {
	isHierarchyPart()
	String() string
}

type HierarchyAuthority struct {
	Authority Authority
	Path      PathAbsoluteOrEmpty
}

type HierarchyAbsolute struct{ Path PathAbsolute }

type HierarchyRootless struct{ Path PathRootless }

type HierarchyEmpty struct{}

func (HierarchyAuthority) isHierarchyPart() {}
func (HierarchyAbsolute) isHierarchyPart()  {}
func (HierarchyRootless) isHierarchyPart()  {}
func (HierarchyEmpty) isHierarchyPart()     {}

// RelativePart is the relative-part production. It mirrors HierarchyPart
// but its rootless form excludes ":" from the first segment.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-4.2
type RelativePart interface {
	isRelativePart()
	String() string
}

type RelativeAuthority struct {
	Authority Authority
	Path      PathAbsoluteOrEmpty
}

type RelativeAbsolute struct{ Path PathAbsolute }

type RelativeNoScheme struct{ Path PathNoScheme }

type RelativeEmpty struct{}

func (RelativeAuthority) isRelativePart() {}
func (RelativeAbsolute) isRelativePart()  {}
func (RelativeNoScheme) isRelativePart()  {}
func (RelativeEmpty) isRelativePart()     {}

// Uri is scheme ":" hier-part [ "?" query ] [ "#" fragment ].
type Uri struct {
	Scheme    Scheme
	Hierarchy HierarchyPart
	Query     *Query
	Fragment  *Fragment
}

// AbsoluteUri is a Uri without a fragment.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-4.3
type AbsoluteUri struct {
	Scheme    Scheme
	Hierarchy HierarchyPart
	Query     *Query
}

// RelativeReference is relative-part [ "?" query ] [ "#" fragment ].
type RelativeReference struct {
	Relative RelativePart
	Query    *Query
	Fragment *Fragment
}

// UriReference is either a Uri or a RelativeReference. Parsing attempts Uri
// first.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-4.1
type UriReference interface {
	isUriReference()
	String() string
}

func (Uri) isUriReference()               {}
func (RelativeReference) isUriReference() {}

var HierarchyPartMapping = parse.Mapping[HierarchyPart]{
	Parser:    parseHierarchyPart,
	Formatter: formatHierarchyPart,
}

var RelativePartMapping = parse.Mapping[RelativePart]{
	Parser:    parseRelativePart,
	Formatter: formatRelativePart,
}

var UriMapping = parse.Mapping[Uri]{
	Parser:    parseUri,
	Formatter: formatUri,
}

var AbsoluteUriMapping = parse.Mapping[AbsoluteUri]{
	Parser:    parseAbsoluteUri,
	Formatter: formatAbsoluteUri,
}

var RelativeReferenceMapping = parse.Mapping[RelativeReference]{
	Parser:    parseRelativeReference,
	Formatter: formatRelativeReference,
}

var UriReferenceMapping = parse.Mapping[UriReference]{
	Parser:    parseUriReference,
	Formatter: formatUriReference,
}

func Parse(s string) (Uri, error) { return UriMapping.Parse(s) }

func TryParse(s string) (Uri, bool, error) { return UriMapping.TryParse(s) }

func ParseAbsolute(s string) (AbsoluteUri, error) { return AbsoluteUriMapping.Parse(s) }

func TryParseAbsolute(s string) (AbsoluteUri, bool, error) { return AbsoluteUriMapping.TryParse(s) }

func ParseRelativeReference(s string) (RelativeReference, error) {
	return RelativeReferenceMapping.Parse(s)
}

func ParseReference(s string) (UriReference, error) { return UriReferenceMapping.Parse(s) }

func TryParseReference(s string) (UriReference, bool, error) {
	return UriReferenceMapping.TryParse(s)
}

func (u Uri) String() string { return UriMapping.Format(u) }

func (u AbsoluteUri) String() string { return AbsoluteUriMapping.Format(u) }

func (r RelativeReference) String() string { return RelativeReferenceMapping.Format(r) }

func (h HierarchyAuthority) String() string { return HierarchyPartMapping.Format(h) }
func (h HierarchyAbsolute) String() string  { return HierarchyPartMapping.Format(h) }
func (h HierarchyRootless) String() string  { return HierarchyPartMapping.Format(h) }
func (h HierarchyEmpty) String() string     { return HierarchyPartMapping.Format(h) }

func (r RelativeAuthority) String() string { return RelativePartMapping.Format(r) }
func (r RelativeAbsolute) String() string  { return RelativePartMapping.Format(r) }
func (r RelativeNoScheme) String() string  { return RelativePartMapping.Format(r) }
func (r RelativeEmpty) String() string     { return RelativePartMapping.Format(r) }

func parseHierarchyPart(in parse.Input) (HierarchyPart, parse.Input, error) {
	if strings.HasPrefix(in.Rest(), "//") {
		authority, rest, err := parseAuthority(in.Advance(2))
		if err != nil {
			return nil, in, err
		}
		path, rest, err := parsePathAbsoluteOrEmpty(rest)
		if err != nil {
			return nil, in, err
		}
		return HierarchyAuthority{Authority: authority, Path: path}, rest, nil
	}

	if c, ok := in.Peek(); ok && c == '/' {
		path, rest, err := parsePathAbsolute(in)
		if err != nil {
			return nil, in, err
		}
		return HierarchyAbsolute{Path: path}, rest, nil
	}

	if path, rest, err := parsePathRootless(in); err == nil {
		return HierarchyRootless{Path: path}, rest, nil
	}

	return HierarchyEmpty{}, in, nil
}

func parseRelativePart(in parse.Input) (RelativePart, parse.Input, error) {
	if strings.HasPrefix(in.Rest(), "//") {
		authority, rest, err := parseAuthority(in.Advance(2))
		if err != nil {
			return nil, in, err
		}
		path, rest, err := parsePathAbsoluteOrEmpty(rest)
		if err != nil {
			return nil, in, err
		}
		return RelativeAuthority{Authority: authority, Path: path}, rest, nil
	}

	if c, ok := in.Peek(); ok && c == '/' {
		path, rest, err := parsePathAbsolute(in)
		if err != nil {
			return nil, in, err
		}
		return RelativeAbsolute{Path: path}, rest, nil
	}

	if path, rest, err := parsePathNoScheme(in); err == nil {
		return RelativeNoScheme{Path: path}, rest, nil
	}

	return RelativeEmpty{}, in, nil
}

func formatHierarchyPart(h HierarchyPart, b *strings.Builder) {
	switch part := h.(type) {
	case HierarchyAuthority:
		b.WriteString("//")
		formatAuthority(part.Authority, b)
		formatPathAbsoluteOrEmpty(part.Path, b)
	case HierarchyAbsolute:
		formatPathAbsolute(part.Path, b)
	case HierarchyRootless:
		formatPathRootless(part.Path, b)
	case HierarchyEmpty:
	}
}

func formatRelativePart(r RelativePart, b *strings.Builder) {
	switch part := r.(type) {
	case RelativeAuthority:
		b.WriteString("//")
		formatAuthority(part.Authority, b)
		formatPathAbsoluteOrEmpty(part.Path, b)
	case RelativeAbsolute:
		formatPathAbsolute(part.Path, b)
	case RelativeNoScheme:
		formatPathNoScheme(part.Path, b)
	case RelativeEmpty:
	}
}

func parseUri(in parse.Input) (Uri, parse.Input, error) {
	scheme, rest, err := parseScheme(in)
	if err != nil {
		return Uri{}, in, err
	}
	_, rest, err = parse.Char(':')(rest)
	if err != nil {
		return Uri{}, in, err
	}

	hier, rest, err := parseHierarchyPart(rest)
	if err != nil {
		return Uri{}, in, err
	}

	query, rest, _ := parse.Opt[Query](parseQuery)(rest)
	fragment, rest, _ := parse.Opt[Fragment](parseFragment)(rest)

	return Uri{Scheme: scheme, Hierarchy: hier, Query: query, Fragment: fragment}, rest, nil
}

func formatUri(u Uri, b *strings.Builder) {
	formatScheme(u.Scheme, b)
	b.WriteByte(':')
	formatHierarchyPart(u.Hierarchy, b)
	if u.Query != nil {
		formatQuery(*u.Query, b)
	}
	if u.Fragment != nil {
		formatFragment(*u.Fragment, b)
	}
}

func parseAbsoluteUri(in parse.Input) (AbsoluteUri, parse.Input, error) {
	scheme, rest, err := parseScheme(in)
	if err != nil {
		return AbsoluteUri{}, in, err
	}
	_, rest, err = parse.Char(':')(rest)
	if err != nil {
		return AbsoluteUri{}, in, err
	}

	hier, rest, err := parseHierarchyPart(rest)
	if err != nil {
		return AbsoluteUri{}, in, err
	}

	query, rest, _ := parse.Opt[Query](parseQuery)(rest)

	return AbsoluteUri{Scheme: scheme, Hierarchy: hier, Query: query}, rest, nil
}

func formatAbsoluteUri(u AbsoluteUri, b *strings.Builder) {
	formatScheme(u.Scheme, b)
	b.WriteByte(':')
	formatHierarchyPart(u.Hierarchy, b)
	if u.Query != nil {
		formatQuery(*u.Query, b)
	}
}

func parseRelativeReference(in parse.Input) (RelativeReference, parse.Input, error) {
	relative, rest, err := parseRelativePart(in)
	if err != nil {
		return RelativeReference{}, in, err
	}

	query, rest, _ := parse.Opt[Query](parseQuery)(rest)
	fragment, rest, _ := parse.Opt[Fragment](parseFragment)(rest)

	return RelativeReference{Relative: relative, Query: query, Fragment: fragment}, rest, nil
}

func formatRelativeReference(r RelativeReference, b *strings.Builder) {
	formatRelativePart(r.Relative, b)
	if r.Query != nil {
		formatQuery(*r.Query, b)
	}
	if r.Fragment != nil {
		formatFragment(*r.Fragment, b)
	}
}

// parseUriReference attempts Uri first, then RelativeReference.
func parseUriReference(in parse.Input) (UriReference, parse.Input, error) {
	if u, rest, err := parseUri(in); err == nil {
		return u, rest, nil
	}
	r, rest, err := parseRelativeReference(in)
	if err != nil {
		return nil, in, err
	}
	return r, rest, nil
}

func formatUriReference(ref UriReference, b *strings.Builder) {
	switch r := ref.(type) {
	case Uri:
		formatUri(r, b)
	case RelativeReference:
		formatRelativeReference(r, b)
	}
}
