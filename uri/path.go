package uri

import (
	"strings"

	"http-grammar/parse"
	"http-grammar/percent"
)

// The four path productions are distinct types so the variant used is
// visible in the value. Segments are stored decoded.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-3.3

// PathAbsoluteOrEmpty is path-abempty: *( "/" segment ). An empty slice
// emits nothing.
type PathAbsoluteOrEmpty []string

// PathAbsolute is path-absolute: "/" [ segment-nz *( "/" segment ) ].
// An empty slice emits "/".
type PathAbsolute []string

// PathNoScheme is path-noscheme: segment-nz-nc *( "/" segment ). Its first
// segment cannot contain ":".
type PathNoScheme []string

// PathRootless is path-rootless: segment-nz *( "/" segment ).
type PathRootless []string

var (
	segmentCodec     = percent.Codec(isPChar)
	segmentNZNCCodec = percent.Codec(isSegmentNZNCChar)
)

var PathAbsoluteOrEmptyMapping = parse.Mapping[PathAbsoluteOrEmpty]{
	Parser:    parsePathAbsoluteOrEmpty,
	Formatter: formatPathAbsoluteOrEmpty,
}

var PathAbsoluteMapping = parse.Mapping[PathAbsolute]{
	Parser:    parsePathAbsolute,
	Formatter: formatPathAbsolute,
}

var PathNoSchemeMapping = parse.Mapping[PathNoScheme]{
	Parser:    parsePathNoScheme,
	Formatter: formatPathNoScheme,
}

var PathRootlessMapping = parse.Mapping[PathRootless]{
	Parser:    parsePathRootless,
	Formatter: formatPathRootless,
}

func ParsePathAbsoluteOrEmpty(s string) (PathAbsoluteOrEmpty, error) {
	return PathAbsoluteOrEmptyMapping.Parse(s)
}

func ParsePathAbsolute(s string) (PathAbsolute, error) { return PathAbsoluteMapping.Parse(s) }

func ParsePathNoScheme(s string) (PathNoScheme, error) { return PathNoSchemeMapping.Parse(s) }

func ParsePathRootless(s string) (PathRootless, error) { return PathRootlessMapping.Parse(s) }

func (p PathAbsoluteOrEmpty) String() string { return PathAbsoluteOrEmptyMapping.Format(p) }
func (p PathAbsolute) String() string        { return PathAbsoluteMapping.Format(p) }
func (p PathNoScheme) String() string        { return PathNoSchemeMapping.Format(p) }
func (p PathRootless) String() string        { return PathRootlessMapping.Format(p) }

// IsValid reports whether the value can be re-parsed unambiguously. A
// PathAbsolute whose first segment is empty while more segments follow
// formats as "//...", which reads back as an authority prefix.
func (p PathAbsolute) IsValid() bool {
	return len(p) == 0 || p[0] != ""
}

// slashSegment parses "/" segment, where segment may be empty.
func slashSegment(in parse.Input) (string, parse.Input, error) {
	_, rest, err := parse.Char('/')(in)
	if err != nil {
		return "", in, err
	}
	seg, rest, err := segmentCodec.Parser(rest)
	if err != nil {
		return "", in, err
	}
	return seg, rest, nil
}

// segmentNZ parses a non-empty segment.
func segmentNZ(in parse.Input) (string, parse.Input, error) {
	seg, rest, err := segmentCodec.Parser(in)
	if err != nil {
		return "", in, err
	}
	if rest.Offset() == in.Offset() {
		return "", in, parse.Errorf(in, "expected non-empty segment")
	}
	return seg, rest, nil
}

func parsePathAbsoluteOrEmpty(in parse.Input) (PathAbsoluteOrEmpty, parse.Input, error) {
	segs, rest, _ := parse.Many0[string](slashSegment)(in)
	return PathAbsoluteOrEmpty(segs), rest, nil
}

func parsePathAbsolute(in parse.Input) (PathAbsolute, parse.Input, error) {
	_, rest, err := parse.Char('/')(in)
	if err != nil {
		return nil, in, err
	}

	first, afterFirst, err := segmentNZ(rest)
	if err != nil {
		// Bare "/".
		return PathAbsolute{}, rest, nil
	}

	segs, rest, _ := parse.Many0[string](slashSegment)(afterFirst)
	return PathAbsolute(append([]string{first}, segs...)), rest, nil
}

func parsePathNoScheme(in parse.Input) (PathNoScheme, parse.Input, error) {
	first, rest, err := segmentNZNCCodec.Parser(in)
	if err != nil {
		return nil, in, err
	}
	if rest.Offset() == in.Offset() {
		return nil, in, parse.Errorf(in, "expected non-empty segment")
	}

	segs, rest, _ := parse.Many0[string](slashSegment)(rest)
	return PathNoScheme(append([]string{first}, segs...)), rest, nil
}

func parsePathRootless(in parse.Input) (PathRootless, parse.Input, error) {
	first, rest, err := segmentNZ(in)
	if err != nil {
		return nil, in, err
	}

	segs, rest, _ := parse.Many0[string](slashSegment)(rest)
	return PathRootless(append([]string{first}, segs...)), rest, nil
}

func formatSegments(segs []string, b *strings.Builder, leadingSlash bool) {
	for idx, seg := range segs {
		if leadingSlash || idx > 0 {
			b.WriteByte('/')
		}
		segmentCodec.Formatter(seg, b)
	}
}

func formatPathAbsoluteOrEmpty(p PathAbsoluteOrEmpty, b *strings.Builder) {
	formatSegments(p, b, true)
}

func formatPathAbsolute(p PathAbsolute, b *strings.Builder) {
	if len(p) == 0 {
		b.WriteByte('/')
		return
	}
	formatSegments(p, b, true)
}

func formatPathNoScheme(p PathNoScheme, b *strings.Builder) {
	// The first segment re-encodes ":" so it cannot read back as a scheme.
	for idx, seg := range p {
		if idx == 0 {
			segmentNZNCCodec.Formatter(seg, b)
			continue
		}
		b.WriteByte('/')
		segmentCodec.Formatter(seg, b)
	}
}

func formatPathRootless(p PathRootless, b *strings.Builder) {
	formatSegments(p, b, false)
}
