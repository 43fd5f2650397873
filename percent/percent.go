// Package percent implements the RFC 3986 percent-encoding codec used by
// every percent-encoded grammar category in this module.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#section-2.1
package percent

import (
	"strings"
	"unicode/utf8"

	"http-grammar/parse"
	"http-grammar/rule"
)

func hex(c byte) (h [2]byte) {
	const hexSet = "0123456789ABCDEF"
	h[0] = hexSet[c>>4]
	h[1] = hexSet[c&0xF]
	return
}

func unhex(h [2]byte) (c byte) {
	return (hexToNum(h[0]) << 4) | hexToNum(h[1])
}

func hexToNum(h byte) byte {
	switch {
	case '0' <= h && h <= '9':
		return h - '0'
	case 'a' <= h && h <= 'f':
		return h - 'a' + 10
	case 'A' <= h && h <= 'F':
		return h - 'A' + 10
	}
	return 0
}

// isTriple reports whether the three bytes starting at s[i] form a valid
// percent-triple.
func isTriple(s string, i int) bool {
	return i+2 < len(s) &&
		s[i] == '%' &&
		rule.IsHexDig(s[i+1]) &&
		rule.IsHexDig(s[i+2])
}

// Decoder builds a parser consuming a run of bytes admitted by allowed or
// percent-triples. The run may be empty. Triples decode to raw bytes; the
// accumulated byte stream must be valid UTF-8.
func Decoder(allowed func(byte) bool) parse.Parser[string] {
	return func(in parse.Input) (string, parse.Input, error) {
		rest := in.Rest()
		b := new(strings.Builder)

		n := 0
		for n < len(rest) {
			c := rest[n]
			if isTriple(rest, n) {
				b.WriteByte(unhex([2]byte{rest[n+1], rest[n+2]}))
				n += 3
				continue
			}
			if !allowed(c) {
				break
			}
			b.WriteByte(c)
			n++
		}

		decoded := b.String()
		if !utf8.ValidString(decoded) {
			return "", in, parse.Errorf(in, "percent-decoded bytes are not valid UTF-8")
		}

		return decoded, in.Advance(n), nil
	}
}

// Encoder builds a formatter writing s as UTF-8 bytes, each emitted verbatim
// when admitted by allowed and as an uppercase %XX triple otherwise. A '%'
// already followed by two hex digits passes through unchanged, so encoding
// already-encoded input is idempotent.
func Encoder(allowed func(byte) bool) parse.Formatter[string] {
	return func(s string, b *strings.Builder) {
		for i := 0; i < len(s); i++ {
			c := s[i]
			if isTriple(s, i) {
				b.WriteString(s[i : i+3])
				i += 2
				continue
			}
			if allowed(c) {
				b.WriteByte(c)
				continue
			}
			h := hex(c)
			b.Write([]byte{'%', h[0], h[1]})
		}
	}
}

// Codec pairs Decoder and Encoder over the same whitelist.
func Codec(allowed func(byte) bool) parse.Mapping[string] {
	return parse.Mapping[string]{
		Parser:    Decoder(allowed),
		Formatter: Encoder(allowed),
	}
}
