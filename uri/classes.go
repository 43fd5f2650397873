package uri

import (
	"http-grammar/rule"
)

// Whitelists of bytes each component may carry unencoded.
// Reference: https://datatracker.ietf.org/doc/html/rfc3986#appendix-A

// pchar = unreserved / pct-encoded / sub-delims / ":" / "@"
func isPChar(c byte) bool {
	return rule.IsUnreserved(c) || rule.IsSubDelim(c) || c == ':' || c == '@'
}

// segment-nz-nc drops ":" so a relative reference's first segment cannot be
// mistaken for a scheme.
func isSegmentNZNCChar(c byte) bool {
	return rule.IsUnreserved(c) || rule.IsSubDelim(c) || c == '@'
}

func isUserInfoChar(c byte) bool {
	return rule.IsUnreserved(c) || rule.IsSubDelim(c) || c == ':'
}

func isRegNameChar(c byte) bool {
	return rule.IsUnreserved(c) || rule.IsSubDelim(c)
}

func isQueryFragChar(c byte) bool {
	return isPChar(c) || c == '/' || c == '?'
}

func isSchemeChar(c byte) bool {
	return rule.IsAlphaNum(c) || c == '+' || c == '-' || c == '.'
}
