// Package uri implements the Uniform Resource Identifier (URI) grammar as
// typed parse/format pairs.
//
// Values store their percent-encoded categories in decoded form; formatters
// re-encode on emission with uppercase hex.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc3986
package uri
