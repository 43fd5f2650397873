// Package httpheader implements typed grammars for a set of HTTP header
// field values, composed from the uri and language grammars and the shared
// parse substrate.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc7230
//
// - https://datatracker.ietf.org/doc/html/rfc7231
//
// - https://datatracker.ietf.org/doc/html/rfc7234
package httpheader
