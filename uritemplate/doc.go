// Package uritemplate implements URI Templates: parsing and formatting of
// the template syntax, expansion of a template against variable bindings,
// and matching of a concrete string back into bindings.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc6570
package uritemplate
