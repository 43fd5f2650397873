// Package language implements the Language Tag and Language Range grammars
// as typed parse/format pairs.
//
// Grandfathered and private-use tags are not supported.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc5646
//
// - https://datatracker.ietf.org/doc/html/rfc4647
package language
