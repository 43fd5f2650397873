// Package parse provides the parser/formatter substrate shared by every
// grammar in this module.
//
// A Parser consumes a prefix of its input and returns a value together with
// the remaining input. A Formatter appends the canonical textual form of a
// value to a string builder. The two are paired as a Mapping, which is the
// public surface of each grammar rule.
//
// Choice is ordered with backtracking: alternatives are attempted in the
// written order and the first success wins.
package parse
