package uritemplate

import (
	"http-grammar/parse"
	"http-grammar/rule"
)

// Operator selects the expansion style of an expression. The value is the
// operator byte itself. OpEquals through OpPipe are reserved for future
// extension; they parse and format but expand like the missing operator.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc6570#section-2.2
type Operator byte

const (
	OpReserved Operator = '+'
	OpFragment Operator = '#'

	OpLabel             Operator = '.'
	OpSegment           Operator = '/'
	OpParameter         Operator = ';'
	OpQuery             Operator = '?'
	OpQueryContinuation Operator = '&'

	OpEquals Operator = '='
	OpComma  Operator = ','
	OpBang   Operator = '!'
	OpAt     Operator = '@'
	OpPipe   Operator = '|'
)

func isOperatorByte(c byte) bool {
	switch Operator(c) {
	case OpReserved, OpFragment,
		OpLabel, OpSegment, OpParameter, OpQuery, OpQueryContinuation,
		OpEquals, OpComma, OpBang, OpAt, OpPipe:
		return true
	}
	return false
}

func parseOperator(in parse.Input) (Operator, parse.Input, error) {
	c, rest, err := parse.Byte(isOperatorByte, "operator")(in)
	if err != nil {
		return 0, in, err
	}
	return Operator(c), rest, nil
}

func (o Operator) String() string { return string(byte(o)) }

// behavior is the per-operator expansion table: the prefix emitted before
// the first value, the separator between values, the emission whitelist,
// whether values are named, and whether an empty atom drops its "=".
//
// Reference: https://datatracker.ietf.org/doc/html/rfc6570#appendix-A
type behavior struct {
	prefix        string
	sep           string
	allowReserved bool
	named         bool
	omitEmptyEq   bool
}

func behaviorOf(op *Operator) behavior {
	if op == nil {
		return behavior{sep: ","}
	}
	switch *op {
	case OpReserved:
		return behavior{sep: ",", allowReserved: true}
	case OpFragment:
		return behavior{prefix: "#", sep: ",", allowReserved: true}
	case OpLabel:
		return behavior{prefix: ".", sep: "."}
	case OpSegment:
		return behavior{prefix: "/", sep: "/"}
	case OpParameter:
		return behavior{prefix: ";", sep: ";", named: true, omitEmptyEq: true}
	case OpQuery:
		return behavior{prefix: "?", sep: "&", named: true}
	case OpQueryContinuation:
		return behavior{prefix: "&", sep: "&", named: true}
	}
	return behavior{sep: ","}
}

func isReservedOrUnreserved(c byte) bool {
	return rule.IsUnreserved(c) || rule.IsReserved(c)
}

func (b behavior) valueChar() func(byte) bool {
	if b.allowReserved {
		return isReservedOrUnreserved
	}
	return rule.IsUnreserved
}
