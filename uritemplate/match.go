package uritemplate

import (
	"http-grammar/parse"
	"http-grammar/percent"
)

// Match reverses expansion: it binds the template's variables against a
// concrete string. Literals must match verbatim; each expression greedily
// binds as many of its variables as the input allows. The whole input must
// be consumed.
//
// Matching is lossy where expansion is: a one-element list renders like an
// atom and matches back as one, and an exploded list under a named operator
// matches back as keys. Prefix-truncated atoms match as plain atoms.
func (t UriTemplate) Match(s string) (Data, error) {
	in := parse.NewInput(s)
	out := Data{}

	for _, part := range t.Parts {
		switch p := part.(type) {
		case Literal:
			_, rest, err := parse.Literal(string(p))(in)
			if err != nil {
				return nil, err
			}
			in = rest
		case Expression:
			bindings, rest := matchExpression(p, in)
			out = out.Merge(bindings)
			in = rest
		}
	}

	if !in.Empty() {
		return nil, parse.Errorf(in, "unexpected trailing input %q", in.Rest())
	}
	return out, nil
}

// matchExpression binds the expression's variables in order. The operator
// prefix is consumed before the first bound variable, the separator before
// every further one. A variable the input cannot satisfy is skipped.
func matchExpression(e Expression, in parse.Input) (Data, parse.Input) {
	bhv := behaviorOf(e.Operator)
	out := Data{}
	bound := false

	for _, vs := range e.Variables {
		attempt := in
		if !bound {
			if bhv.prefix != "" {
				_, rest, err := parse.Literal(bhv.prefix)(attempt)
				if err != nil {
					return out, in
				}
				attempt = rest
			}
		} else {
			_, rest, err := parse.Literal(bhv.sep)(attempt)
			if err != nil {
				continue
			}
			attempt = rest
		}

		value, rest, err := matchVar(bhv, vs)(attempt)
		if err != nil {
			continue
		}

		out[vs.Name] = value
		in = rest
		bound = true
	}

	return out, in
}

func matchVar(bhv behavior, vs VarSpec) parse.Parser[Value] {
	if _, explode := vs.Modifier.(Explode); explode {
		return matchExploded(bhv)
	}
	if bhv.named {
		return matchNamed(bhv, vs.Name)
	}
	return matchPlain(bhv)
}

// item consumes a non-empty run of value bytes or percent-triples, decoded.
func item(bhv behavior) parse.Parser[string] {
	decode := percent.Decoder(bhv.valueChar())
	return func(in parse.Input) (string, parse.Input, error) {
		v, rest, err := decode(in)
		if err != nil {
			return "", in, err
		}
		if rest.Offset() == in.Offset() {
			return "", in, parse.Errorf(in, "expected value")
		}
		return v, rest, nil
	}
}

func singleton(p parse.Parser[string]) parse.Parser[[]string] {
	return parse.Map(p, func(s string) []string { return []string{s} })
}

// items parses one or more sep-separated items.
func items(bhv behavior, sep byte) parse.Parser[[]string] {
	return parse.MultiSepBy(singleton(item(bhv)), sep)
}

func listOrAtom(parsed []string) Value {
	if len(parsed) == 1 {
		return Atom(parsed[0])
	}
	return List(parsed)
}

// matchPlain handles an unnamed, unexploded variable: comma-separated
// items, an atom when there is exactly one.
func matchPlain(bhv behavior) parse.Parser[Value] {
	return parse.Map(items(bhv, ','), listOrAtom)
}

// matchNamed handles a named, unexploded variable: the variable name, "=",
// then comma-separated items. Under the Parameter operator a bare name
// binds the empty atom.
func matchNamed(bhv behavior, name string) parse.Parser[Value] {
	return func(in parse.Input) (Value, parse.Input, error) {
		_, rest, err := parse.Literal(name)(in)
		if err != nil {
			return nil, in, err
		}

		_, rest, err = parse.Char('=')(rest)
		if err != nil {
			if bhv.omitEmptyEq {
				return Atom(""), rest, nil
			}
			return nil, in, err
		}

		parsed, rest, err := items(bhv, ',')(rest)
		if err != nil {
			// "name=" with no value is the empty atom.
			return Atom(""), rest, nil
		}
		return listOrAtom(parsed), rest, nil
	}
}

// matchExploded handles an exploded variable: sep-separated "key=value"
// pairs when the input has them, sep-separated items otherwise. Keys win
// the ambiguity with named list items.
func matchExploded(bhv behavior) parse.Parser[Value] {
	sep := bhv.sep[0]

	pair := func(in parse.Input) ([]string, parse.Input, error) {
		key, rest, err := item(bhv)(in)
		if err != nil {
			return nil, in, err
		}
		_, rest, err = parse.Char('=')(rest)
		if err != nil {
			return nil, in, err
		}
		value, rest, err := percent.Decoder(bhv.valueChar())(rest)
		if err != nil {
			return nil, in, err
		}
		return []string{key, value}, rest, nil
	}

	keys := func(in parse.Input) (Value, parse.Input, error) {
		flat, rest, err := parse.MultiSepBy(parse.Parser[[]string](pair), sep)(in)
		if err != nil {
			return nil, in, err
		}
		out := make(Keys, 0, len(flat)/2)
		for i := 0; i+1 < len(flat); i += 2 {
			out = append(out, Pair{Key: flat[i], Value: flat[i+1]})
		}
		return out, rest, nil
	}

	list := func(in parse.Input) (Value, parse.Input, error) {
		parsed, rest, err := items(bhv, sep)(in)
		if err != nil {
			return nil, in, err
		}
		return List(parsed), rest, nil
	}

	return parse.Choice(parse.Parser[Value](keys), parse.Parser[Value](list))
}
