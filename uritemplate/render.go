package uritemplate

import (
	"strings"

	"http-grammar/percent"
)

// Render expands the template against data.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc6570#section-3
func (t UriTemplate) Render(data Data) string {
	b := new(strings.Builder)
	for _, part := range t.Parts {
		switch p := part.(type) {
		case Literal:
			b.WriteString(string(p))
		case Expression:
			renderExpression(p, data, b)
		}
	}
	return b.String()
}

// The operator's prefix is emitted ahead of the first defined variable;
// an expression with no defined variables contributes nothing.
func renderExpression(e Expression, data Data, b *strings.Builder) {
	bhv := behaviorOf(e.Operator)
	encode := percent.Encoder(bhv.valueChar())

	first := true
	for _, vs := range e.Variables {
		value, ok := data[vs.Name]
		if !ok || !defined(value) {
			continue
		}
		if first {
			b.WriteString(bhv.prefix)
			first = false
		} else {
			b.WriteString(bhv.sep)
		}
		renderValue(bhv, vs, value, encode, b)
	}
}

func renderValue(bhv behavior, vs VarSpec, value Value, encode func(string, *strings.Builder), b *strings.Builder) {
	switch val := value.(type) {
	case Atom:
		s := string(val)
		if prefix, ok := vs.Modifier.(Prefix); ok {
			s = truncate(s, prefix.Length)
		}
		if bhv.named {
			b.WriteString(vs.Name)
			if s == "" && bhv.omitEmptyEq {
				return
			}
			b.WriteByte('=')
		}
		encode(s, b)

	case List:
		if _, explode := vs.Modifier.(Explode); explode {
			for i, item := range val {
				if i > 0 {
					b.WriteString(bhv.sep)
				}
				if bhv.named {
					b.WriteString(vs.Name)
					b.WriteByte('=')
				}
				encode(item, b)
			}
			return
		}
		if bhv.named {
			b.WriteString(vs.Name)
			b.WriteByte('=')
		}
		for i, item := range val {
			if i > 0 {
				b.WriteByte(',')
			}
			encode(item, b)
		}

	case Keys:
		if _, explode := vs.Modifier.(Explode); explode {
			// The variable name is shadowed by the keys.
			for i, pair := range val {
				if i > 0 {
					b.WriteString(bhv.sep)
				}
				encode(pair.Key, b)
				b.WriteByte('=')
				encode(pair.Value, b)
			}
			return
		}
		if bhv.named {
			b.WriteString(vs.Name)
			b.WriteByte('=')
		}
		for i, pair := range val {
			if i > 0 {
				b.WriteByte(',')
			}
			encode(pair.Key, b)
			b.WriteByte(',')
			encode(pair.Value, b)
		}
	}
}

// truncate keeps the first n characters, counting code points.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}
