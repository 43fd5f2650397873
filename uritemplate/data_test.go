package uritemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	left := Data{"a": Atom("1"), "b": Atom("2")}
	right := Data{"b": Atom("overridden"), "c": Atom("3")}

	merged := left.Merge(right)

	assert.Equal(t, Data{
		"a": Atom("1"),
		"b": Atom("overridden"),
		"c": Atom("3"),
	}, merged)

	assert.Equal(t, Data{"a": Atom("1"), "b": Atom("2")}, left)
	assert.Equal(t, Data{"b": Atom("overridden"), "c": Atom("3")}, right)
}
