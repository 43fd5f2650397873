package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	base, err := Parse("http://a/b/c/d;p?q")
	require.NoError(t, err)

	resolver := NewRefResolver(base)

	testcases := []struct {
		ref      string
		expected string
	}{
		{ref: "g:h", expected: "g:h"},
		{ref: "g", expected: "http://a/b/c/g"},
		{ref: "./g", expected: "http://a/b/c/g"},
		{ref: "g/", expected: "http://a/b/c/g/"},
		{ref: "/g", expected: "http://a/g"},
		{ref: "//g", expected: "http://g"},
		{ref: "?y", expected: "http://a/b/c/d;p?y"},
		{ref: "g?y", expected: "http://a/b/c/g?y"},
		{ref: "#s", expected: "http://a/b/c/d;p?q#s"},
		{ref: "g#s", expected: "http://a/b/c/g#s"},
		{ref: "g?y#s", expected: "http://a/b/c/g?y#s"},
		{ref: ";x", expected: "http://a/b/c/;x"},
		{ref: "g;x", expected: "http://a/b/c/g;x"},
		{ref: "g;x?y#s", expected: "http://a/b/c/g;x?y#s"},
		{ref: "", expected: "http://a/b/c/d;p?q"},
		{ref: ".", expected: "http://a/b/c/"},
		{ref: "./", expected: "http://a/b/c/"},
		{ref: "..", expected: "http://a/b/"},
		{ref: "../", expected: "http://a/b/"},
		{ref: "../g", expected: "http://a/b/g"},
		{ref: "../..", expected: "http://a/"},
		{ref: "../../", expected: "http://a/"},
		{ref: "../../g", expected: "http://a/g"},
		{ref: "../../../g", expected: "http://a/g"},
		{ref: "../../../../g", expected: "http://a/g"},
		{ref: "/./g", expected: "http://a/g"},
		{ref: "/../g", expected: "http://a/g"},
		{ref: "g.", expected: "http://a/b/c/g."},
		{ref: ".g", expected: "http://a/b/c/.g"},
		{ref: "g..", expected: "http://a/b/c/g.."},
		{ref: "..g", expected: "http://a/b/c/..g"},
		{ref: "./../g", expected: "http://a/b/g"},
		{ref: "./g/.", expected: "http://a/b/c/g/"},
		{ref: "g/./h", expected: "http://a/b/c/g/h"},
		{ref: "g/../h", expected: "http://a/b/c/h"},
		{ref: "g;x=1/./y", expected: "http://a/b/c/g;x=1/y"},
		{ref: "g;x=1/../y", expected: "http://a/b/c/y"},
	}

	for _, tc := range testcases {
		desc := tc.ref
		if desc == "" {
			desc = "empty reference"
		}

		t.Run(desc, func(t *testing.T) {
			ref, err := ParseReference(tc.ref)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, resolver.Resolve(ref).String())
		})
	}
}
