package uritemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference: https://datatracker.ietf.org/doc/html/rfc6570#section-3.2.1
var renderData = Data{
	"var":   Atom("value"),
	"hello": Atom("Hello World!"),
	"path":  Atom("/foo/bar"),
	"x":     Atom("1024"),
	"y":     Atom("768"),
	"empty": Atom(""),
	"list":  List{"red", "green", "blue"},
	"keys":  Keys{{Key: "semi", Value: ";"}, {Key: "dot", Value: "."}, {Key: "comma", Value: ","}},
}

func TestRender(t *testing.T) {
	testcases := []struct {
		template string
		expected string
	}{
		{template: "{var}", expected: "value"},
		{template: "{hello}", expected: "Hello%20World%21"},
		{template: "{x,hello,y}", expected: "1024,Hello%20World%21,768"},
		{template: "{var:3}", expected: "val"},
		{template: "{var:30}", expected: "value"},
		{template: "{list}", expected: "red,green,blue"},
		{template: "{list*}", expected: "red,green,blue"},
		{template: "{keys}", expected: "semi,%3B,dot,.,comma,%2C"},
		{template: "{keys*}", expected: "semi=%3B,dot=.,comma=%2C"},

		{template: "{+var}", expected: "value"},
		{template: "{+hello}", expected: "Hello%20World!"},
		{template: "{+path}/here", expected: "/foo/bar/here"},
		{template: "{+list}", expected: "red,green,blue"},

		{template: "{#var}", expected: "#value"},
		{template: "{#hello}", expected: "#Hello%20World!"},
		{template: "{#path:6}/here", expected: "#/foo/b/here"},

		{template: "X{.var}", expected: "X.value"},
		{template: "X{.x,y}", expected: "X.1024.768"},
		{template: "{.list*}", expected: ".red.green.blue"},

		{template: "{/var}", expected: "/value"},
		{template: "{/var,x}/here", expected: "/value/1024/here"},
		{template: "{/list*}", expected: "/red/green/blue"},
		{template: "{/list*,path:4}", expected: "/red/green/blue/%2Ffoo"},

		{template: "{;x,y}", expected: ";x=1024;y=768"},
		{template: "{;x,y,empty}", expected: ";x=1024;y=768;empty"},
		{template: "{;list*}", expected: ";list=red;list=green;list=blue"},
		{template: "{;keys*}", expected: ";semi=%3B;dot=.;comma=%2C"},

		{template: "{?x,y}", expected: "?x=1024&y=768"},
		{template: "{?x,y,empty}", expected: "?x=1024&y=768&empty="},
		{template: "{?list}", expected: "?list=red,green,blue"},
		{template: "{?list*}", expected: "?list=red&list=green&list=blue"},
		{template: "{?keys*}", expected: "?semi=%3B&dot=.&comma=%2C"},

		{template: "{&x}", expected: "&x=1024"},
		{template: "{&x,y,empty}", expected: "&x=1024&y=768&empty="},
	}

	for _, tc := range testcases {
		t.Run(tc.template, func(t *testing.T) {
			parsed, err := Parse(tc.template)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed.Render(renderData))
		})
	}
}

func TestRenderUndefined(t *testing.T) {
	testcases := []struct {
		desc     string
		template string
		data     Data
		expected string
	}{
		{
			desc:     "missing variable contributes nothing",
			template: "/base{?undef}",
			data:     Data{},
			expected: "/base",
		},
		{
			desc:     "empty list is undefined",
			template: "{/list*}",
			data:     Data{"list": List{}},
			expected: "",
		},
		{
			desc:     "empty keys are undefined",
			template: "{?keys*}",
			data:     Data{"keys": Keys{}},
			expected: "",
		},
		{
			desc:     "defined variables keep the separator chain",
			template: "{?a,b,c}",
			data:     Data{"a": Atom("1"), "c": Atom("3")},
			expected: "?a=1&c=3",
		},
		{
			desc:     "prefix waits for the first defined variable",
			template: "{/a,b}",
			data:     Data{"b": Atom("2")},
			expected: "/2",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			parsed, err := Parse(tc.template)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed.Render(tc.data))
		})
	}
}

func TestTruncateCountsCodePoints(t *testing.T) {
	parsed, err := Parse("{name:2}")
	require.NoError(t, err)

	assert.Equal(t, "%C3%A9e", parsed.Render(Data{"name": Atom("éelan")}))
}
