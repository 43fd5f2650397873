package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ipv4 "http-grammar/ip/v4"
	ipv6 "http-grammar/ip/v6"
	"http-grammar/lib/types/pointer"
)

var examplePairs = []struct {
	desc string
	raw  string
	uri  Uri
}{
	{
		raw: "ftp://ftp.is.co.za/rfc/rfc1808.txt",
		uri: Uri{
			Scheme: "ftp",
			Hierarchy: HierarchyAuthority{
				Authority: Authority{Host: HostName{Name: "ftp.is.co.za"}},
				Path:      PathAbsoluteOrEmpty{"rfc", "rfc1808.txt"},
			},
		},
	},
	{
		raw: "http://www.ietf.org/rfc/rfc2396.txt",
		uri: Uri{
			Scheme: "http",
			Hierarchy: HierarchyAuthority{
				Authority: Authority{Host: HostName{Name: "www.ietf.org"}},
				Path:      PathAbsoluteOrEmpty{"rfc", "rfc2396.txt"},
			},
		},
	},
	{
		raw: "ldap://[2001:db8::7]/c=GB?objectClass?one",
		uri: Uri{
			Scheme: "ldap",
			Hierarchy: HierarchyAuthority{
				Authority: Authority{
					Host: HostIPv6{Addr: ipv6.Addr{0x20, 0x01, 0x0d, 0xb8, 15: 0x07}},
				},
				Path: PathAbsoluteOrEmpty{"c=GB"},
			},
			Query: pointer.To(Query("objectClass?one")),
		},
	},
	{
		raw: "mailto:John.Doe@example.com",
		uri: Uri{
			Scheme:    "mailto",
			Hierarchy: HierarchyRootless{Path: PathRootless{"John.Doe@example.com"}},
		},
	},
	{
		raw: "news:comp.infosystems.www.servers.unix",
		uri: Uri{
			Scheme:    "news",
			Hierarchy: HierarchyRootless{Path: PathRootless{"comp.infosystems.www.servers.unix"}},
		},
	},
	{
		raw: "tel:+1-816-555-1212",
		uri: Uri{
			Scheme:    "tel",
			Hierarchy: HierarchyRootless{Path: PathRootless{"+1-816-555-1212"}},
		},
	},
	{
		raw: "telnet://192.0.2.16:80/",
		uri: Uri{
			Scheme: "telnet",
			Hierarchy: HierarchyAuthority{
				Authority: Authority{
					Host: HostIPv4{Addr: ipv4.Addr{192, 0, 2, 16}},
					Port: pointer.To(uint32(80)),
				},
				Path: PathAbsoluteOrEmpty{""},
			},
		},
	},
	{
		raw: "urn:oasis:names:specification:docbook:dtd:xml:4.1.2",
		uri: Uri{
			Scheme: "urn",
			Hierarchy: HierarchyRootless{
				Path: PathRootless{"oasis:names:specification:docbook:dtd:xml:4.1.2"},
			},
		},
	},
	{
		desc: "userinfo, port, query and fragment",
		raw:  "http://user@example.com:8080/a/b?k=v#f",
		uri: Uri{
			Scheme: "http",
			Hierarchy: HierarchyAuthority{
				Authority: Authority{
					Host:     HostName{Name: "example.com"},
					Port:     pointer.To(uint32(8080)),
					UserInfo: pointer.To(UserInfo("user")),
				},
				Path: PathAbsoluteOrEmpty{"a", "b"},
			},
			Query:    pointer.To(Query("k=v")),
			Fragment: pointer.To(Fragment("f")),
		},
	},
	{
		desc: "empty hierarchy part",
		raw:  "about:",
		uri: Uri{
			Scheme:    "about",
			Hierarchy: HierarchyEmpty{},
		},
	},
	{
		desc: "percent-encoded path segment",
		raw:  "http://example.com/a%20b",
		uri: Uri{
			Scheme: "http",
			Hierarchy: HierarchyAuthority{
				Authority: Authority{Host: HostName{Name: "example.com"}},
				Path:      PathAbsoluteOrEmpty{"a b"},
			},
		},
	},
}

func TestParse(t *testing.T) {
	for _, example := range examplePairs {
		desc := example.desc
		if desc == "" {
			desc = example.raw
		}

		t.Run(desc, func(t *testing.T) {
			parsed, err := Parse(example.raw)
			require.NoError(t, err)
			assert.Equal(t, example.uri, parsed)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	testcases := []struct {
		desc  string
		input string
	}{
		{desc: "no scheme", input: "/relative/only"},
		{desc: "scheme starts with digit", input: "1http://example.com"},
		{desc: "empty input", input: ""},
		{desc: "space in path", input: "http://example.com/a b"},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := Parse(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestString(t *testing.T) {
	for _, example := range examplePairs {
		desc := example.desc
		if desc == "" {
			desc = example.raw
		}

		t.Run(desc, func(t *testing.T) {
			assert.Equal(t, example.raw, example.uri.String())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, example := range examplePairs {
		desc := example.desc
		if desc == "" {
			desc = example.raw
		}

		t.Run(desc, func(t *testing.T) {
			parsed, err := Parse(example.raw)
			require.NoError(t, err)

			reparsed, err := Parse(parsed.String())
			require.NoError(t, err)
			assert.Equal(t, parsed, reparsed)
		})
	}
}

func TestParseAbsolute(t *testing.T) {
	parsed, err := ParseAbsolute("http://example.com/a?q")
	require.NoError(t, err)
	assert.Equal(t, AbsoluteUri{
		Scheme: "http",
		Hierarchy: HierarchyAuthority{
			Authority: Authority{Host: HostName{Name: "example.com"}},
			Path:      PathAbsoluteOrEmpty{"a"},
		},
		Query: pointer.To(Query("q")),
	}, parsed)

	_, err = ParseAbsolute("http://example.com/a#frag")
	assert.Error(t, err)
}

func TestParseReference(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		expected UriReference
	}{
		{
			desc:  "absolute uri",
			input: "http://example.com",
			expected: Uri{
				Scheme: "http",
				Hierarchy: HierarchyAuthority{
					Authority: Authority{Host: HostName{Name: "example.com"}},
				},
			},
		},
		{
			desc:  "network-path reference",
			input: "//localhost/",
			expected: RelativeReference{
				Relative: RelativeAuthority{
					Authority: Authority{Host: HostName{Name: "localhost"}},
					Path:      PathAbsoluteOrEmpty{""},
				},
			},
		},
		{
			desc:  "relative path reference",
			input: "path/relative/ref",
			expected: RelativeReference{
				Relative: RelativeNoScheme{Path: PathNoScheme{"path", "relative", "ref"}},
			},
		},
		{
			desc:     "empty reference",
			input:    "",
			expected: RelativeReference{Relative: RelativeEmpty{}},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			parsed, err := ParseReference(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed)
			assert.Equal(t, tc.input, parsed.String())
		})
	}
}
