package httpheader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"http-grammar/lib/types/pointer"
)

func TestParseCacheControl(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		expected CacheControl
		wantErr  bool
	}{
		{
			desc:     "valueless directive",
			input:    "no-cache",
			expected: CacheControl{{Name: "no-cache"}},
		},
		{
			desc:  "directive with token argument",
			input: "max-age=3600",
			expected: CacheControl{
				{Name: "max-age", Value: pointer.To("3600")},
			},
		},
		{
			desc:  "mixed list",
			input: "public, max-age=600, s-maxage=30",
			expected: CacheControl{
				{Name: "public"},
				{Name: "max-age", Value: pointer.To("600")},
				{Name: "s-maxage", Value: pointer.To("30")},
			},
		},
		{
			desc:  "quoted argument",
			input: `no-cache="set-cookie"`,
			expected: CacheControl{
				{Name: "no-cache", Value: pointer.To("set-cookie")},
			},
		},
		{
			desc:  "names are lowercased",
			input: "No-Store",
			expected: CacheControl{
				{Name: "no-store"},
			},
		},
		{desc: "empty", input: "", wantErr: true},
		{desc: "equals without argument", input: "max-age=", wantErr: true},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			parsed, err := ParseCacheControl(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed)
		})
	}
}

func TestCacheControlString(t *testing.T) {
	value := CacheControl{
		{Name: "public"},
		{Name: "max-age", Value: pointer.To("600")},
		{Name: "no-cache", Value: pointer.To("set cookie")},
	}
	assert.Equal(t, `public, max-age=600, no-cache="set cookie"`, value.String())
}

func TestCacheControlAccessors(t *testing.T) {
	parsed, err := ParseCacheControl("public, max-age=600, s-maxage=30, no-cache")
	require.NoError(t, err)

	maxAge, ok := parsed.MaxAge()
	assert.True(t, ok)
	assert.Equal(t, 600*time.Second, maxAge)

	sMaxAge, ok := parsed.SMaxAge()
	assert.True(t, ok)
	assert.Equal(t, 30*time.Second, sMaxAge)

	assert.True(t, parsed.NoCache())
	assert.False(t, parsed.NoStore())
	assert.True(t, parsed.Has("Public"))

	directive, ok := parsed.Get("MAX-AGE")
	assert.True(t, ok)
	assert.Equal(t, Directive{Name: "max-age", Value: pointer.To("600")}, directive)

	_, ok = parsed.Get("private")
	assert.False(t, ok)
}

func TestParseAge(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		expected Age
		wantErr  bool
	}{
		{desc: "zero", input: "0", expected: 0},
		{desc: "typical", input: "86400", expected: 86400},
		{desc: "empty", input: "", wantErr: true},
		{desc: "negative", input: "-1", wantErr: true},
		{desc: "out of range", input: "99999999999", wantErr: true},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			parsed, err := ParseAge(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed)
			assert.Equal(t, tc.input, parsed.String())
		})
	}
}

func TestAgeDuration(t *testing.T) {
	assert.Equal(t, 90*time.Second, Age(90).Duration())
}
