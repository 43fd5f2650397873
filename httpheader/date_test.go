package httpheader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHTTPDate(t *testing.T) {
	expected := time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC)

	testcases := []struct {
		desc  string
		input string
	}{
		{desc: "imf-fixdate", input: "Sun, 06 Nov 1994 08:49:37 GMT"},
		{desc: "obsolete rfc 850", input: "Sunday, 06-Nov-94 08:49:37 GMT"},
		{desc: "obsolete asctime", input: "Sun Nov  6 08:49:37 1994"},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			parsed, err := ParseHTTPDate(tc.input)
			require.NoError(t, err)
			assert.True(t, parsed.Time().Equal(expected))
		})
	}
}

func TestParseHTTPDateInvalid(t *testing.T) {
	testcases := []struct {
		desc  string
		input string
	}{
		{desc: "empty", input: ""},
		{desc: "garbage", input: "not a date"},
		{desc: "missing timezone", input: "Sun, 06 Nov 1994 08:49:37"},
		{desc: "trailing input", input: "Sun, 06 Nov 1994 08:49:37 GMT extra"},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := ParseHTTPDate(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestHTTPDateString(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		expected string
	}{
		{
			desc:     "imf-fixdate round-trips",
			input:    "Sun, 06 Nov 1994 08:49:37 GMT",
			expected: "Sun, 06 Nov 1994 08:49:37 GMT",
		},
		{
			desc:     "obsolete forms re-emit as imf-fixdate",
			input:    "Sunday, 06-Nov-94 08:49:37 GMT",
			expected: "Sun, 06 Nov 1994 08:49:37 GMT",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			parsed, err := ParseHTTPDate(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed.String())
		})
	}
}

func TestParseRetryAfter(t *testing.T) {
	t.Run("delta-seconds", func(t *testing.T) {
		parsed, err := ParseRetryAfter("120")
		require.NoError(t, err)
		assert.Equal(t, RetryDelay(120), parsed)
		assert.Equal(t, "120", parsed.String())
	})

	t.Run("http-date", func(t *testing.T) {
		parsed, err := ParseRetryAfter("Fri, 31 Dec 1999 23:59:59 GMT")
		require.NoError(t, err)

		date, ok := parsed.(RetryDate)
		require.True(t, ok)
		assert.True(t, HTTPDate(date).Time().Equal(
			time.Date(1999, time.December, 31, 23, 59, 59, 0, time.UTC),
		))
		assert.Equal(t, "Fri, 31 Dec 1999 23:59:59 GMT", parsed.String())
	})

	t.Run("neither form", func(t *testing.T) {
		_, err := ParseRetryAfter("soon")
		assert.Error(t, err)
	})
}
