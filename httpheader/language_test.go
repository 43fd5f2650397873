package httpheader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"http-grammar/language"
	"http-grammar/lib/types/pointer"
)

func TestParseQValue(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		expected QValue
		wantErr  bool
	}{
		{desc: "zero", input: "0", expected: 0},
		{desc: "one", input: "1", expected: 1000},
		{desc: "one with zero decimals", input: "1.000", expected: 1000},
		{desc: "half", input: "0.5", expected: 500},
		{desc: "three decimals", input: "0.001", expected: 1},
		{desc: "two decimals", input: "0.75", expected: 750},
		{desc: "bare decimal point", input: "0.", expected: 0},
		{desc: "above one", input: "1.5", wantErr: true},
		{desc: "integer above one", input: "2", wantErr: true},
		{desc: "empty", input: "", wantErr: true},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			parsed, err := QValueMapping.Parse(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed)
		})
	}
}

func TestQValueString(t *testing.T) {
	testcases := []struct {
		q        QValue
		expected string
	}{
		{q: 0, expected: "0"},
		{q: 1000, expected: "1"},
		{q: 500, expected: "0.5"},
		{q: 750, expected: "0.75"},
		{q: 1, expected: "0.001"},
		{q: 430, expected: "0.43"},
	}

	for _, tc := range testcases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.q.String())
		})
	}
}

func TestParseAcceptLanguage(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		expected AcceptLanguage
		wantErr  bool
	}{
		{
			desc:  "ranges with weights",
			input: "en-US,en;q=0.5",
			expected: AcceptLanguage{
				{Range: language.Range{"en", "US"}},
				{Range: language.Range{"en"}, Weight: pointer.To(QValue(500))},
			},
		},
		{
			desc:  "wildcard fallback",
			input: "da, en-gb;q=0.8, *;q=0.1",
			expected: AcceptLanguage{
				{Range: language.Range{"da"}},
				{Range: language.Range{"en", "gb"}, Weight: pointer.To(QValue(800))},
				{Range: language.Any{}, Weight: pointer.To(QValue(100))},
			},
		},
		{
			desc:  "uppercase weight key",
			input: "fr;Q=1",
			expected: AcceptLanguage{
				{Range: language.Range{"fr"}, Weight: pointer.To(QValue(1000))},
			},
		},
		{
			desc:  "whitespace around the weight",
			input: "de ; q=0.9",
			expected: AcceptLanguage{
				{Range: language.Range{"de"}, Weight: pointer.To(QValue(900))},
			},
		},
		{desc: "empty", input: "", wantErr: true},
		{desc: "weight without qvalue", input: "en;q=", wantErr: true},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			parsed, err := ParseAcceptLanguage(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, parsed)
		})
	}
}

func TestAcceptLanguageString(t *testing.T) {
	value := AcceptLanguage{
		{Range: language.Range{"en", "US"}},
		{Range: language.Range{"en"}, Weight: pointer.To(QValue(500))},
		{Range: language.Any{}, Weight: pointer.To(QValue(100))},
	}
	assert.Equal(t, "en-US, en;q=0.5, *;q=0.1", value.String())
}

func TestParseContentLanguage(t *testing.T) {
	parsed, err := ParseContentLanguage("da, en-GB")
	require.NoError(t, err)
	assert.Equal(t, ContentLanguage{
		{Language: language.Language{Primary: "da"}},
		{
			Language: language.Language{Primary: "en"},
			Region:   pointer.To(language.Region("GB")),
		},
	}, parsed)

	assert.Equal(t, "da, en-GB", parsed.String())
}
