package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	testcases := []struct {
		desc     string
		input    time.Time
		expected string
	}{
		{
			desc:     "utc time",
			input:    time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC),
			expected: "Sun, 06 Nov 1994 08:49:37 GMT",
		},
		{
			desc: "non-utc zone is converted",
			input: time.Date(1994, time.November, 6, 17, 49, 37, 0,
				time.FixedZone("JST", 9*60*60)),
			expected: "Sun, 06 Nov 1994 08:49:37 GMT",
		},
		{
			desc:     "single digit day is zero padded",
			input:    time.Date(2024, time.March, 3, 0, 0, 5, 0, time.UTC),
			expected: "Sun, 03 Mar 2024 00:00:05 GMT",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatDate(tc.input))
		})
	}
}

func TestParseDate(t *testing.T) {
	expected := time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC)

	testcases := []struct {
		desc    string
		input   string
		wantErr bool
	}{
		{
			desc:  "imf-fixdate",
			input: "Sun, 06 Nov 1994 08:49:37 GMT",
		},
		{
			desc:  "obsolete rfc 850",
			input: "Sunday, 06-Nov-94 08:49:37 GMT",
		},
		{
			desc:  "obsolete asctime",
			input: "Sun Nov  6 08:49:37 1994",
		},
		{
			desc:    "not a date",
			input:   "yesterday",
			wantErr: true,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			parsed, err := ParseDate(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, expected.Equal(parsed), "got %v", parsed)
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	in := time.Date(2024, time.July, 4, 12, 30, 0, 0, time.UTC)

	out, err := ParseDate(FormatDate(in))
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}
