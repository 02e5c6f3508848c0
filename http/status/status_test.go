package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromCode(t *testing.T) {
	testcases := []struct {
		desc     string
		code     uint
		expected Status
	}{
		{
			desc:     "registered code",
			code:     404,
			expected: Status{404, "Not Found"},
		},
		{
			desc:     "another registered code",
			code:     302,
			expected: Status{302, "Found"},
		},
		{
			desc:     "unknown code keeps empty reason",
			code:     799,
			expected: Status{799, ""},
		},
		{
			desc:     "unused code in a known range",
			code:     306,
			expected: Status{306, ""},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.expected, FromCode(tc.code))
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "200 OK", OK.String())
	assert.Equal(t, "799 ", FromCode(799).String())
}
