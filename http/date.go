package http

import (
	"time"

	"github.com/pkg/errors"
)

// Preferred format: IMF-fixdate. The zone is always rendered as the
// literal "GMT" no matter what the local zone is.
const imfFixDateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

const (
	// Obsolete RFC 850 format
	rfc850DateFormat = time.RFC850
	// Obsolete asctime format
	asctimeDateFormat = time.ANSIC
)

// FormatDate renders t as an IMF-fixdate in GMT, e.g.
// "Sun, 06 Nov 1994 08:49:37 GMT".
func FormatDate(t time.Time) string {
	return t.UTC().Format(imfFixDateFormat)
}

// ParseDate accepts the three date formats a peer may send.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-5.6.7
func ParseDate(raw string) (time.Time, error) {
	layouts := []string{time.RFC1123, rfc850DateFormat, asctimeDateFormat}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}

	return time.Time{}, errors.Errorf("invalid time format: %q", raw)
}
