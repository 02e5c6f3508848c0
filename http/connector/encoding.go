package connector

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

const (
	// Requests default to UTF-8, responses to Latin-1.
	defaultRequestCharset  = "UTF-8"
	defaultResponseCharset = "ISO-8859-1"
)

// resolveCharset resolves an IANA charset name. Empty and unknown
// names fail with [EncodingError].
func resolveCharset(name string) (encoding.Encoding, error) {
	if strings.TrimSpace(name) == "" {
		return nil, EncodingError{Name: name}
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		// ianaindex returns a nil encoding without error for names it
		// knows but cannot transform.
		return nil, EncodingError{Name: name}
	}

	return enc, nil
}
