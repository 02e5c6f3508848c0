package connector

import (
	"strconv"
	"strings"
)

// Cookie is an immutable value object. A response owns the cookies
// added to it until commit; the model never inspects them beyond
// formatting.
type Cookie struct {
	Name  string
	Value string

	// MaxAge in seconds. Zero or positive emits a Max-Age attribute;
	// negative means a session cookie.
	MaxAge int

	Path     string // rendered as "/" when empty
	Domain   string
	Secure   bool
	HttpOnly bool
}

// NewCookie builds a session cookie with the default path.
func NewCookie(name, value string) Cookie {
	return Cookie{Name: name, Value: value, MaxAge: -1, Path: "/"}
}

// String renders the cookie as a Set-Cookie header value.
func (c Cookie) String() string {
	var b strings.Builder

	b.WriteString(c.Name)
	b.WriteByte('=')
	b.WriteString(c.Value)

	if c.MaxAge >= 0 {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(c.MaxAge))
	}

	path := c.Path
	if path == "" {
		path = "/"
	}
	b.WriteString("; Path=")
	b.WriteString(path)

	if c.Domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(c.Domain)
	}
	if c.Secure {
		b.WriteString("; Secure")
	}
	if c.HttpOnly {
		b.WriteString("; HttpOnly")
	}

	return b.String()
}

// ParseCookies splits a request Cookie header into its name=value
// pairs. Both sides of each pair are trimmed. Pairs without '=' are
// reported as [FormatError]s and skipped; they never fail the parse.
func ParseCookies(header string) ([]Cookie, []error) {
	if strings.TrimSpace(header) == "" {
		return nil, nil
	}

	var cookies []Cookie
	var errs []error

	for _, pair := range strings.Split(header, ";") {
		name, value, found := strings.Cut(pair, "=")
		if !found {
			errs = append(errs, FormatError{
				Input:  strings.TrimSpace(pair),
				Reason: "cookie pair",
			})
			continue
		}

		cookies = append(cookies, Cookie{
			Name:   strings.TrimSpace(name),
			Value:  strings.TrimSpace(value),
			MaxAge: -1,
		})
	}

	return cookies, errs
}
