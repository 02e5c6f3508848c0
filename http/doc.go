// Package http holds the wire-level plumbing of the connector: the
// protocol version type, HTTP date formatting, and the response
// encoder that frames status line, headers, cookies and body into
// bytes.
//
// Reference:
//
// - https://datatracker.ietf.org/doc/html/rfc9110
//
// - https://datatracker.ietf.org/doc/html/rfc9112
package http
