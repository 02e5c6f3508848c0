// Package status is the curated registry mapping status codes to their
// reason phrases. Codes outside the registry keep an empty reason.
package status

import "strconv"

type Status struct {
	Code         uint
	ReasonPhrase string
}

func (s Status) String() string {
	return strconv.FormatUint(uint64(s.Code), 10) + " " + s.ReasonPhrase
}

var registry = make(map[uint]string)

func register(code uint, phrase string) Status {
	registry[code] = phrase
	return Status{Code: code, ReasonPhrase: phrase}
}

// FromCode derives a reason phrase for code. Unknown codes get an
// empty phrase, not an error; callers that want a custom phrase set it
// explicitly.
func FromCode(code uint) Status {
	return Status{Code: code, ReasonPhrase: registry[code]}
}

// Informational 1XX
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.2
var (
	Continue           = register(100, "Continue")
	SwitchingProtocols = register(101, "Switching Protocols")
)

// Successful 2XX
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.3
var (
	OK                   = register(200, "OK")
	Created              = register(201, "Created")
	Accepted             = register(202, "Accepted")
	NonAuthoritativeInfo = register(203, "Non-Authoritative Information")
	NoContent            = register(204, "No Content")
	ResetContent         = register(205, "Reset Content")
	PartialContent       = register(206, "Partial Content")
)

// Redirection 3xx
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.4
var (
	MultipleChoices   = register(300, "Multiple Choices")
	MovedPermanently  = register(301, "Moved Permanently")
	Found             = register(302, "Found")
	SeeOther          = register(303, "See Other")
	NotModified       = register(304, "Not Modified")
	UseProxy          = register(305, "Use Proxy")
	TemporaryRedirect = register(307, "Temporary Redirect")
	PermanentRedirect = register(308, "Permanent Redirect")
)

// Client Error 4xx
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.5
var (
	BadRequest           = register(400, "Bad Request")
	Unauthorized         = register(401, "Unauthorized")
	PaymentRequired      = register(402, "Payment Required")
	Forbidden            = register(403, "Forbidden")
	NotFound             = register(404, "Not Found")
	MethodNotAllowed     = register(405, "Method Not Allowed")
	NotAcceptable        = register(406, "Not Acceptable")
	ProxyAuthRequired    = register(407, "Proxy Authentication Required")
	RequestTimeout       = register(408, "Request Timeout")
	Conflict             = register(409, "Conflict")
	Gone                 = register(410, "Gone")
	LengthRequired       = register(411, "Length Required")
	PreconditionFailed   = register(412, "Precondition Failed")
	ContentTooLarge      = register(413, "Content Too Large")
	URITooLong           = register(414, "URI Too Long")
	UnsupportedMediaType = register(415, "Unsupported Media Type")
	RangeNotSatisfiable  = register(416, "Range Not Satisfiable")
	ExpectationFailed    = register(417, "Expectation Failed")
	MisdirectedRequest   = register(421, "Misdirected Request")
	UnprocessableContent = register(422, "Unprocessable Content")
	UpgradeRequired      = register(426, "Upgrade Required")
)

// Server Error 5xx
// Reference: https://datatracker.ietf.org/doc/html/rfc9110#section-15.6
var (
	InternalServerError     = register(500, "Internal Server Error")
	NotImplemented          = register(501, "Not Implemented")
	BadGateway              = register(502, "Bad Gateway")
	ServiceUnavailable      = register(503, "Service Unavailable")
	GatewayTimeout          = register(504, "Gateway Timeout")
	HTTPVersionNotSupported = register(505, "HTTP Version Not Supported")
)
