package connector

import (
	"bytes"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"http-connector/http"
	iolib "http-connector/lib/io"
	"http-connector/transport"

	"golang.org/x/text/language"
)

// DefaultLocale is the fallback when Accept-Language is absent or does
// not parse.
var DefaultLocale = language.English

// Request is one inbound request. The collaborator parser populates
// method, target, protocol, headers, parameters and the body handle;
// the transport layer injects endpoint metadata; the handler only
// reads, except for attributes and the two setters (locale pin,
// character encoding).
type Request struct {
	method  string
	target  string
	version http.Version

	headers *Headers

	params     map[string][]string
	paramNames []string

	cookies       []Cookie
	cookiesParsed bool

	attributes map[string]any

	body io.Reader

	remote, local transport.Endpoint
	scheme        string
	secure        bool

	locale    language.Tag
	localeSet bool

	charset string

	logger *slog.Logger
}

func NewRequest(logger *slog.Logger) *Request {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Request{
		headers:    NewHeaders(),
		params:     make(map[string][]string),
		attributes: make(map[string]any),
		scheme:     "http",
		charset:    defaultRequestCharset,
		logger:     logger,
	}
}

// Parser-facing population. These are not for handlers.

func (r *Request) SetMethod(method string)          { r.method = method }
func (r *Request) SetRequestURI(target string)      { r.target = target }
func (r *Request) SetProtocol(version http.Version) { r.version = version }

func (r *Request) SetHeaders(h *Headers) {
	if h == nil {
		h = NewHeaders()
	}
	r.headers = h
	r.cookies = nil
	r.cookiesParsed = false
}

// SetParameters replaces the parameter map, derived from query and
// body by the parser. Values are copied; names are enumerated in
// sorted order since the map carries none.
func (r *Request) SetParameters(params map[string][]string) {
	r.params = make(map[string][]string, len(params))
	r.paramNames = make([]string, 0, len(params))
	for name, values := range params {
		r.params[name] = append([]string(nil), values...)
		r.paramNames = append(r.paramNames, name)
	}
	sort.Strings(r.paramNames)
}

// SetBody installs the body byte stream. When a Content-Length header
// is already set, the stream is capped to it, so install headers
// first.
func (r *Request) SetBody(body io.Reader) {
	if n := r.ContentLength(); body != nil && n >= 0 {
		body = iolib.LimitReader(body, uint(n))
	}
	r.body = body
}

func (r *Request) SetEndpoints(remote, local transport.Endpoint) {
	r.remote, r.local = remote, local
}

func (r *Request) SetScheme(scheme string, secure bool) {
	r.scheme, r.secure = scheme, secure
}

// Handler-facing accessors.

func (r *Request) Method() string        { return r.method }
func (r *Request) RequestURI() string    { return r.target }
func (r *Request) Protocol() string      { return r.version.String() }
func (r *Request) Version() http.Version { return r.version }

func (r *Request) Header(name string) (string, bool) { return r.headers.Get(name) }
func (r *Request) HeaderValues(name string) []string { return r.headers.Values(name) }
func (r *Request) HeaderNames() []string             { return r.headers.Names() }

// IntHeader returns the named header as an int, or -1 when the header
// is absent or not numeric. Malformed values are sentinel'd, never an
// error.
func (r *Request) IntHeader(name string) int {
	v, ok := r.headers.Get(name)
	if !ok {
		return -1
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return -1
	}
	return n
}

// DateHeader returns the named header parsed as an HTTP date, in unix
// milliseconds, or -1 when absent or malformed.
func (r *Request) DateHeader(name string) int64 {
	v, ok := r.headers.Get(name)
	if !ok {
		return -1
	}
	t, err := http.ParseDate(v)
	if err != nil {
		return -1
	}
	return t.UnixMilli()
}

func (r *Request) ContentLength() int64 {
	v, ok := r.headers.Get("Content-Length")
	if !ok {
		return -1
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return -1
	}
	return n
}

// ContentType is empty when the header is absent.
func (r *Request) ContentType() string {
	v, _ := r.headers.Get("Content-Type")
	return v
}

func (r *Request) Parameter(name string) (string, bool) {
	values, ok := r.params[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func (r *Request) ParameterValues(name string) []string {
	values, ok := r.params[name]
	if !ok {
		return nil
	}
	return append([]string(nil), values...)
}

func (r *Request) ParameterNames() []string {
	return append([]string(nil), r.paramNames...)
}

func (r *Request) ParameterMap() map[string][]string {
	clone := make(map[string][]string, len(r.params))
	for name, values := range r.params {
		clone[name] = append([]string(nil), values...)
	}
	return clone
}

// QueryString rebuilds a query string from the parameter map. The raw
// query line is not retained, so this is best-effort: repeated keys
// come out as repeated pairs and an empty value as "key=", which need
// not byte-match what was on the wire.
func (r *Request) QueryString() string {
	var b strings.Builder
	for _, name := range r.paramNames {
		for _, value := range r.params[name] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(name)
			b.WriteByte('=')
			b.WriteString(value)
		}
	}
	return b.String()
}

// Cookies parses the Cookie header on first use and caches the result
// until recycle. Malformed pairs are logged and skipped.
func (r *Request) Cookies() []Cookie {
	if !r.cookiesParsed {
		raw, _ := r.headers.Get("Cookie")
		cookies, errs := ParseCookies(raw)
		for _, err := range errs {
			r.logger.Warn("skipping malformed cookie pair", "error", err)
		}
		r.cookies = cookies
		r.cookiesParsed = true
	}

	return append([]Cookie(nil), r.cookies...)
}

func (r *Request) Attribute(name string) (any, bool) {
	v, ok := r.attributes[name]
	return v, ok
}

func (r *Request) SetAttribute(name string, value any) { r.attributes[name] = value }
func (r *Request) RemoveAttribute(name string)         { delete(r.attributes, name) }

func (r *Request) AttributeNames() []string {
	names := make([]string, 0, len(r.attributes))
	for name := range r.attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetLocale pins an explicit locale; it takes precedence over
// Accept-Language negotiation.
func (r *Request) SetLocale(tag language.Tag) {
	r.locale = tag
	r.localeSet = true
}

// Locale negotiates from the first Accept-Language entry, quality
// suffix stripped. Absent or unparsable headers fall back to
// [DefaultLocale].
func (r *Request) Locale() language.Tag {
	if r.localeSet {
		return r.locale
	}

	raw, ok := r.headers.Get("Accept-Language")
	if !ok || strings.TrimSpace(raw) == "" {
		return DefaultLocale
	}

	first, _, _ := strings.Cut(raw, ",")
	tag, err := parseLanguageEntry(first)
	if err != nil {
		r.logger.Debug("failed to parse Accept-Language", "entry", first, "error", err)
		return DefaultLocale
	}

	return tag
}

// Locales returns every parseable Accept-Language entry in header
// order, or [DefaultLocale] alone when none parse.
func (r *Request) Locales() []language.Tag {
	raw, ok := r.headers.Get("Accept-Language")
	if !ok || strings.TrimSpace(raw) == "" {
		return []language.Tag{DefaultLocale}
	}

	var tags []language.Tag
	for _, entry := range strings.Split(raw, ",") {
		tag, err := parseLanguageEntry(entry)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}

	if len(tags) == 0 {
		return []language.Tag{DefaultLocale}
	}
	return tags
}

func parseLanguageEntry(entry string) (language.Tag, error) {
	entry = strings.TrimSpace(entry)
	if i := strings.IndexByte(entry, ';'); i >= 0 {
		// Drop the ";q=..." quality suffix.
		entry = entry[:i]
	}
	return language.Parse(strings.TrimSpace(entry))
}

func (r *Request) CharacterEncoding() string { return r.charset }

// SetCharacterEncoding fails with [EncodingError] on empty or unknown
// names.
func (r *Request) SetCharacterEncoding(name string) error {
	if _, err := resolveCharset(name); err != nil {
		return err
	}
	r.charset = name
	return nil
}

// Body is the raw byte stream, capped to Content-Length when one was
// declared.
func (r *Request) Body() io.Reader {
	if r.body == nil {
		return bytes.NewReader(nil)
	}
	return r.body
}

// Reader decodes the body through the request's character encoding.
func (r *Request) Reader() (io.Reader, error) {
	enc, err := resolveCharset(r.charset)
	if err != nil {
		return nil, err
	}
	return enc.NewDecoder().Reader(r.Body()), nil
}

func (r *Request) Remote() transport.Endpoint { return r.remote }
func (r *Request) Local() transport.Endpoint  { return r.local }
func (r *Request) Scheme() string             { return r.scheme }
func (r *Request) IsSecure() bool             { return r.secure }

// Recycle resets the request to its default state for reuse by an
// unrelated exchange. Leaving any field behind would leak one client's
// data to another, so everything mutable is cleared.
func (r *Request) Recycle() {
	r.method = ""
	r.target = ""
	r.version = http.Version{}
	r.headers.Clear()
	r.params = make(map[string][]string)
	r.paramNames = nil
	r.cookies = nil
	r.cookiesParsed = false
	r.attributes = make(map[string]any)
	r.body = nil
	r.remote = transport.Endpoint{}
	r.local = transport.Endpoint{}
	r.scheme = "http"
	r.secure = false
	r.locale = language.Tag{}
	r.localeSet = false
	r.charset = defaultRequestCharset
}
