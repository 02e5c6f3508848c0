package connector

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"http-connector/http"
	"http-connector/http/status"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

const defaultBufferSize = 8192

type ResponseOptions struct {
	// BufferSize is the initial body buffer hint. Zero means the
	// default of 8192.
	BufferSize int

	Encode http.EncodeOptions
}

// Response is one outbound response. Output accumulates in an internal
// buffer until Flush commits it: the head is rendered, head and body
// are written to the sink once, and the response freezes. After that
// every mutator fails with [StateError] and only Recycle reopens the
// instance.
type Response struct {
	sink   io.Writer
	clock  clock.Clock
	logger *slog.Logger
	opts   ResponseOptions

	status      status.Status
	headers     *Headers
	cookies     []Cookie
	contentType string
	charset     string

	buf        bytes.Buffer
	bufferSize int

	committed  bool
	textUsed   bool
	streamUsed bool

	text   *TextWriter
	stream *ByteStream
}

func NewResponse(sink io.Writer, clk clock.Clock, logger *slog.Logger, opts ResponseOptions) *Response {
	if clk == nil {
		clk = clock.New()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.BufferSize == 0 {
		opts.BufferSize = defaultBufferSize
	}

	return &Response{
		sink:       sink,
		clock:      clk,
		logger:     logger,
		opts:       opts,
		status:     status.OK,
		headers:    NewHeaders(),
		charset:    defaultResponseCharset,
		bufferSize: opts.BufferSize,
	}
}

// SetStream binds the transport sink the commit writes to. The
// container calls this when handing a pooled instance to a new
// connection.
func (r *Response) SetStream(sink io.Writer) { r.sink = sink }

func (r *Response) Committed() bool { return r.committed }

// Status and headers. Every mutator checks commit state; a committed
// response rejects mutation instead of silently dropping it.

// SetStatus sets the code and derives the reason phrase from the
// registry; unknown codes get an empty phrase.
func (r *Response) SetStatus(code uint) error {
	if r.committed {
		return errCommitted("SetStatus")
	}
	r.status = status.FromCode(code)
	return nil
}

func (r *Response) SetStatusWithReason(code uint, reason string) error {
	if r.committed {
		return errCommitted("SetStatusWithReason")
	}
	r.status = status.Status{Code: code, ReasonPhrase: reason}
	return nil
}

func (r *Response) Status() status.Status { return r.status }
func (r *Response) ReasonPhrase() string  { return r.status.ReasonPhrase }

func (r *Response) SetHeader(name, value string) error {
	if r.committed {
		return errCommitted("SetHeader")
	}
	r.headers.Set(name, value)
	return nil
}

func (r *Response) AddHeader(name, value string) error {
	if r.committed {
		return errCommitted("AddHeader")
	}
	r.headers.Add(name, value)
	return nil
}

func (r *Response) SetIntHeader(name string, value int) error {
	return r.SetHeader(name, strconv.Itoa(value))
}

func (r *Response) AddIntHeader(name string, value int) error {
	return r.AddHeader(name, strconv.Itoa(value))
}

func (r *Response) SetDateHeader(name string, t time.Time) error {
	return r.SetHeader(name, http.FormatDate(t))
}

func (r *Response) AddDateHeader(name string, t time.Time) error {
	return r.AddHeader(name, http.FormatDate(t))
}

func (r *Response) Header(name string) (string, bool) { return r.headers.Get(name) }
func (r *Response) HeaderValues(name string) []string { return r.headers.Values(name) }
func (r *Response) HeaderNames() []string             { return r.headers.Names() }
func (r *Response) ContainsHeader(name string) bool   { return r.headers.Contains(name) }

// SetContentType records the type and mirrors it into the
// Content-Type header.
func (r *Response) SetContentType(contentType string) error {
	if r.committed {
		return errCommitted("SetContentType")
	}
	r.contentType = contentType
	r.headers.Set("Content-Type", contentType)
	return nil
}

func (r *Response) ContentType() string { return r.contentType }

func (r *Response) SetCharacterEncoding(name string) error {
	if r.committed {
		return errCommitted("SetCharacterEncoding")
	}
	if _, err := resolveCharset(name); err != nil {
		return err
	}
	r.charset = name
	return nil
}

func (r *Response) CharacterEncoding() string { return r.charset }

// SetContentLength overrides the length that would otherwise be
// derived from the buffered body at commit.
func (r *Response) SetContentLength(length int64) error {
	if r.committed {
		return errCommitted("SetContentLength")
	}
	r.headers.Set("Content-Length", strconv.FormatInt(length, 10))
	return nil
}

func (r *Response) AddCookie(cookie Cookie) error {
	if r.committed {
		return errCommitted("AddCookie")
	}
	r.cookies = append(r.cookies, cookie)
	return nil
}

func (r *Response) Cookies() []Cookie {
	return append([]Cookie(nil), r.cookies...)
}

// Buffer management.

func (r *Response) BufferSize() int { return r.bufferSize }

func (r *Response) SetBufferSize(size int) error {
	if r.committed {
		return errCommitted("SetBufferSize")
	}
	r.bufferSize = size
	r.buf.Grow(size)
	return nil
}

// ResetBuffer drops the buffered body along with headers and cookies,
// keeping status, content type and output mode.
func (r *Response) ResetBuffer() error {
	if r.committed {
		return errCommitted("ResetBuffer")
	}
	r.headers.Clear()
	r.cookies = nil
	r.buf.Reset()
	return nil
}

// Reset returns the uncommitted response to its default state,
// releasing the output-mode lock. The sink stays bound.
func (r *Response) Reset() error {
	if r.committed {
		return errCommitted("Reset")
	}
	r.resetState()
	return nil
}

func (r *Response) resetState() {
	r.status = status.OK
	r.headers.Clear()
	r.cookies = nil
	r.contentType = ""
	r.charset = defaultResponseCharset
	r.buf.Reset()
	r.textUsed = false
	r.streamUsed = false
	r.text = nil
	r.stream = nil
}

// Commit protocol.

// Flush commits the response: the writer in use is flushed into the
// buffer, Content-Length is derived from the buffer unless already
// set, the head is rendered and head plus body go to the sink in one
// pass. A second Flush on a committed response is a no-op.
func (r *Response) Flush() error {
	if r.committed {
		return nil
	}
	if r.sink == nil {
		return errors.New("response has no output stream")
	}

	if r.text != nil {
		if err := r.text.flush(); err != nil {
			return errors.Wrap(err, "flushing text writer")
		}
	}

	body := r.buf.Bytes()
	if !r.headers.Contains("Content-Length") {
		r.headers.Set("Content-Length", strconv.Itoa(len(body)))
	}

	cookies := make([]string, 0, len(r.cookies))
	for _, c := range r.cookies {
		cookies = append(cookies, c.String())
	}

	head := http.ResponseHead{
		Version:    http.Version1_1,
		Status:     r.status,
		Fields:     r.headers.ToRawFields(),
		SetCookies: cookies,
	}

	enc := http.NewResponseEncoder(r.sink, r.clock, r.opts.Encode)
	if err := enc.Encode(head, body); err != nil {
		return errors.Wrap(err, "writing response")
	}

	r.committed = true
	return nil
}

// SendError commits an error page with the registry phrase for code.
func (r *Response) SendError(code uint) error {
	return r.SendErrorMsg(code, status.FromCode(code).ReasonPhrase)
}

// SendErrorMsg discards everything staged so far and commits a minimal
// HTML error page. msg is written into the page as-is; sanitizing it
// is the caller's job.
func (r *Response) SendErrorMsg(code uint, msg string) error {
	if r.committed {
		return errCommitted("SendErrorMsg")
	}

	r.status = status.Status{Code: code, ReasonPhrase: msg}
	r.headers.Clear()
	r.cookies = nil
	r.contentType = "text/html; charset=UTF-8"
	r.headers.Set("Content-Type", r.contentType)

	r.buf.Reset()
	fmt.Fprintf(&r.buf,
		"<html><head><title>Error</title></head><body>"+
			"<h1>HTTP Error %d - %s</h1>"+
			"</body></html>", code, msg)

	r.logger.Debug("sending error page", "code", code, "message", msg)
	return r.Flush()
}

// SendRedirect commits a 302 pointing at location. location is neither
// validated nor escaped here; callers must sanitize untrusted input
// before passing it in.
func (r *Response) SendRedirect(location string) error {
	if r.committed {
		return errCommitted("SendRedirect")
	}

	r.status = status.Found
	r.headers.Clear()
	r.cookies = nil
	r.headers.Set("Location", location)
	r.contentType = "text/html; charset=UTF-8"
	r.headers.Set("Content-Type", r.contentType)

	r.buf.Reset()
	fmt.Fprintf(&r.buf,
		"<html><head><title>Redirect</title></head><body>"+
			"<h1>Redirecting to <a href=%q>%s</a></h1>"+
			"</body></html>", location, location)

	r.logger.Debug("sending redirect", "location", location)
	return r.Flush()
}

// Recycle returns the instance to its default state for reuse by an
// unrelated exchange. Unlike Reset it also reopens a committed
// response and unbinds the sink, so no bytes can leak to the previous
// connection.
func (r *Response) Recycle() {
	r.resetState()
	r.bufferSize = r.opts.BufferSize
	r.committed = false
	r.sink = nil
}
