package http

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"http-connector/http/status"
	iolib "http-connector/lib/io"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
)

// DefaultServerToken is the product token written on the Server line
// unless the options override it.
const DefaultServerToken = "Connector/1.0"

type EncodeOptions struct {
	// UseSoleLF specifies wheter a single LF character should be used as a line terminator.
	//
	// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-2.2-3
	UseSoleLF bool

	// ServerToken overrides [DefaultServerToken] when non-empty.
	ServerToken string
}

var DefaultEncodeOptions = EncodeOptions{
	UseSoleLF: false,
}

// ResponseHead is everything above the blank line, pre-ordered by the
// caller except for the fixed positions the encoder owns: Content-Type
// is hoisted to the front, Date and Server close the head.
type ResponseHead struct {
	Version Version
	Status  status.Status

	// Fields come in the order they should appear on the wire, one
	// entry per line.
	Fields []Field

	// SetCookies are pre-formatted Set-Cookie values, one line each,
	// in the order the cookies were added.
	SetCookies []string
}

// ResponseEncoder frames a response head and body into wire bytes.
type ResponseEncoder struct {
	bw    *bufio.Writer
	clock clock.Clock
	opts  EncodeOptions
}

func NewResponseEncoder(w io.Writer, clock clock.Clock, opts EncodeOptions) *ResponseEncoder {
	return &ResponseEncoder{
		bw:    bufio.NewWriter(w),
		clock: clock,
		opts:  opts,
	}
}

func (re *ResponseEncoder) writeLine(line []byte) error {
	if _, err := re.bw.Write(line); err != nil {
		return errors.Wrap(err, "writing line")
	}

	term := []byte("\r\n")
	if re.opts.UseSoleLF {
		term = term[1:]
	}

	if _, err := re.bw.Write(term); err != nil {
		return errors.Wrap(err, "writing line terminator")
	}

	return nil
}

func (re *ResponseEncoder) Encode(head ResponseHead, body []byte) error {
	if err := re.encodeStatusLine(head); err != nil {
		return errors.Wrap(err, "encoding status line")
	}

	if err := re.encodeFields(head.Fields); err != nil {
		return errors.Wrap(err, "encoding headers")
	}

	for _, c := range head.SetCookies {
		if err := re.writeLine([]byte("Set-Cookie: " + c)); err != nil {
			return errors.Wrap(err, "encoding cookie")
		}
	}

	if err := re.writeLine([]byte("Date: " + FormatDate(re.clock.Now()))); err != nil {
		return errors.Wrap(err, "encoding date")
	}

	token := re.opts.ServerToken
	if token == "" {
		token = DefaultServerToken
	}
	if err := re.writeLine([]byte("Server: " + token)); err != nil {
		return errors.Wrap(err, "encoding server token")
	}

	// Blank line closes the head.
	if err := re.writeLine(nil); err != nil {
		return errors.Wrap(err, "writing line terminator")
	}

	if _, err := iolib.WriteFull(re.bw, body); err != nil {
		return errors.Wrap(err, "writing response body")
	}

	if err := re.bw.Flush(); err != nil {
		return errors.Wrap(err, "flushing response")
	}

	return nil
}

func (re *ResponseEncoder) encodeStatusLine(head ResponseHead) error {
	buf := bytes.NewBuffer(nil)

	buf.Write(head.Version.Text())
	buf.WriteByte(' ')
	buf.Write([]byte(strconv.FormatUint(uint64(head.Status.Code), 10)))
	buf.WriteByte(' ')
	buf.Write([]byte(head.Status.ReasonPhrase))

	return re.writeLine(buf.Bytes())
}

// encodeFields writes Content-Type lines first, then the rest in the
// order given. The fixed position keeps output stable for clients that
// sniff the first header.
func (re *ResponseEncoder) encodeFields(fields []Field) error {
	for _, field := range fields {
		if !isContentType(field.Name) {
			continue
		}
		if err := re.writeLine(field.Text()); err != nil {
			return errors.Wrap(err, "writing field")
		}
	}

	for _, field := range fields {
		if isContentType(field.Name) {
			continue
		}
		if err := re.writeLine(field.Text()); err != nil {
			return errors.Wrap(err, "writing field")
		}
	}

	return nil
}

func isContentType(name []byte) bool {
	return bytes.EqualFold(name, []byte("Content-Type"))
}
