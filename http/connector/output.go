package connector

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Output-mode lock: the first accessor called (TextWriter or
// ByteStream) claims the response for that mode and the other accessor
// fails for the rest of the instance's life. Both modes append to the
// same internal buffer.

// TextWriter appends characters to the response body, encoded through
// the response's character encoding. Runes the target charset cannot
// represent are substituted, not dropped.
type TextWriter struct {
	w      *transform.Writer
	closed bool
}

func (w *TextWriter) Write(p []byte) (int, error) { return w.w.Write(p) }

func (w *TextWriter) WriteString(s string) (int, error) { return w.w.Write([]byte(s)) }

func (w *TextWriter) flush() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.w.Close()
}

// ByteStream appends raw bytes to the response body.
type ByteStream struct {
	resp *Response
}

func (s *ByteStream) Write(p []byte) (int, error) { return s.resp.buf.Write(p) }

// TextWriter locks the response into text mode. It fails with
// [StateError] once ByteStream has been acquired.
func (r *Response) TextWriter() (*TextWriter, error) {
	if r.streamUsed {
		return nil, StateError{Op: "TextWriter", Reason: "byte stream already acquired"}
	}

	if r.text == nil {
		enc, err := resolveCharset(r.charset)
		if err != nil {
			return nil, err
		}
		r.text = &TextWriter{
			w: transform.NewWriter(&r.buf, encoding.ReplaceUnsupported(enc.NewEncoder())),
		}
	}

	r.textUsed = true
	return r.text, nil
}

// ByteStream locks the response into binary mode. It fails with
// [StateError] once TextWriter has been acquired.
func (r *Response) ByteStream() (*ByteStream, error) {
	if r.textUsed {
		return nil, StateError{Op: "ByteStream", Reason: "text writer already acquired"}
	}

	if r.stream == nil {
		r.stream = &ByteStream{resp: r}
	}

	r.streamUsed = true
	return r.stream, nil
}
