package transport

import (
	"bytes"
	"sync"
)

// StubConn is an in-memory [Conn] for tests and tooling: it reads from
// a fixed input and collects everything written to it.
type StubConn struct {
	in  *bytes.Reader
	out bytes.Buffer

	mu     sync.Mutex
	closed bool

	local, remote Endpoint
}

var _ Conn = (*StubConn)(nil)

func NewStubConn(input []byte, local, remote Endpoint) *StubConn {
	return &StubConn{
		in:     bytes.NewReader(input),
		local:  local,
		remote: remote,
	}
}

func (s *StubConn) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrConnClosed
	}
	return s.in.Read(p)
}

func (s *StubConn) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrConnClosed
	}
	return s.out.Write(p)
}

func (s *StubConn) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *StubConn) LocalAddr() Endpoint  { return s.local }
func (s *StubConn) RemoteAddr() Endpoint { return s.remote }

// Output returns a copy of everything written so far.
func (s *StubConn) Output() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return bytes.Clone(s.out.Bytes())
}
