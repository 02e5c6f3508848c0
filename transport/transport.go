// Package transport describes what the connector needs from the layer
// that owns sockets: endpoint metadata for the request and a byte sink
// for the committed response. Accepting, dialing and deadlines stay
// with that layer.
package transport

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
)

var ErrConnClosed = errors.New("connection is closed")

// Endpoint describes one side of a connection.
type Endpoint struct {
	Addr string // network address, e.g. "192.0.2.7"
	Host string // resolved name, may equal Addr
	Port uint16
}

func (e Endpoint) String() string {
	return e.Addr + ":" + strconv.FormatUint(uint64(e.Port), 10)
}

// Conn is one established connection. The connector reads the request
// body from it and writes the committed response to it; everything
// else about the socket is the owner's business.
type Conn interface {
	io.Reader
	io.Writer
	Close() error

	LocalAddr() Endpoint
	RemoteAddr() Endpoint
}
