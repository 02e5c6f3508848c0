package connector

import (
	"log/slog"
	"sync"

	"http-connector/transport"

	"github.com/benbjohnson/clock"
)

// Exchange is one request/response pair, owned by a single worker from
// Get to Put.
type Exchange struct {
	Request  *Request
	Response *Response
}

// ExchangePool reuses exchanges across connections instead of
// allocating per request. Ownership transfers with the handle: the
// borrower must hand the exchange back through Put, which recycles
// both halves before they can reach another worker.
type ExchangePool struct {
	pool sync.Pool
}

func NewExchangePool(clk clock.Clock, logger *slog.Logger, opts ResponseOptions) *ExchangePool {
	p := &ExchangePool{}
	p.pool.New = func() any {
		return &Exchange{
			Request:  NewRequest(logger),
			Response: NewResponse(nil, clk, logger, opts),
		}
	}
	return p
}

// Get borrows an exchange bound to conn: the request carries the
// connection's endpoint metadata and the response commits to it.
func (p *ExchangePool) Get(conn transport.Conn) *Exchange {
	ex := p.pool.Get().(*Exchange)
	ex.Request.SetEndpoints(conn.RemoteAddr(), conn.LocalAddr())
	ex.Response.SetStream(conn)
	return ex
}

// Put recycles the exchange and returns it to the pool. The caller
// must not touch ex afterwards.
func (p *ExchangePool) Put(ex *Exchange) {
	ex.Request.Recycle()
	ex.Response.Recycle()
	p.pool.Put(ex)
}
