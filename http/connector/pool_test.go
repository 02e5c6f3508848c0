package connector

import (
	"testing"
	"time"

	"http-connector/transport"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestExchangePool(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(1994, time.November, 6, 8, 49, 37, 0, time.UTC))

	pool := NewExchangePool(mock, nil, ResponseOptions{})

	local := transport.Endpoint{Addr: "10.0.0.1", Host: "server", Port: 8080}
	remote := transport.Endpoint{Addr: "10.0.0.2", Host: "client", Port: 52100}
	conn := transport.NewStubConn(nil, local, remote)

	ex := pool.Get(conn)
	require.NotNil(t, ex.Request)
	require.NotNil(t, ex.Response)

	assert.Equal(t, remote, ex.Request.Remote())
	assert.Equal(t, local, ex.Request.Local())

	require.NoError(t, ex.Response.SetContentType("text/plain"))
	out, err := ex.Response.ByteStream()
	require.NoError(t, err)
	_, err = out.Write([]byte("hi"))
	require.NoError(t, err)
	require.NoError(t, ex.Response.Flush())

	written := string(conn.Output())
	assert.Contains(t, written, "HTTP/1.1 200 OK\r\n")
	assert.Contains(t, written, "\r\n\r\nhi")

	pool.Put(ex)
}

func TestExchangePoolReuseLeavesNoResidue(t *testing.T) {
	pool := NewExchangePool(clock.NewMock(), nil, ResponseOptions{})

	first := transport.NewStubConn(nil,
		transport.Endpoint{Addr: "10.0.0.1", Port: 8080},
		transport.Endpoint{Addr: "10.0.0.2", Port: 52100},
	)

	ex := pool.Get(first)
	ex.Request.SetMethod("POST")
	ex.Request.SetAttribute("user", "alice")
	require.NoError(t, ex.Response.SetStatus(500))
	out, err := ex.Response.ByteStream()
	require.NoError(t, err)
	_, err = out.Write([]byte("secret"))
	require.NoError(t, err)
	require.NoError(t, ex.Response.Flush())
	pool.Put(ex)

	second := transport.NewStubConn(nil,
		transport.Endpoint{Addr: "10.0.0.3", Port: 8080},
		transport.Endpoint{Addr: "10.0.0.4", Port: 40000},
	)

	// sync.Pool gives no identity guarantee, so check state rather
	// than pointer equality.
	ex = pool.Get(second)
	assert.Empty(t, ex.Request.Method())
	_, ok := ex.Request.Attribute("user")
	assert.False(t, ok)
	assert.Equal(t, transport.Endpoint{Addr: "10.0.0.4", Port: 40000}, ex.Request.Remote())

	assert.False(t, ex.Response.Committed())
	require.NoError(t, ex.Response.Flush())
	assert.NotContains(t, string(second.Output()), "secret")
	assert.Contains(t, string(second.Output()), "HTTP/1.1 200 OK\r\n")

	pool.Put(ex)
}
