package connector

import "github.com/pkg/errors"

// The broad servlet-style capability surface (sessions, auth,
// multipart, async, upgrade) is deliberately not part of this core.
// Each capability answers with an explicit error instead of a silent
// nil or false, so callers can tell "not present" from "not
// implemented".

// ErrNotSupported marks a capability this connector does not provide.
var ErrNotSupported = errors.New("not supported by this connector")

// Part is one piece of a multipart body. Never produced here.
type Part struct {
	Name        string
	ContentType string
	Data        []byte
}

func (r *Request) SessionID() (string, error) {
	return "", errors.Wrap(ErrNotSupported, "session management")
}

func (r *Request) RemoteUser() (string, error) {
	return "", errors.Wrap(ErrNotSupported, "authentication")
}

func (r *Request) Parts() ([]Part, error) {
	return nil, errors.Wrap(ErrNotSupported, "multipart parsing")
}

func (r *Request) StartAsync() error {
	return errors.Wrap(ErrNotSupported, "asynchronous handling")
}

func (r *Request) Upgrade(protocol string) error {
	return errors.Wrapf(ErrNotSupported, "upgrade to %q", protocol)
}
