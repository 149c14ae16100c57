package tcp

import (
	"net"

	"github.com/dayanaadylkhanova/tcp-wow/internal/adapter/transport/wire"
)

type connState int

const (
	// stateInitial: the challenge goes out next.
	stateInitial connState = iota
	// stateChallengeSent: waiting for the solution.
	stateChallengeSent
)

func (s connState) String() string {
	switch s {
	case stateInitial:
		return "initial"
	case stateChallengeSent:
		return "challenge_sent"
	default:
		return "unknown"
	}
}

type connection struct {
	conn  net.Conn
	tr    *wire.Transport
	state connState
}

func newConnection(conn net.Conn) *connection {
	return &connection{conn: conn, tr: wire.New(conn), state: stateInitial}
}

// shutdown closes both directions; the caller still closes conn.
func (c *connection) shutdown() {
	if tc, ok := c.conn.(*net.TCPConn); ok {
		_ = tc.CloseWrite()
		_ = tc.CloseRead()
	}
}
