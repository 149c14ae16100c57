package tcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/dayanaadylkhanova/tcp-wow/internal/entity"
	"github.com/dayanaadylkhanova/tcp-wow/internal/metrics"
	"github.com/dayanaadylkhanova/tcp-wow/internal/service"
)

var ErrNoResponses = errors.New("server needs at least one response")

type Server struct {
	log       *slog.Logger
	addr      string
	pow       PoW
	quotes    Quote
	shutdownT time.Duration

	// Zero means unlimited.
	maxConns    int
	connTimeout time.Duration

	wg      sync.WaitGroup
	connsMu sync.Mutex
	active  map[net.Conn]struct{}
}

type Option func(*Server)

// WithMaxConns caps concurrently handled connections; the accept loop waits
// for a free slot.
func WithMaxConns(n int) Option { return func(s *Server) { s.maxConns = n } }

// WithConnTimeout bounds the whole exchange on a single connection.
func WithConnTimeout(d time.Duration) Option { return func(s *Server) { s.connTimeout = d } }

func NewServer(log *slog.Logger, addr string, shutdown time.Duration, pow PoW, quotes Quote, opts ...Option) (*Server, error) {
	if quotes == nil || quotes.Len() == 0 {
		return nil, ErrNoResponses
	}
	s := &Server{
		log:       log,
		addr:      addr,
		shutdownT: shutdown,
		pow:       pow,
		quotes:    quotes,
		active:    make(map[net.Conn]struct{}),
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

func (s *Server) Run(ctx context.Context, difficulty uint8) error {
	if difficulty > entity.MaxDifficulty {
		return service.ErrDifficultyRange
	}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Serve(ctx, ln, difficulty)
}

// Serve runs the accept loop on ln until ctx is done or ln is closed.
func (s *Server) Serve(ctx context.Context, ln net.Listener, difficulty uint8) error {
	s.log.Info("server started", "addr", ln.Addr().String(), "difficulty", difficulty)

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		s.acceptLoop(ctx, ln, difficulty)
	}()

	select {
	case <-ctx.Done():
	case <-loopDone:
		// listener closed underneath us
		_ = ln.Close()
		return nil
	}

	s.log.Info("shutdown: closing listener")
	_ = ln.Close()
	// No wg.Add can happen once the loop has returned.
	<-loopDone

	s.connsMu.Lock()
	for c := range s.active {
		_ = c.SetDeadline(time.Now().Add(200 * time.Millisecond))
		if tc, ok := c.(*net.TCPConn); ok {
			_ = tc.CloseWrite()
		}
	}
	s.connsMu.Unlock()

	done := make(chan struct{})
	go func() { s.wg.Wait(); close(done) }()
	select {
	case <-done:
		s.log.Info("shutdown: all connections drained")
	case <-time.After(s.shutdownT):
		s.log.Warn("shutdown: force-close remaining connections")
		s.connsMu.Lock()
		for c := range s.active {
			_ = c.Close()
		}
		s.connsMu.Unlock()
	}
	return nil
}

// acceptLoop returns only when ln is closed or ctx is done. Any other accept
// error is logged and retried after a short pause.
func (s *Server) acceptLoop(ctx context.Context, ln net.Listener, difficulty uint8) {
	var slots chan struct{}
	if s.maxConns > 0 {
		slots = make(chan struct{}, s.maxConns)
	}
	for {
		if slots != nil {
			select {
			case slots <- struct{}{}:
			case <-ctx.Done():
				return
			}
		}
		conn, err := ln.Accept()
		if err != nil {
			if slots != nil {
				<-slots
			}
			if errors.Is(err, net.ErrClosed) {
				return
			}
			metrics.ConnError("accept")
			s.log.Warn("accept error", "err", err)
			select {
			case <-time.After(50 * time.Millisecond):
			case <-ctx.Done():
				return
			}
			continue
		}
		s.log.Info("connection accepted", "remote", conn.RemoteAddr().String())
		s.track(conn, true)
		s.wg.Add(1)
		go func(c net.Conn) {
			defer s.wg.Done()
			defer s.track(c, false)
			if slots != nil {
				defer func() { <-slots }()
			}
			s.handle(c, difficulty)
		}(conn)
	}
}

func (s *Server) track(c net.Conn, add bool) {
	s.connsMu.Lock()
	if add {
		s.active[c] = struct{}{}
	} else {
		delete(s.active, c)
	}
	s.connsMu.Unlock()
}

// handle owns conn for its whole life. Failures stay local to the connection.
func (s *Server) handle(conn net.Conn, difficulty uint8) {
	defer conn.Close()
	defer metrics.ConnOpened()()

	remote := conn.RemoteAddr().String()
	if s.connTimeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(s.connTimeout))
	}

	ch, err := s.pow.NewChallenge(difficulty)
	if err != nil {
		metrics.ConnError("new_challenge")
		s.log.Error("challenge create failed", "remote", remote, "err", err)
		return
	}

	c := newConnection(conn)
	state, err := s.exchange(c, ch)
	if err != nil {
		s.log.Warn("connection aborted", "remote", remote, "state", c.state.String(), "err", err)
		return
	}
	if state == entity.Accepted {
		s.log.Info("solution accepted", "remote", remote, "difficulty", ch.Difficulty)
	} else {
		s.log.Info("solution rejected", "remote", remote, "difficulty", ch.Difficulty)
	}
}

// exchange drives the connection state machine to completion.
func (s *Server) exchange(c *connection, ch entity.Challenge) (entity.SolutionState, error) {
	for {
		switch c.state {
		case stateInitial:
			if err := c.tr.Send(ch); err != nil {
				metrics.ConnError("send_challenge")
				return 0, fmt.Errorf("send challenge: %w", err)
			}
			c.state = stateChallengeSent

		case stateChallengeSent:
			var sol entity.Solution
			if err := c.tr.Receive(entity.SolutionSize, &sol); err != nil {
				metrics.ConnError("read_solution")
				return 0, fmt.Errorf("read solution: %w", err)
			}

			start := time.Now()
			verdict := entity.Accepted
			if err := s.pow.Verify(ch, sol); err != nil {
				verdict = entity.Rejected
				s.log.Debug("pow failed", "reason", err.Error())
			}
			metrics.Solution(verdict.String(), time.Since(start))

			if err := c.tr.Send(verdict); err != nil {
				metrics.ConnError("send_verdict")
				return verdict, fmt.Errorf("send verdict: %w", err)
			}
			if verdict == entity.Accepted {
				if err := c.tr.SendWithVarsize(entity.Response(s.quotes.Random())); err != nil {
					metrics.ConnError("send_response")
					return verdict, fmt.Errorf("send response: %w", err)
				}
			}
			c.shutdown()
			return verdict, nil

		default:
			return 0, fmt.Errorf("unknown connection state %d", c.state)
		}
	}
}
