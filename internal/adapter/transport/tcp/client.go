package tcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/dayanaadylkhanova/tcp-wow/internal/adapter/transport/wire"
	"github.com/dayanaadylkhanova/tcp-wow/internal/entity"
	"github.com/dayanaadylkhanova/tcp-wow/internal/service"
)

var ErrRejected = errors.New("is not valid proof")

type Client struct {
	log          *slog.Logger
	addr         string
	solveTimeout time.Duration
	newSolver    func(entity.Challenge) Solver
}

type ClientOption func(*Client)

// WithSolveTimeout aborts the search after d. Zero searches until found.
func WithSolveTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.solveTimeout = d }
}

func WithSolverFactory(f func(entity.Challenge) Solver) ClientOption {
	return func(c *Client) { c.newSolver = f }
}

func NewClient(log *slog.Logger, addr string, opts ...ClientOption) *Client {
	c := &Client{
		log:  log,
		addr: addr,
		newSolver: func(ch entity.Challenge) Solver {
			return service.NewSolver(ch)
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// GetResponse runs one full exchange: receive a challenge, solve it, submit
// the solution and return the quote if the server accepts it.
func (c *Client) GetResponse(ctx context.Context) (string, error) {
	conn, err := (&net.Dialer{}).DialContext(ctx, "tcp", c.addr)
	if err != nil {
		return "", fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()
	defer func() {
		if tc, ok := conn.(*net.TCPConn); ok {
			_ = tc.CloseWrite()
			_ = tc.CloseRead()
		}
	}()

	if dl, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(dl)
	}
	return c.exchange(ctx, wire.New(conn))
}

func (c *Client) exchange(ctx context.Context, tr *wire.Transport) (string, error) {
	var ch entity.Challenge
	if err := tr.Receive(entity.ChallengeSize, &ch); err != nil {
		return "", fmt.Errorf("read challenge: %w", err)
	}
	c.log.Info("received challenge", "difficulty", ch.Difficulty)
	if ch.Difficulty > entity.MaxDifficulty {
		return "", fmt.Errorf("challenge difficulty %d: %w", ch.Difficulty, service.ErrDifficultyRange)
	}

	solveCtx := ctx
	if c.solveTimeout > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, c.solveTimeout)
		defer cancel()
	}
	res, err := c.newSolver(ch).SolveContext(solveCtx)
	if err != nil {
		return "", fmt.Errorf("solve after %d attempts: %w", res.Attempts, err)
	}
	c.log.Info("proof calculated", "attempts", res.Attempts)

	if err := tr.Send(res.Solution); err != nil {
		return "", fmt.Errorf("send solution: %w", err)
	}

	var state entity.SolutionState
	if err := tr.Receive(entity.SolutionStateSize, &state); err != nil {
		return "", fmt.Errorf("read verdict: %w", err)
	}
	if state == entity.Rejected {
		return "", ErrRejected
	}
	c.log.Info("is valid proof")

	var resp entity.Response
	if err := tr.ReceiveVarsize(&resp); err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return string(resp), nil
}
