package app

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/dayanaadylkhanova/tcp-wow/internal/metrics"
)

type App struct {
	srv        Runner
	difficulty uint8

	log         *slog.Logger
	metricsAddr string
}

type Option func(*App)

// WithMetrics serves Prometheus metrics on addr for the lifetime of Run.
func WithMetrics(log *slog.Logger, addr string) Option {
	return func(a *App) {
		a.log = log
		a.metricsAddr = addr
	}
}

func New(srv Runner, difficulty uint8, opts ...Option) *App {
	a := &App{srv: srv, difficulty: difficulty}
	for _, o := range opts {
		o(a)
	}
	return a
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.metricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, a.log, a.metricsAddr); err != nil {
				a.log.Error("metrics server failed", "err", err)
			}
		}()
	}
	return a.srv.Run(ctx, a.difficulty)
}
