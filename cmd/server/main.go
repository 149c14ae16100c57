package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dayanaadylkhanova/tcp-wow/internal/adapter/quote"
	"github.com/dayanaadylkhanova/tcp-wow/internal/adapter/transport/tcp"
	"github.com/dayanaadylkhanova/tcp-wow/internal/app"
	"github.com/dayanaadylkhanova/tcp-wow/internal/service"
	"github.com/dayanaadylkhanova/tcp-wow/pkg/config"
	"github.com/dayanaadylkhanova/tcp-wow/pkg/logger"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	root := &cobra.Command{
		Use:           "wow-server",
		Short:         "Serve quotes to clients that solve a proof-of-work challenge",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}
	f := root.Flags()
	f.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "TCP listen address")
	f.IntVar(&cfg.PoWDifficulty, "difficulty", cfg.PoWDifficulty, "required leading zero hex digits (0-64)")
	f.StringVar(&cfg.QuotesFile, "quotes", cfg.QuotesFile, "newline-delimited quotes file (built-in list when empty)")
	f.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address")
	f.IntVar(&cfg.MaxConns, "max-conns", cfg.MaxConns, "concurrent connection cap, 0 for unlimited")
	f.DurationVar(&cfg.ConnTimeout, "conn-timeout", cfg.ConnTimeout, "per-connection deadline, 0 for none")
	f.DurationVar(&cfg.ShutdownWait, "shutdown-wait", cfg.ShutdownWait, "drain time for open connections on shutdown")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	log := logger.New(os.Stdout, logger.LevelFromEnv(cfg.LogLevel), "server")

	responses := quote.Builtin
	if cfg.QuotesFile != "" {
		list, err := quote.LoadFile(cfg.QuotesFile)
		if err != nil {
			return err
		}
		responses = list
	}
	qt, err := quote.NewStatic(responses)
	if err != nil {
		return err
	}

	srv, err := tcp.NewServer(log, cfg.ListenAddr, cfg.ShutdownWait, service.NewHashcash(), qt,
		tcp.WithMaxConns(cfg.MaxConns),
		tcp.WithConnTimeout(cfg.ConnTimeout),
	)
	if err != nil {
		return err
	}

	var opts []app.Option
	if cfg.MetricsAddr != "" {
		opts = append(opts, app.WithMetrics(log, cfg.MetricsAddr))
	}
	if err := app.New(srv, cfg.Difficulty(), opts...).Run(); err != nil {
		log.Error("server stopped with error", slog.Any("err", err))
		return err
	}
	return nil
}
