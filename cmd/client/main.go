package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayanaadylkhanova/tcp-wow/internal/adapter/transport/tcp"
	"github.com/dayanaadylkhanova/tcp-wow/pkg/config"
	"github.com/dayanaadylkhanova/tcp-wow/pkg/logger"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	var timeout time.Duration
	root := &cobra.Command{
		Use:           "wow-client",
		Short:         "Solve the server's proof-of-work challenge and print the quote",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New(os.Stderr, logger.LevelFromEnv(cfg.LogLevel), "client")

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			c := tcp.NewClient(log, cfg.ServerAddr, tcp.WithSolveTimeout(cfg.SolveTimeout))
			resp, err := c.GetResponse(ctx)
			if err != nil {
				log.Error("request failed", "err", err)
				return err
			}
			log.Info("server response", "quote", resp)
			fmt.Println(resp)
			return nil
		},
	}
	f := root.Flags()
	f.StringVar(&cfg.ServerAddr, "server", cfg.ServerAddr, "server address")
	f.DurationVar(&cfg.SolveTimeout, "solve-timeout", cfg.SolveTimeout, "give up solving after this long, 0 for never")
	f.DurationVar(&timeout, "timeout", 0, "overall deadline for the exchange, 0 for none")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")

	if err := root.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
