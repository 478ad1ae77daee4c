package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newApp() *cli.Command {
	closeLog := func() error { return nil }
	return &cli.Command{
		Name:                  "leaftree",
		Usage:                 "Find the smallest leaf in a tree outline",
		EnableShellCompletion: true,
		Flags:                 getLogFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			closer, err := setupLogging(cmd.String("log-level"), cmd.String("log-file"))
			if err != nil {
				return ctx, err
			}
			closeLog = closer
			return ctx, nil
		},
		After: func(ctx context.Context, cmd *cli.Command) error {
			return closeLog()
		},
		Commands: getCommands(),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
