// Command panda manages the roster document from the command line. It shares
// the document store and use cases with the HTTP server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/panda-project/panda/internal/app"
	"github.com/panda-project/panda/internal/cli"
	"github.com/panda-project/panda/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return cli.ExitFailure
	}

	// stdout carries command output only.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	})))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return cli.ExitFailure
	}

	code := cli.New(a, os.Stdout, os.Stderr).Run(ctx, os.Args[1:])

	if err := a.Close(context.Background()); err != nil {
		slog.Error("failed to close document store", "error", err)
		if code == cli.ExitOK {
			code = cli.ExitFailure
		}
	}
	return code
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
