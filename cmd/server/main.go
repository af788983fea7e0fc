package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	specs "github.com/panda-project/panda/api"
	"github.com/panda-project/panda/internal/api"
	"github.com/panda-project/panda/internal/app"
	"github.com/panda-project/panda/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		slog.Error("failed to open document store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}

	if cfg.IntegrityInterval() > 0 {
		go a.Integrity.Start(ctx)
	}

	router := api.NewRouter(api.RouterDeps{
		Init:          a.Init,
		Employees:     a.Employees,
		EmployeeQuery: a.EmployeeQuery,
		Teams:         a.Teams,
		TeamQuery:     a.TeamQuery,
		ProjectQuery:  a.ProjectQuery,
		Reset:         a.Reset,
		StorePinger:   a.Pinger(),
		StoreDriver:   cfg.StoreDriver,
		Version:       cfg.Version,
		OpenAPISpec:   specs.OpenAPISpec,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting panda server", "port", cfg.Port, "version", cfg.Version, "driver", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		exitCode = 1
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		exitCode = 1
	}
	if err := a.Close(shutdownCtx); err != nil {
		slog.Error("failed to close document store", "error", err)
		exitCode = 1
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	slog.Info("server stopped gracefully")
}

func setupLogger(level string) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	slog.SetDefault(slog.New(handler))
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
		return slog.LevelInfo
	}
}
