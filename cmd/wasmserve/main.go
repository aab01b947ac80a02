package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kush-Singh-26/wasmserve/internal/config"
	"github.com/Kush-Singh-26/wasmserve/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		return err
	}

	fsys, err := server.OpenRoot(cfg.Root)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, fsys, logger)
	if err != nil {
		return err
	}

	if err := srv.ListenAndServe(ctx); err != nil {
		return err
	}

	srv.Metrics().Print()
	return nil
}
