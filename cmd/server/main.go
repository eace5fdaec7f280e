package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/logging"
	"github.com/nfrund/folio/internal/server"
)

func main() {
	cfg := config.New()
	logging.New() // Initialize the structured logger

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s, err := server.NewFromConfig(ctx, cfg)
	if err != nil {
		slog.Error("Failed to start", "error", err)
		os.Exit(1)
	}

	if err := s.Start(ctx); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
