// Command fitweeks runs the multi-week diet and body-composition simulation
// for all seeded personas, serving run state over HTTP while it works.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"

	"fitweeks/internal/api"
	"fitweeks/internal/config"
	"fitweeks/internal/llm"
	"fitweeks/internal/orchestrator"
	"fitweeks/internal/store"
)

func setupLogging() {
	var handler slog.Handler
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

func main() {
	setupLogging()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("bad configuration", "error", err)
		os.Exit(1)
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		os.MkdirAll(dir, 0755)
	}
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	client := llm.NewClient(cfg.ProviderKey, cfg.ProviderURL, cfg.ProviderModel)
	if client.Enabled() {
		slog.Info("provider drafts enabled")
	} else {
		slog.Info("no provider key, deterministic generation only")
	}

	orch := orchestrator.New(db, client, cfg.Parallelism)

	server := &api.Server{Orch: orch, DB: db, Port: cfg.APIPort}
	server.Start()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := orch.Run(ctx, cfg.StartWeek, cfg.TotalWeeks, cfg.IncludeStart); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}

	slog.Info("run finished, API still serving; interrupt to exit")
	<-ctx.Done()
	slog.Info("shutting down")
}
