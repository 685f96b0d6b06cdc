// Command fitweeks-export writes the persisted weekly logs and diet plans as
// CSV files.
package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"fitweeks/internal/config"
	"fitweeks/internal/store"
)

func main() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if isatty.IsTerminal(os.Stdout.Fd()) {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, opts)))
	} else {
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, opts)))
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("bad configuration", "error", err)
		os.Exit(1)
	}

	outDir := "."
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		slog.Error("create output dir", "dir", outDir, "error", err)
		os.Exit(1)
	}

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	logsPath := filepath.Join(outDir, "weekly_logs.csv")
	if err := exportTo(logsPath, db.ExportLogsCSV); err != nil {
		slog.Error("export logs", "error", err)
		os.Exit(1)
	}
	dietsPath := filepath.Join(outDir, "diet_plans.csv")
	if err := exportTo(dietsPath, db.ExportDietsCSV); err != nil {
		slog.Error("export diets", "error", err)
		os.Exit(1)
	}
	statesPath := filepath.Join(outDir, "persona_states.csv")
	if err := exportTo(statesPath, db.ExportStatesCSV); err != nil {
		slog.Error("export states", "error", err)
		os.Exit(1)
	}

	slog.Info("export complete", "logs", logsPath, "diets", dietsPath, "states", statesPath)
}

func exportTo(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
