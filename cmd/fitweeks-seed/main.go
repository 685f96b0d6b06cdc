// Command fitweeks-seed imports a persona roster JSON file and the static
// workout catalog into the database.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"fitweeks/internal/config"
	"fitweeks/internal/persona"
	"fitweeks/internal/store"
	"fitweeks/internal/workout"
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

	rosterPath := cfg.RosterPath
	if len(os.Args) > 1 {
		rosterPath = os.Args[1]
	}

	data, err := os.ReadFile(rosterPath)
	if err != nil {
		slog.Error("read roster", "path", rosterPath, "error", err)
		os.Exit(1)
	}
	personas := persona.ParseRoster(data)
	if len(personas) == 0 {
		slog.Error("roster contains no usable personas", "path", rosterPath)
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

	if err := db.SavePersonas(personas); err != nil {
		slog.Error("save personas", "error", err)
		os.Exit(1)
	}
	if err := db.SaveWorkouts(workout.Catalog); err != nil {
		slog.Error("save workouts", "error", err)
		os.Exit(1)
	}

	slog.Info("roster seeded",
		"personas", humanize.Comma(int64(len(personas))),
		"workout_programs", humanize.Comma(int64(len(workout.Catalog))),
		"db", cfg.DBPath)
}
