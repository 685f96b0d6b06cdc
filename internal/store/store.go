// Package store provides SQLite-based persistence for persona baselines, the
// workout catalog, and per-week diet/log/state triples. The simulation core
// never touches it; the orchestrator and seeder own all reads and writes.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"fitweeks/internal/diet"
	"fitweeks/internal/persona"
	"fitweeks/internal/sim"
	"fitweeks/internal/workout"
)

// DB wraps a SQLite connection.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS personas (
		pid TEXT PRIMARY KEY,
		baseline_json TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS weeks (
		pid TEXT NOT NULL,
		week_id TEXT NOT NULL,
		diet_json TEXT NOT NULL,
		log_json TEXT NOT NULL,
		persona_json TEXT NOT NULL,
		created_at TEXT NOT NULL,
		PRIMARY KEY (pid, week_id)
	);

	CREATE TABLE IF NOT EXISTS workouts (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		body_region TEXT NOT NULL,
		location TEXT NOT NULL,
		level TEXT NOT NULL,
		exercises_json TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at TEXT NOT NULL,
		finished_at TEXT,
		start_week TEXT NOT NULL,
		total_weeks INTEGER NOT NULL,
		personas INTEGER NOT NULL,
		status TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_weeks_week ON weeks(week_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// SavePersonas upserts a batch of persona baselines.
func (db *DB) SavePersonas(list []persona.Persona) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT OR REPLACE INTO personas
		(pid, baseline_json, updated_at) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	at := nowStamp()
	for _, p := range list {
		body, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal persona %s: %w", p.PID, err)
		}
		if _, err := stmt.Exec(p.PID, string(body), at); err != nil {
			return fmt.Errorf("insert persona %s: %w", p.PID, err)
		}
	}

	return tx.Commit()
}

// LoadPersonas returns all persona baselines in pid order.
func (db *DB) LoadPersonas() ([]persona.Persona, error) {
	var rows []struct {
		PID  string `db:"pid"`
		Body string `db:"baseline_json"`
	}
	if err := db.conn.Select(&rows, "SELECT pid, baseline_json FROM personas ORDER BY pid"); err != nil {
		return nil, err
	}
	out := make([]persona.Persona, 0, len(rows))
	for _, r := range rows {
		var p persona.Persona
		if err := json.Unmarshal([]byte(r.Body), &p); err != nil {
			return nil, fmt.Errorf("unmarshal persona %s: %w", r.PID, err)
		}
		p.PID = r.PID
		out = append(out, p)
	}
	return out, nil
}

// SaveWorkouts upserts the training-program catalog.
func (db *DB) SaveWorkouts(list []workout.Program) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT OR REPLACE INTO workouts
		(id, title, body_region, location, level, exercises_json, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	at := nowStamp()
	for _, p := range list {
		ex, err := json.Marshal(p.Exercises)
		if err != nil {
			return fmt.Errorf("marshal exercises %s: %w", p.ID, err)
		}
		if _, err := stmt.Exec(p.ID, p.Title, p.BodyRegion, p.Location, p.Level, string(ex), at); err != nil {
			return fmt.Errorf("insert workout %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

// LoadWorkouts returns the stored program catalog in id order.
func (db *DB) LoadWorkouts() ([]workout.Program, error) {
	var rows []struct {
		ID        string `db:"id"`
		Title     string `db:"title"`
		Region    string `db:"body_region"`
		Location  string `db:"location"`
		Level     string `db:"level"`
		Exercises string `db:"exercises_json"`
	}
	err := db.conn.Select(&rows,
		"SELECT id, title, body_region, location, level, exercises_json FROM workouts ORDER BY id")
	if err != nil {
		return nil, err
	}
	out := make([]workout.Program, 0, len(rows))
	for _, r := range rows {
		var ex []string
		if err := json.Unmarshal([]byte(r.Exercises), &ex); err != nil {
			return nil, fmt.Errorf("unmarshal exercises %s: %w", r.ID, err)
		}
		out = append(out, workout.Program{
			ID: r.ID, Title: r.Title, BodyRegion: r.Region,
			Location: r.Location, Level: r.Level, Exercises: ex,
		})
	}
	return out, nil
}

// WeekRecord is one persisted persona-week triple.
type WeekRecord struct {
	PID     string
	WeekID  string
	Diet    diet.Plan
	DietRaw map[string]any
	Log     sim.WeeklyLog
	State   persona.Persona
}

// SaveWeek writes one persona-week triple. The diet is stored in the flat
// historical record shape so exports and externals read the same keys.
func (db *DB) SaveWeek(rec WeekRecord) error {
	dietJSON, err := json.Marshal(rec.Diet.Record())
	if err != nil {
		return fmt.Errorf("marshal diet %s/%s: %w", rec.PID, rec.WeekID, err)
	}
	logJSON, err := json.Marshal(rec.Log)
	if err != nil {
		return fmt.Errorf("marshal log %s/%s: %w", rec.PID, rec.WeekID, err)
	}
	stateJSON, err := json.Marshal(rec.State)
	if err != nil {
		return fmt.Errorf("marshal state %s/%s: %w", rec.PID, rec.WeekID, err)
	}
	_, err = db.conn.Exec(`INSERT OR REPLACE INTO weeks
		(pid, week_id, diet_json, log_json, persona_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.PID, rec.WeekID, string(dietJSON), string(logJSON), string(stateJSON), nowStamp())
	return err
}

// HasWeek reports whether a persona-week triple already exists.
func (db *DB) HasWeek(pid, weekID string) (bool, error) {
	var n int
	err := db.conn.Get(&n, "SELECT COUNT(*) FROM weeks WHERE pid = ? AND week_id = ?", pid, weekID)
	return n > 0, err
}

// LoadWeek reads one persona-week triple. found is false when absent.
func (db *DB) LoadWeek(pid, weekID string) (WeekRecord, bool, error) {
	var row struct {
		Diet  string `db:"diet_json"`
		Log   string `db:"log_json"`
		State string `db:"persona_json"`
	}
	err := db.conn.Get(&row,
		"SELECT diet_json, log_json, persona_json FROM weeks WHERE pid = ? AND week_id = ?",
		pid, weekID)
	if errors.Is(err, sql.ErrNoRows) {
		return WeekRecord{}, false, nil
	}
	if err != nil {
		return WeekRecord{}, false, err
	}

	rec := WeekRecord{PID: pid, WeekID: weekID}
	var raw map[string]any
	if err := json.Unmarshal([]byte(row.Diet), &raw); err != nil {
		return WeekRecord{}, false, fmt.Errorf("unmarshal diet %s/%s: %w", pid, weekID, err)
	}
	rec.DietRaw = raw
	rec.Diet = diet.Normalize(raw)
	if err := json.Unmarshal([]byte(row.Log), &rec.Log); err != nil {
		return WeekRecord{}, false, fmt.Errorf("unmarshal log %s/%s: %w", pid, weekID, err)
	}
	if err := json.Unmarshal([]byte(row.State), &rec.State); err != nil {
		return WeekRecord{}, false, fmt.Errorf("unmarshal state %s/%s: %w", pid, weekID, err)
	}
	return rec, true, nil
}

// WeekLogs returns every persona's log for one week, in pid order.
func (db *DB) WeekLogs(weekID string) (map[string]sim.WeeklyLog, error) {
	var rows []struct {
		PID string `db:"pid"`
		Log string `db:"log_json"`
	}
	err := db.conn.Select(&rows,
		"SELECT pid, log_json FROM weeks WHERE week_id = ? ORDER BY pid", weekID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]sim.WeeklyLog, len(rows))
	for _, r := range rows {
		var l sim.WeeklyLog
		if err := json.Unmarshal([]byte(r.Log), &l); err != nil {
			return nil, fmt.Errorf("unmarshal log %s/%s: %w", r.PID, weekID, err)
		}
		out[r.PID] = l
	}
	return out, nil
}

// CountWeeks returns the number of persisted persona-week triples.
func (db *DB) CountWeeks() (int, error) {
	var n int
	err := db.conn.Get(&n, "SELECT COUNT(*) FROM weeks")
	return n, err
}

// Run records one orchestrator invocation.
type Run struct {
	ID         string `db:"id"`
	StartedAt  string `db:"started_at"`
	FinishedAt string `db:"finished_at"`
	StartWeek  string `db:"start_week"`
	TotalWeeks int    `db:"total_weeks"`
	Personas   int    `db:"personas"`
	Status     string `db:"status"`
}

// StartRun records a new run in the "running" state.
func (db *DB) StartRun(id, startWeek string, totalWeeks, personas int) error {
	_, err := db.conn.Exec(`INSERT INTO runs
		(id, started_at, finished_at, start_week, total_weeks, personas, status)
		VALUES (?, ?, '', ?, ?, ?, 'running')`,
		id, nowStamp(), startWeek, totalWeeks, personas)
	return err
}

// FinishRun marks a run complete or failed.
func (db *DB) FinishRun(id, status string) error {
	_, err := db.conn.Exec(
		"UPDATE runs SET finished_at = ?, status = ? WHERE id = ?",
		nowStamp(), status, id)
	return err
}

// LastRun returns the most recently started run. found is false on an empty
// table.
func (db *DB) LastRun() (Run, bool, error) {
	var r Run
	err := db.conn.Get(&r, "SELECT * FROM runs ORDER BY started_at DESC, id DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, false, nil
	}
	if err != nil {
		return Run{}, false, err
	}
	return r, true, nil
}
