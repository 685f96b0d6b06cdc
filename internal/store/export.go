package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/dustin/go-humanize"

	"fitweeks/internal/persona"
	"fitweeks/internal/sim"
)

// logColumns is the CSV column order for weekly logs, after pid and week_id.
var logColumns = []string{
	"Date", "Time", "free_text_feedback", "notes", "daily_avg_kcal",
	"Pre_weight_kg", "Pre_muscle_kg", "Pre_fat_pct",
	"Post_weight_kg", "Post_muscle_kg", "Post_fat_pct",
	"delta_weight_kg", "delta_muscle_kg", "delta_fat_pct",
	"sleep_avg_hours",
}

func logRow(l sim.WeeklyLog) []string {
	f := strconv.FormatFloat
	return []string{
		l.Date, l.Time, l.Feedback, l.Notes,
		f(l.DailyAvgKcal, 'f', -1, 64),
		f(l.PreWeight, 'f', -1, 64), f(l.PreMuscle, 'f', -1, 64), f(l.PreFat, 'f', -1, 64),
		f(l.PostWeight, 'f', -1, 64), f(l.PostMuscle, 'f', -1, 64), f(l.PostFat, 'f', -1, 64),
		f(l.DeltaWeight, 'f', -1, 64), f(l.DeltaMuscle, 'f', -1, 64), f(l.DeltaFat, 'f', -1, 64),
		f(l.SleepAvg, 'f', -1, 64),
	}
}

// ExportLogsCSV writes every persisted weekly log as CSV, ordered by week
// then pid.
func (db *DB) ExportLogsCSV(w io.Writer) error {
	var rows []struct {
		PID    string `db:"pid"`
		WeekID string `db:"week_id"`
		Log    string `db:"log_json"`
	}
	err := db.conn.Select(&rows,
		"SELECT pid, week_id, log_json FROM weeks ORDER BY week_id, pid")
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := append([]string{"pid", "week_id"}, logColumns...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		var l sim.WeeklyLog
		if err := json.Unmarshal([]byte(r.Log), &l); err != nil {
			return fmt.Errorf("unmarshal log %s/%s: %w", r.PID, r.WeekID, err)
		}
		if err := cw.Write(append([]string{r.PID, r.WeekID}, logRow(l)...)); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	slog.Info("exported weekly logs", "rows", humanize.Comma(int64(len(rows))))
	return nil
}

// ExportDietsCSV writes every persisted diet plan as CSV in the flat
// historical record shape, ordered by week then pid.
func (db *DB) ExportDietsCSV(w io.Writer) error {
	var rows []struct {
		PID    string `db:"pid"`
		WeekID string `db:"week_id"`
		Diet   string `db:"diet_json"`
	}
	err := db.conn.Select(&rows,
		"SELECT pid, week_id, diet_json FROM weeks ORDER BY week_id, pid")
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := append([]string{"pid", "week_id"}, dietColumns()...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		var rec map[string]any
		if err := json.Unmarshal([]byte(r.Diet), &rec); err != nil {
			return fmt.Errorf("unmarshal diet %s/%s: %w", r.PID, r.WeekID, err)
		}
		row := []string{r.PID, r.WeekID}
		for _, col := range dietColumns() {
			row = append(row, cellString(rec[col]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	slog.Info("exported diet plans", "rows", humanize.Comma(int64(len(rows))))
	return nil
}

// ExportStatesCSV writes each persona's post-week snapshot as CSV, ordered
// by week then pid.
func (db *DB) ExportStatesCSV(w io.Writer) error {
	var rows []struct {
		PID    string `db:"pid"`
		WeekID string `db:"week_id"`
		State  string `db:"persona_json"`
	}
	err := db.conn.Select(&rows,
		"SELECT pid, week_id, persona_json FROM weeks ORDER BY week_id, pid")
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{"pid", "week_id",
		"Weight_kg", "Muscle_mass_kg", "Fat_percent", "Sleep_hours", "notes"}
	if err := cw.Write(header); err != nil {
		return err
	}
	f := strconv.FormatFloat
	for _, r := range rows {
		var p persona.Persona
		if err := json.Unmarshal([]byte(r.State), &p); err != nil {
			return fmt.Errorf("unmarshal state %s/%s: %w", r.PID, r.WeekID, err)
		}
		row := []string{r.PID, r.WeekID,
			f(p.Weight, 'f', -1, 64), f(p.MuscleMass, 'f', -1, 64),
			f(p.FatPercent, 'f', -1, 64), f(p.SleepHours, 'f', -1, 64),
			p.Notes,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	slog.Info("exported persona states", "rows", humanize.Comma(int64(len(rows))))
	return nil
}

// dietColumns is the flat diet record's column order.
func dietColumns() []string {
	cols := []string{"Note"}
	for _, prefix := range []string{"1st_meal", "2nd_meal", "3rd_meal", "4th_meal"} {
		cols = append(cols, prefix)
		for _, suffix := range []string{"kcal_target_kcal", "carbs_g", "fat_g", "protein_g", "fiber_g", "sodium_mg"} {
			cols = append(cols, prefix+"_"+suffix)
		}
	}
	cols = append(cols,
		"Total_kcal_target_kcal", "Total_carbs_g", "Total_fat_g",
		"Total_protein_g", "Total_fiber_g", "Total_sodium_mg")
	return cols
}

func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", x)
	}
}
