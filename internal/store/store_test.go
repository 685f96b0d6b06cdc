package store

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"

	"fitweeks/internal/diet"
	"fitweeks/internal/persona"
	"fitweeks/internal/sim"
	"fitweeks/internal/workout"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testLog() sim.WeeklyLog {
	return sim.WeeklyLog{
		Date: "2025-11-13", Time: "12:30:00",
		Feedback: "Solid week.", Notes: "Keep protein high.",
		DailyAvgKcal: 2350,
		PreWeight:    80, PreMuscle: 34, PreFat: 21,
		PostWeight: 79.5, PostMuscle: 34.1, PostFat: 20.6,
		DeltaWeight: -0.5, DeltaMuscle: 0.1, DeltaFat: -0.4,
		SleepAvg: 7.2,
	}
}

func TestPersonaRoundTrip(t *testing.T) {
	db := openTestDB(t)
	in := []persona.Persona{
		{PID: "P01", PrimaryGoal: "fat loss", Weight: 82, Adherence: 0.7, BudgetSARPerDay: 60},
		{PID: "P02", PrimaryGoal: "muscle gain", Weight: 71, Adherence: 0.85},
	}
	if err := db.SavePersonas(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := db.LoadPersonas()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[0].PID != "P01" || out[1].PID != "P02" {
		t.Fatalf("loaded %+v", out)
	}
	if out[0].Weight != 82 || out[0].BudgetSARPerDay != 60 {
		t.Fatalf("P01 fields lost: %+v", out[0])
	}

	// Upsert replaces.
	in[0].Weight = 81
	if err := db.SavePersonas(in[:1]); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	out, _ = db.LoadPersonas()
	if len(out) != 2 || out[0].Weight != 81 {
		t.Fatalf("upsert failed: %+v", out)
	}
}

func TestWeekRoundTrip(t *testing.T) {
	db := openTestDB(t)
	plan := diet.ComposePlan("P01", "2025-W46", diet.PlanContext{Goal: "fat loss"})
	state := persona.Persona{PID: "P01", Weight: 79.5, MuscleMass: 34.1}
	rec := WeekRecord{PID: "P01", WeekID: "2025-W46", Diet: plan, Log: testLog(), State: state}

	has, err := db.HasWeek("P01", "2025-W46")
	if err != nil || has {
		t.Fatalf("HasWeek before save = %v, %v", has, err)
	}
	if err := db.SaveWeek(rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	has, err = db.HasWeek("P01", "2025-W46")
	if err != nil || !has {
		t.Fatalf("HasWeek after save = %v, %v", has, err)
	}

	got, found, err := db.LoadWeek("P01", "2025-W46")
	if err != nil || !found {
		t.Fatalf("load: found=%v err=%v", found, err)
	}
	if got.Diet != plan {
		t.Fatalf("diet did not survive the round trip:\n%+v\n%+v", plan, got.Diet)
	}
	if got.Log != rec.Log {
		t.Fatalf("log did not survive: %+v", got.Log)
	}
	if got.State.Weight != 79.5 {
		t.Fatalf("state did not survive: %+v", got.State)
	}

	if _, found, _ := db.LoadWeek("P01", "2025-W47"); found {
		t.Fatal("absent week reported found")
	}
}

func TestWeekLogsAndCount(t *testing.T) {
	db := openTestDB(t)
	for _, pid := range []string{"P01", "P02"} {
		plan := diet.ComposePlan(pid, "2025-W46", diet.PlanContext{})
		l := testLog()
		if err := db.SaveWeek(WeekRecord{PID: pid, WeekID: "2025-W46", Diet: plan, Log: l, State: persona.Persona{PID: pid}}); err != nil {
			t.Fatalf("save %s: %v", pid, err)
		}
	}
	logs, err := db.WeekLogs("2025-W46")
	if err != nil {
		t.Fatalf("week logs: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("got %d logs", len(logs))
	}
	if logs["P01"].DailyAvgKcal != 2350 {
		t.Fatalf("P01 log = %+v", logs["P01"])
	}
	n, err := db.CountWeeks()
	if err != nil || n != 2 {
		t.Fatalf("count = %d, %v", n, err)
	}
}

func TestRunLifecycle(t *testing.T) {
	db := openTestDB(t)
	if _, found, err := db.LastRun(); err != nil || found {
		t.Fatalf("empty table: found=%v err=%v", found, err)
	}
	if err := db.StartRun("run-1", "2025-W46", 54, 12); err != nil {
		t.Fatalf("start: %v", err)
	}
	r, found, err := db.LastRun()
	if err != nil || !found {
		t.Fatalf("last run: found=%v err=%v", found, err)
	}
	if r.Status != "running" || r.TotalWeeks != 54 || r.Personas != 12 {
		t.Fatalf("run = %+v", r)
	}
	if err := db.FinishRun("run-1", "complete"); err != nil {
		t.Fatalf("finish: %v", err)
	}
	r, _, _ = db.LastRun()
	if r.Status != "complete" || r.FinishedAt == "" {
		t.Fatalf("finished run = %+v", r)
	}
}

func TestExportLogsCSV(t *testing.T) {
	db := openTestDB(t)
	plan := diet.ComposePlan("P01", "2025-W46", diet.PlanContext{})
	if err := db.SaveWeek(WeekRecord{PID: "P01", WeekID: "2025-W46", Diet: plan, Log: testLog(), State: persona.Persona{PID: "P01"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	var buf bytes.Buffer
	if err := db.ExportLogsCSV(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0][0] != "pid" || rows[0][2] != "Date" {
		t.Fatalf("header = %v", rows[0])
	}
	if rows[1][0] != "P01" || rows[1][1] != "2025-W46" {
		t.Fatalf("row = %v", rows[1])
	}
	if rows[1][6] != "2350" {
		t.Fatalf("daily kcal cell = %q", rows[1][6])
	}
}

func TestExportDietsCSV(t *testing.T) {
	db := openTestDB(t)
	plan := diet.ComposePlan("P01", "2025-W46", diet.PlanContext{})
	if err := db.SaveWeek(WeekRecord{PID: "P01", WeekID: "2025-W46", Diet: plan, Log: testLog(), State: persona.Persona{PID: "P01"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	var buf bytes.Buffer
	if err := db.ExportDietsCSV(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	header := strings.Join(rows[0], ",")
	for _, col := range []string{"1st_meal_kcal_target_kcal", "Total_sodium_mg", "Note"} {
		if !strings.Contains(header, col) {
			t.Fatalf("header missing %s: %v", col, rows[0])
		}
	}
	if rows[1][0] != "P01" {
		t.Fatalf("row = %v", rows[1])
	}
}

func TestExportStatesCSV(t *testing.T) {
	db := openTestDB(t)
	plan := diet.ComposePlan("P01", "2025-W46", diet.PlanContext{})
	state := persona.Persona{PID: "P01", Weight: 79.5, MuscleMass: 34.1, FatPercent: 20.6, SleepHours: 7.2}
	if err := db.SaveWeek(WeekRecord{PID: "P01", WeekID: "2025-W46", Diet: plan, Log: testLog(), State: state}); err != nil {
		t.Fatalf("save: %v", err)
	}
	var buf bytes.Buffer
	if err := db.ExportStatesCSV(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows", len(rows))
	}
	if rows[0][2] != "Weight_kg" || rows[0][5] != "Sleep_hours" {
		t.Fatalf("header = %v", rows[0])
	}
	if rows[1][0] != "P01" || rows[1][2] != "79.5" {
		t.Fatalf("row = %v", rows[1])
	}
}

func TestWorkoutRoundTrip(t *testing.T) {
	db := openTestDB(t)
	if err := db.SaveWorkouts(workout.Catalog); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := db.LoadWorkouts()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != len(workout.Catalog) {
		t.Fatalf("got %d programs, want %d", len(got), len(workout.Catalog))
	}
	if got[0].ID != "W01" {
		t.Fatalf("first program = %+v", got[0])
	}
	for i, p := range got {
		want := workout.Catalog[i]
		if p.ID != want.ID || p.Title != want.Title || len(p.Exercises) != len(want.Exercises) {
			t.Fatalf("program %d = %+v, want %+v", i, p, want)
		}
	}

	// Re-seeding is an upsert, not an append.
	if err := db.SaveWorkouts(workout.Catalog); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if again, _ := db.LoadWorkouts(); len(again) != len(workout.Catalog) {
		t.Fatalf("reseed grew the table to %d rows", len(again))
	}
}
