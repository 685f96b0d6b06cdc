package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"fitweeks/internal/orchestrator"
	"fitweeks/internal/persona"
	"fitweeks/internal/sim"
	"fitweeks/internal/store"
	"fitweeks/internal/workout"
)

func testServer(t *testing.T) (*Server, *store.DB) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &Server{Orch: orchestrator.New(db, nil, 1), DB: db, Port: 0}, db
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestStatusEndpoint(t *testing.T) {
	s, _ := testServer(t)
	rec := get(t, s, "/api/v1/status")
	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["state"] != "idle" {
		t.Fatalf("state = %v", body["state"])
	}
}

func TestPersonasEndpoint(t *testing.T) {
	s, db := testServer(t)
	if err := db.SavePersonas([]persona.Persona{{PID: "P01", PrimaryGoal: "fat loss"}}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	rec := get(t, s, "/api/v1/personas")
	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d", rec.Code)
	}
	var personas []persona.Persona
	if err := json.Unmarshal(rec.Body.Bytes(), &personas); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(personas) != 1 || personas[0].PID != "P01" {
		t.Fatalf("personas = %+v", personas)
	}
}

func TestWeekLogsEndpoint(t *testing.T) {
	s, db := testServer(t)
	err := db.SaveWeek(store.WeekRecord{
		PID: "P01", WeekID: "2025-W46",
		Log:   sim.WeeklyLog{Date: "2025-11-13", Feedback: "ok", Notes: "n", DailyAvgKcal: 2100},
		State: persona.Persona{PID: "P01"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	rec := get(t, s, "/api/v1/weeks/2025-W46/logs")
	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d", rec.Code)
	}
	var logs map[string]sim.WeeklyLog
	if err := json.Unmarshal(rec.Body.Bytes(), &logs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if logs["P01"].DailyAvgKcal != 2100 {
		t.Fatalf("logs = %+v", logs)
	}

	if rec := get(t, s, "/api/v1/weeks/garbage/logs"); rec.Code != http.StatusBadRequest {
		t.Fatalf("garbage week id: code = %d", rec.Code)
	}
}

func TestWorkoutsEndpoint(t *testing.T) {
	s, db := testServer(t)

	// Unseeded store falls back to the built-in catalog.
	rec := get(t, s, "/api/v1/workouts")
	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "W21") {
		t.Fatal("fallback catalog missing W21")
	}

	// A seeded store is served as stored, not from the built-in catalog.
	seeded := []workout.Program{{
		ID: "W90", Title: "Mobility — Home — Beginner",
		BodyRegion: "Full Body", Location: "Home", Level: "Beginner",
		Exercises: []string{"Cat-Cow", "Hip Circles"},
	}}
	if err := db.SaveWorkouts(seeded); err != nil {
		t.Fatalf("seed: %v", err)
	}
	rec = get(t, s, "/api/v1/workouts")
	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d", rec.Code)
	}
	var programs []workout.Program
	if err := json.Unmarshal(rec.Body.Bytes(), &programs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(programs) != 1 || programs[0].ID != "W90" || len(programs[0].Exercises) != 2 {
		t.Fatalf("programs = %+v", programs)
	}
}

func TestExportEndpoint(t *testing.T) {
	s, db := testServer(t)
	err := db.SaveWeek(store.WeekRecord{
		PID: "P01", WeekID: "2025-W46",
		Log:   sim.WeeklyLog{Date: "2025-11-13", Feedback: "ok", Notes: "n"},
		State: persona.Persona{PID: "P01"},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	rec := get(t, s, "/api/v1/export/logs.csv")
	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "pid,week_id,Date") {
		t.Fatalf("csv header = %q", rec.Body.String()[:40])
	}
}

func TestExportRateLimited(t *testing.T) {
	s, _ := testServer(t)
	router := s.Router()
	var lastCode int
	for i := 0; i < 31; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/export/logs.csv", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		lastCode = rec.Code
	}
	if lastCode != http.StatusTooManyRequests {
		t.Fatalf("31st export returned %d", lastCode)
	}
}
