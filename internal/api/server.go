// Package api serves read-only run state over HTTP: run status, persona
// baselines, per-week logs, the workout catalog, and CSV exports.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"fitweeks/internal/orchestrator"
	"fitweeks/internal/store"
	"fitweeks/internal/weekid"
	"fitweeks/internal/workout"
)

// Server serves run state over HTTP. All endpoints are GET and read-only.
type Server struct {
	Orch *orchestrator.Orchestrator
	DB   *store.DB
	Port int
}

// Router builds the HTTP handler with routes and CORS applied.
func (s *Server) Router() http.Handler {
	exportLimiter := newLimiter(30, time.Hour)

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/personas", s.handlePersonas).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/weeks/{week}/logs", s.handleWeekLogs).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/workouts", s.handleWorkouts).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/export/logs.csv",
		exportLimiter.middleware(s.handleExportLogs)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/export/diets.csv",
		exportLimiter.middleware(s.handleExportDiets)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/export/states.csv",
		exportLimiter.middleware(s.handleExportStates)).Methods(http.MethodGet)

	return cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr)
	go func() {
		if err := http.ListenAndServe(addr, s.Router()); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	type statusResp struct {
		orchestrator.Status
		WeeksStored int        `json:"weeks_stored"`
		LastRun     *store.Run `json:"last_run,omitempty"`
	}
	resp := statusResp{Status: s.Orch.Status()}
	if n, err := s.DB.CountWeeks(); err == nil {
		resp.WeeksStored = n
	}
	if run, found, err := s.DB.LastRun(); err == nil && found {
		resp.LastRun = &run
	}
	writeJSON(w, resp)
}

func (s *Server) handlePersonas(w http.ResponseWriter, r *http.Request) {
	personas, err := s.DB.LoadPersonas()
	if err != nil {
		http.Error(w, "load personas", http.StatusInternalServerError)
		slog.Error("load personas", "error", err)
		return
	}
	writeJSON(w, personas)
}

func (s *Server) handleWeekLogs(w http.ResponseWriter, r *http.Request) {
	wk := mux.Vars(r)["week"]
	if _, _, err := weekid.Parse(wk); err != nil {
		http.Error(w, "invalid week id", http.StatusBadRequest)
		return
	}
	logs, err := s.DB.WeekLogs(wk)
	if err != nil {
		http.Error(w, "load logs", http.StatusInternalServerError)
		slog.Error("load week logs", "week", wk, "error", err)
		return
	}
	writeJSON(w, logs)
}

func (s *Server) handleWorkouts(w http.ResponseWriter, r *http.Request) {
	programs, err := s.DB.LoadWorkouts()
	if err != nil {
		http.Error(w, "load workouts", http.StatusInternalServerError)
		slog.Error("load workouts", "error", err)
		return
	}
	if len(programs) == 0 {
		// Unseeded store; serve the built-in catalog.
		programs = workout.Catalog
	}
	writeJSON(w, programs)
}

func (s *Server) handleExportLogs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="weekly_logs.csv"`)
	if err := s.DB.ExportLogsCSV(w); err != nil {
		slog.Error("export logs", "error", err)
	}
}

func (s *Server) handleExportDiets(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="diet_plans.csv"`)
	if err := s.DB.ExportDietsCSV(w); err != nil {
		slog.Error("export diets", "error", err)
	}
}

func (s *Server) handleExportStates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="persona_states.csv"`)
	if err := s.DB.ExportStatesCSV(w); err != nil {
		slog.Error("export states", "error", err)
	}
}
