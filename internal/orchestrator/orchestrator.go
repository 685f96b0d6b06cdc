// Package orchestrator drives multi-week simulation runs: it walks the week
// sequence, creates each persona-week diet/log/state triple exactly once,
// carries persona state forward, and persists everything through the store.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"fitweeks/internal/diet"
	"fitweeks/internal/llm"
	"fitweeks/internal/persona"
	"fitweeks/internal/sim"
	"fitweeks/internal/store"
	"fitweeks/internal/unique"
	"fitweeks/internal/weekid"
	"fitweeks/internal/workout"
)

// Orchestrator owns one run at a time.
type Orchestrator struct {
	DB          *store.DB
	LLM         *llm.Client // nil disables provider drafts
	Parallelism int
	Now         func() time.Time // defaults to time.Now

	dietPrints *unique.Tracker
	logPrints  *unique.Tracker

	mu     sync.Mutex
	status Status
}

// Status is a snapshot of run progress for the HTTP API.
type Status struct {
	State       string `json:"state"` // idle, running, complete, failed
	RunID       string `json:"run_id,omitempty"`
	CurrentWeek string `json:"current_week,omitempty"`
	WeeksDone   int    `json:"weeks_done"`
	WeeksTotal  int    `json:"weeks_total"`
	Personas    int    `json:"personas"`
	Created     int    `json:"created"`
	Reused      int    `json:"reused"`
	Failed      int    `json:"failed"`
}

func New(db *store.DB, client *llm.Client, parallelism int) *Orchestrator {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Orchestrator{
		DB:          db,
		LLM:         client,
		Parallelism: parallelism,
		Now:         time.Now,
		dietPrints:  unique.NewTracker(),
		logPrints:   unique.NewTracker(),
		status:      Status{State: "idle"},
	}
}

// Status returns the current run snapshot.
func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.status
}

func (o *Orchestrator) update(fn func(*Status)) {
	o.mu.Lock()
	fn(&o.status)
	o.mu.Unlock()
}

// personaTrack is one persona's mutable run state, owned by exactly one
// goroutine per week batch.
type personaTrack struct {
	current  persona.Persona
	lastPlan *diet.Plan
	drift    sim.Drift
}

// Run executes a full multi-week simulation. Existing persona-week triples
// are reused as-is; per-persona failures are logged and skipped, never fatal.
func (o *Orchestrator) Run(ctx context.Context, startWeek string, totalWeeks int, includeStart bool) error {
	personas, err := o.DB.LoadPersonas()
	if err != nil {
		return fmt.Errorf("load personas: %w", err)
	}
	if len(personas) == 0 {
		return fmt.Errorf("no personas seeded; run the seeder first")
	}

	weeks, err := weekid.Sequence(startWeek, totalWeeks, includeStart)
	if err != nil {
		return fmt.Errorf("week sequence: %w", err)
	}

	runID := uuid.NewString()
	if err := o.DB.StartRun(runID, startWeek, totalWeeks, len(personas)); err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	o.dietPrints.Reset()
	o.logPrints.Reset()
	o.update(func(s *Status) {
		*s = Status{State: "running", RunID: runID, WeeksTotal: len(weeks), Personas: len(personas)}
	})

	tracks := make([]personaTrack, len(personas))
	for i, p := range personas {
		tracks[i] = personaTrack{current: p, drift: sim.NewDrift(p.PID)}
	}

	slog.Info("run starting",
		"run_id", runID, "weeks", len(weeks), "personas", len(personas),
		"provider", o.LLM.Enabled())

	for wi, wk := range weeks {
		if err := ctx.Err(); err != nil {
			o.finish(runID, "failed")
			return err
		}
		o.update(func(s *Status) { s.CurrentWeek = wk })

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(o.Parallelism)
		for i := range tracks {
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := o.personaWeek(&tracks[i], wi, wk); err != nil {
					slog.Error("persona week failed",
						"pid", tracks[i].current.PID, "week", wk, "error", err)
					o.update(func(s *Status) { s.Failed++ })
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			o.finish(runID, "failed")
			return err
		}
		o.update(func(s *Status) { s.WeeksDone = wi + 1 })
		slog.Info("week complete", "week", wk, "done", wi+1, "total", len(weeks))
	}

	o.finish(runID, "complete")
	slog.Info("run complete", "run_id", runID,
		"distinct_diets", o.dietPrints.Len(), "distinct_logs", o.logPrints.Len())
	return nil
}

func (o *Orchestrator) finish(runID, status string) {
	if err := o.DB.FinishRun(runID, status); err != nil {
		slog.Error("record run finish", "run_id", runID, "error", err)
	}
	o.update(func(s *Status) { s.State = status })
}

// personaWeek creates or reuses one persona-week triple and advances the
// persona's track.
func (o *Orchestrator) personaWeek(tr *personaTrack, weekIdx int, wk string) error {
	pid := tr.current.PID

	if rec, found, err := o.DB.LoadWeek(pid, wk); err != nil {
		return fmt.Errorf("load week: %w", err)
	} else if found {
		tr.current = rec.State
		tr.current.PID = pid
		tr.lastPlan = &rec.Diet
		o.update(func(s *Status) { s.Reused++ })
		return nil
	}

	// Smooth habit drift for this week's generation only. Adherence drift
	// never accumulates: advancement starts from the undrifted state. Sleep
	// is a state variable like weight, so the week's realized average does
	// carry into the next baseline through the log.
	drifted := tr.drift.Apply(tr.current, weekIdx)

	plan := o.buildDiet(drifted, wk, tr.lastPlan)
	workoutIDs := workout.ProgramFor(drifted.DaysPerWeek)
	log := o.buildLog(drifted, plan, workoutIDs, wk)

	next := log.ApplyTo(tr.current)
	rec := store.WeekRecord{PID: pid, WeekID: wk, Diet: plan, Log: log, State: next}
	if err := o.DB.SaveWeek(rec); err != nil {
		return fmt.Errorf("save week: %w", err)
	}

	tr.current = next
	tr.lastPlan = &plan
	o.update(func(s *Status) { s.Created++ })
	return nil
}

// buildDiet produces this week's plan: provider draft if available, else the
// deterministic composer, always normalized, diversified, and checked against
// the run's diet fingerprints with bounded nonce retries.
func (o *Orchestrator) buildDiet(per persona.Persona, wk string, lastPlan *diet.Plan) diet.Plan {
	var base diet.Plan
	if raw, ok := o.LLM.GenerateDietDraft(per, wk); ok {
		base = diet.Normalize(raw)
	} else {
		base = diet.ComposePlan(per.PID, wk, diet.PlanContext{
			Goal:         per.PrimaryGoal,
			FitnessLevel: per.FitnessLevel,
			DaysPerWeek:  per.DaysPerWeek,
			BudgetSAR:    per.BudgetSARPerDay,
		})
	}

	var plan diet.Plan
	for nonce := 0; nonce <= unique.MaxRetries; nonce++ {
		plan = diet.Diversify(base, per.PID, wk, per, lastPlan, nonce)
		if o.dietPrints.Add(unique.DietFingerprint(plan)) {
			return plan
		}
	}
	// Duplicate after all retries; accept rather than fail.
	slog.Debug("diet fingerprint duplicated after retries", "pid", per.PID, "week", wk)
	return plan
}

// buildLog produces this week's outcome: a validated provider draft when one
// passes the schema check, else the deterministic simulator, with bounded
// nonce retries against the run's narrative fingerprints.
func (o *Orchestrator) buildLog(per persona.Persona, plan diet.Plan, workoutIDs []string, wk string) sim.WeeklyLog {
	now := o.Now()

	if raw, ok := o.LLM.GenerateLogDraft(per, plan, workoutIDs, wk); ok {
		if log, valid := sim.FromDraft(raw, per, now); valid {
			o.logPrints.Add(unique.LogFingerprint(log.Feedback, log.Notes))
			return log
		}
		slog.Warn("log draft failed validation, falling back", "pid", per.PID, "week", wk)
	}

	var log sim.WeeklyLog
	for nonce := 0; nonce <= unique.MaxRetries; nonce++ {
		log = sim.Simulate(per, plan, workoutIDs, wk, nonce, now)
		if o.logPrints.Add(unique.LogFingerprint(log.Feedback, log.Notes)) {
			return log
		}
	}
	slog.Debug("log fingerprint duplicated after retries", "pid", per.PID, "week", wk)
	return log
}
