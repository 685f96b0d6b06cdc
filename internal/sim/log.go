// Package sim produces one week's simulated body-composition outcome for a
// persona: a deterministic fallback simulator, clamp/consistency rules shared
// with provider-drafted logs, and the narrative feedback synthesizer.
package sim

import (
	"math"

	"fitweeks/internal/persona"
)

// Physiological clamps for one week's change.
const (
	MaxWeightDelta = 1.2 // kg
	MaxMuscleDelta = 0.4 // kg
	MaxFatDelta    = 1.2 // percentage points
)

// WeeklyLog is one week's outcome record. The JSON keys are the historical
// storage schema and must not change.
type WeeklyLog struct {
	Date     string `json:"Date"`
	Time     string `json:"Time"`
	Feedback string `json:"free_text_feedback"`
	Notes    string `json:"notes"`

	DailyAvgKcal float64 `json:"daily_avg_kcal"`

	PreWeight  float64 `json:"Pre_weight_kg"`
	PreMuscle  float64 `json:"Pre_muscle_kg"`
	PreFat     float64 `json:"Pre_fat_pct"`
	PostWeight float64 `json:"Post_weight_kg"`
	PostMuscle float64 `json:"Post_muscle_kg"`
	PostFat    float64 `json:"Post_fat_pct"`

	DeltaWeight float64 `json:"delta_weight_kg"`
	DeltaMuscle float64 `json:"delta_muscle_kg"`
	DeltaFat    float64 `json:"delta_fat_pct"`

	SleepAvg float64 `json:"sleep_avg_hours"`
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func clampF(v, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, v)) }

// reconcile applies the physiological clamps to the three deltas and
// re-derives every post value from its pre value, so that
// delta == round(post - pre, 2) holds exactly afterwards.
func (l *WeeklyLog) reconcile() {
	l.DeltaWeight = clampF(l.DeltaWeight, -MaxWeightDelta, MaxWeightDelta)
	l.DeltaMuscle = clampF(l.DeltaMuscle, -MaxMuscleDelta, MaxMuscleDelta)
	l.DeltaFat = clampF(l.DeltaFat, -MaxFatDelta, MaxFatDelta)

	l.PreWeight = round2(l.PreWeight)
	l.PreMuscle = round2(l.PreMuscle)
	l.PreFat = round2(l.PreFat)

	l.PostWeight = round2(l.PreWeight + l.DeltaWeight)
	l.PostMuscle = round2(l.PreMuscle + l.DeltaMuscle)
	l.PostFat = round2(l.PreFat + l.DeltaFat)

	l.DeltaWeight = round2(l.PostWeight - l.PreWeight)
	l.DeltaMuscle = round2(l.PostMuscle - l.PreMuscle)
	l.DeltaFat = round2(l.PostFat - l.PreFat)
}

// ApplyTo folds the log's outcome back into a persona snapshot for the next
// week's simulation.
func (l WeeklyLog) ApplyTo(p persona.Persona) persona.Persona {
	return p.Advanced(l.PostWeight, l.PostMuscle, l.PostFat, l.SleepAvg, l.Notes)
}

// Baseline fills the population-typical defaults for missing pre-state.
func Baseline(p persona.Persona) (weight, muscle, fat, sleep float64) {
	weight = p.Weight
	if weight <= 0 {
		weight = 75.0
	}
	muscle = p.MuscleMass
	if muscle <= 0 {
		muscle = math.Max(0.35*weight, 22.0)
	}
	fat = p.FatPercent
	if fat <= 0 {
		fat = 22.0
	}
	sleep = p.SleepHours
	if sleep <= 0 {
		sleep = 7.0
	}
	return weight, muscle, fat, sleep
}
