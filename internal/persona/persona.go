// Package persona provides the synthetic subject profile driving one
// simulated experiment participant, plus the lenient coercion needed to
// ingest loosely typed roster records.
package persona

import (
	"strings"
)

// Goal buckets the free-text primary goal into the categories the simulation
// conditions on.
type Goal uint8

const (
	GoalMaintain Goal = iota
	GoalFatLoss
	GoalMuscleGain
	GoalRecomp
)

// Persona is one subject's profile. The baseline record is immutable; each
// simulated week derives a fresh snapshot via Advanced.
type Persona struct {
	PID string `json:"ID"`

	AgeBand      string  `json:"Age_band,omitempty"`
	Sex          string  `json:"Sex,omitempty"`
	BMI          float64 `json:"BMI,omitempty"`
	DaysPerWeek  int     `json:"Days_per_week,omitempty"`
	FitnessLevel string  `json:"Current_fitness_level,omitempty"`
	PrimaryGoal  string  `json:"Primary_goal,omitempty"`
	CookingSkill string  `json:"Cooking_skill,omitempty"`
	Barrier      string  `json:"Biggest_barrier,omitempty"`
	Motivation   string  `json:"Motivation_to_workout,omitempty"`
	Injuries     string  `json:"Injury_history,omitempty"`

	// The roster's historical key spelling is kept for storage compatibility.
	BudgetSARPerDay float64 `json:"Budjet_SAR_per_day,omitempty"`

	// Adherence normalized to [0,1]; the raw roster value may be numeric or
	// categorical ("High"/"Moderate"/"Low").
	Adherence float64 `json:"Adherence_propensity,omitempty"`

	Weight     float64 `json:"Weight_kg,omitempty"`
	MuscleMass float64 `json:"Muscle_mass_kg,omitempty"`
	FatPercent float64 `json:"Fat_percent,omitempty"`
	SleepHours float64 `json:"Sleep_hours,omitempty"`

	Notes string `json:"notes,omitempty"`
}

// GoalKind buckets PrimaryGoal.
func (p Persona) GoalKind() Goal {
	return ClassifyGoal(p.PrimaryGoal)
}

// ClassifyGoal matches the substrings the source data actually uses
// ("fat loss", "cutting", "muscle gain", "bulk", "recomp", ...).
func ClassifyGoal(goal string) Goal {
	g := strings.ToLower(goal)
	switch {
	case strings.Contains(g, "fat"), strings.Contains(g, "cut"), strings.Contains(g, "loss"):
		return GoalFatLoss
	case strings.Contains(g, "muscle"), strings.Contains(g, "gain"), strings.Contains(g, "bulk"):
		return GoalMuscleGain
	case strings.Contains(g, "recomp"), strings.Contains(g, "re-com"):
		return GoalRecomp
	default:
		return GoalMaintain
	}
}

// Advanced returns next week's baseline: the post-week body metrics and sleep
// replace the old ones, everything else carries through. The receiver is not
// mutated.
func (p Persona) Advanced(weight, muscle, fatPct, sleep float64, notes string) Persona {
	next := p
	next.Weight = weight
	next.MuscleMass = muscle
	next.FatPercent = fatPct
	next.SleepHours = sleep
	next.Notes = notes
	return next
}
