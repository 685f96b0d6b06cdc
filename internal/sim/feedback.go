package sim

import (
	"fmt"
	"math/rand"
	"strings"

	"fitweeks/internal/persona"
	"fitweeks/internal/workout"
)

var (
	tones   = []string{"steady", "focused", "up-and-down", "disciplined", "cautious", "optimistic"}
	feels   = []string{"energy", "recovery", "digestion", "motivation", "sleep", "joint comfort"}
	changes = []string{"noticeable", "subtle", "gradual", "promising", "uneven"}

	noteEndings = []string{
		"Track water intake more tightly.",
		"Do a quick 5-min walk after larger meals.",
		"Warm up shoulders and hips before heavy sets.",
		"Prep tomorrow's breakfast the night before.",
	}
)

func choose(r *rand.Rand, pool []string) string {
	return pool[r.Intn(len(pool))]
}

func goalPhrase(g persona.Goal) string {
	switch g {
	case persona.GoalMuscleGain:
		return "push progressive overload and protein timing"
	case persona.GoalFatLoss:
		return "maintain a modest deficit and prioritize steps"
	default:
		return "balance protein and volume while keeping steps high"
	}
}

func barrierHint(barrier string) string {
	b := strings.ToLower(barrier)
	switch {
	case strings.Contains(b, "time"):
		return "Short sessions and supersets helped the schedule."
	case strings.Contains(b, "motivation"):
		return "Music and a simple checklist boosted adherence."
	case strings.Contains(b, "sleep"):
		return "Earlier wind-down improved sleep quality."
	case strings.Contains(b, "injur"):
		return "Kept sets submaximal and respected joint feedback."
	default:
		return "Stuck to basics and removed small frictions."
	}
}

// mkFeedback synthesizes the free-text field. It always names the persona's
// goal and at least one concrete figure (daily kcal and sleep hours).
func mkFeedback(r *rand.Rand, per persona.Persona, goal persona.Goal, dailyKcal float64, days int, workoutIDs []string, sleepAvg float64) string {
	adherStr := "on/off"
	if per.Adherence >= 0.8 {
		adherStr = "very consistent"
	} else if per.Adherence >= 0.6 {
		adherStr = "mostly consistent"
	}

	wkStr := "N/A"
	if len(workoutIDs) > 0 {
		n := len(workoutIDs)
		if n > 3 {
			n = 3
		}
		parts := make([]string, 0, n)
		for _, id := range workoutIDs[:n] {
			if p, ok := workout.Lookup(id); ok {
				parts = append(parts, fmt.Sprintf("%s %s", id, p.Title))
			} else {
				parts = append(parts, id)
			}
		}
		wkStr = strings.Join(parts, ", ")
	}

	tone := choose(r, tones)
	feel := choose(r, feels)
	change := choose(r, changes)

	return strings.Join([]string{
		fmt.Sprintf("This week felt %s. With %s adherence (~%.0f kcal/day), I completed %d sessions (e.g., %s).",
			tone, adherStr, dailyKcal, days, wkStr),
		fmt.Sprintf("%s I noticed %s changes in %s. Given my goal, I tried to %s.",
			barrierHint(per.Barrier), change, feel, goalPhrase(goal)),
		fmt.Sprintf("Average sleep was ~%.1f h; training quality tracked well with meal timing and hydration.",
			sleepAvg),
	}, " ")
}

// mkNotes synthesizes next-week guidance from the persona's goal, budget,
// cooking skill, and realized sleep.
func mkNotes(r *rand.Rand, per persona.Persona, goal persona.Goal, sleepAvg float64) string {
	var n1 string
	switch goal {
	case persona.GoalMuscleGain:
		n1 = "Add a 20-30 g protein snack post-workout and a slow-digesting protein near bedtime."
	case persona.GoalFatLoss:
		n1 = "Trim ~100-150 kcal from late snacks and keep daily steps >8-10k."
	default:
		n1 = "Hold calories steady and emphasize high-quality reps on compounds."
	}

	n2 := "Insert a 10-15 min mobility block on rest days to keep joints happy."

	n3 := "Aim for a consistent lights-out routine to push sleep toward 7-8 h."
	if sleepAvg >= 7.5 {
		n3 = "Maintain a consistent sleep window to preserve 7-8 h nights."
	}

	var n4 string
	switch {
	case per.BudgetSARPerDay > 0 && per.BudgetSARPerDay < 40:
		n4 = "Batch-cook simple Saudi staples (rice, lentils, eggs) to stay on budget."
	case per.BudgetSARPerDay >= 90:
		n4 = "Consider leaner cuts and more fresh produce to refine micronutrients."
	default:
		n4 = "Keep meals simple; adjust seasoning and veggies for variety."
	}

	n5 := "Experiment with one new high-protein Saudi dish mid-week for variety."
	if strings.Contains(strings.ToLower(per.CookingSkill), "beginner") {
		n5 = "Keep recipes under 5 steps; reuse the same spice mix to reduce friction."
	}

	return strings.Join([]string{n1, n2, n3, n4, n5, choose(r, noteEndings)}, " ")
}
