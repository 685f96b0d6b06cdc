package sim

import (
	"fmt"
	"math/rand"
	"time"

	"fitweeks/internal/diet"
	"fitweeks/internal/persona"
	"fitweeks/internal/prng"
	"fitweeks/internal/weekid"
)

func daysBonus(days int) float64 {
	switch {
	case days >= 5:
		return 1.10
	case days == 4:
		return 1.05
	case days == 3:
		return 1.00
	default:
		return 0.95
	}
}

func sleepBonus(hours float64) float64 {
	switch {
	case hours >= 8:
		return 1.06
	case hours >= 7:
		return 1.03
	case hours >= 6:
		return 1.00
	default:
		return 0.94
	}
}

// goalRanges returns one week's (weight, muscle) delta ranges in kg.
func goalRanges(g persona.Goal) (dw, dm [2]float64) {
	switch g {
	case persona.GoalFatLoss:
		return [2]float64{-1.0, -0.2}, [2]float64{0.00, 0.20}
	case persona.GoalMuscleGain:
		return [2]float64{-0.1, 0.6}, [2]float64{0.10, 0.45}
	case persona.GoalRecomp:
		return [2]float64{-0.4, 0.3}, [2]float64{0.05, 0.25}
	default:
		return [2]float64{-0.2, 0.2}, [2]float64{0.00, 0.15}
	}
}

func draw(r *rand.Rand, rng [2]float64) float64 {
	return prng.Uniform(r, rng[0], rng[1])
}

// Simulate produces one week's outcome for a persona on a given plan. Pure
// given its inputs: the RNG is derived from (persona, week, nonce), and now
// only stamps Date/Time. Panics on empty persona id or week id, or negative
// nonce.
func Simulate(per persona.Persona, plan diet.Plan, workoutIDs []string, wk string, nonce int, now time.Time) WeeklyLog {
	if per.PID == "" || wk == "" {
		panic(fmt.Sprintf("sim: empty persona id %q or week id %q", per.PID, wk))
	}
	if nonce < 0 {
		panic(fmt.Sprintf("sim: negative nonce %d", nonce))
	}
	r := prng.New(per.PID, wk, "log", nonce)

	preW, preM, preF, sleepH := Baseline(per)
	goal := per.GoalKind()
	days := per.DaysPerWeek
	if days <= 0 {
		days = 3
	}

	target := plan.Totals.Kcal
	if target <= 0 {
		target = 2000.0
	}

	mult := (0.82 + 0.38*per.Adherence) * daysBonus(days) * sleepBonus(sleepH)
	mult *= prng.Uniform(r, 0.97, 1.03)
	dailyKcal := prng.Round1(clampF(target*mult, 1200.0, 4500.0))

	// Couple body change with realized adherence: mult near 0.95 is an
	// average week, above it tightens toward the favorable end.
	tighten := mult - 0.95
	dwRange, dmRange := goalRanges(goal)
	dw := draw(r, dwRange) * (1.0 + 0.6*tighten)
	dm := draw(r, dmRange) * (1.0 + 0.8*tighten)

	// Muscle rarely grows through a large realized deficit.
	if goal == persona.GoalMuscleGain && dailyKcal < 0.9*target {
		dm *= 0.6
	}

	postW := preW + dw

	// Fat change via explicit fat-mass balance rather than an independent
	// draw: weight lost is mostly fat, weight gained is mostly lean.
	fatKg := preW * preF / 100.0
	if dw < 0 {
		fatKg += 0.75 * dw
	} else {
		fatKg += 0.30 * dw
	}
	postF := clampF(100.0*fatKg/postW, 5.0, 60.0)

	sleepAvg := round2(clampF(sleepH+prng.Uniform(r, -0.3, 0.4), 4.0, 10.0))

	l := WeeklyLog{
		DailyAvgKcal: dailyKcal,
		PreWeight:    preW,
		PreMuscle:    preM,
		PreFat:       preF,
		DeltaWeight:  dw,
		DeltaMuscle:  dm,
		DeltaFat:     postF - preF,
		SleepAvg:     sleepAvg,
	}
	l.reconcile()

	l.Feedback = mkFeedback(r, per, goal, dailyKcal, days, workoutIDs, sleepAvg)
	l.Notes = mkNotes(r, per, goal, sleepAvg)
	l.Date, l.Time = weekid.Stamp(now)
	return l
}

// draftKeys are the numeric fields a provider draft must carry, all coercible
// to numbers, before it may replace the simulator's output.
var draftKeys = []string{
	"daily_avg_kcal",
	"Pre_weight_kg", "Pre_muscle_kg", "Pre_fat_pct",
	"Post_weight_kg", "Post_muscle_kg", "Post_fat_pct",
	"delta_weight_kg", "delta_muscle_kg", "delta_fat_pct",
	"sleep_avg_hours",
}

// FromDraft validates a provider-drafted log record. ok is false when any
// required numeric field is missing or non-numeric, or either narrative field
// is empty; an accepted draft still passes through the clamp/consistency
// step, with pre-state defaulted from the persona where the draft is silent.
func FromDraft(raw map[string]any, per persona.Persona, now time.Time) (WeeklyLog, bool) {
	if raw == nil {
		return WeeklyLog{}, false
	}
	vals := make(map[string]float64, len(draftKeys))
	for _, k := range draftKeys {
		f, ok := persona.CoerceOK(raw[k])
		if !ok {
			return WeeklyLog{}, false
		}
		vals[k] = f
	}
	feedback, _ := raw["free_text_feedback"].(string)
	notes, _ := raw["notes"].(string)
	if feedback == "" || notes == "" {
		return WeeklyLog{}, false
	}

	preW, preM, preF, sleepDef := Baseline(per)
	l := WeeklyLog{
		Feedback:     feedback,
		Notes:        notes,
		DailyAvgKcal: prng.Round1(clampF(vals["daily_avg_kcal"], 1200, 4500)),
		PreWeight:    vals["Pre_weight_kg"],
		PreMuscle:    vals["Pre_muscle_kg"],
		PreFat:       vals["Pre_fat_pct"],
		SleepAvg:     round2(clampF(vals["sleep_avg_hours"], 4, 10)),
	}
	if l.PreWeight <= 0 {
		l.PreWeight = preW
	}
	if l.PreMuscle <= 0 {
		l.PreMuscle = preM
	}
	if l.PreFat <= 0 {
		l.PreFat = preF
	}
	if vals["sleep_avg_hours"] <= 0 {
		l.SleepAvg = round2(sleepDef)
	}
	l.DeltaWeight = vals["delta_weight_kg"]
	l.DeltaMuscle = vals["delta_muscle_kg"]
	l.DeltaFat = vals["delta_fat_pct"]
	l.reconcile()

	if d, ok := raw["Date"].(string); ok && d != "" {
		l.Date = d
		l.Time, _ = raw["Time"].(string)
	}
	if l.Date == "" || l.Time == "" {
		l.Date, l.Time = weekid.Stamp(now)
	}
	return l, true
}
