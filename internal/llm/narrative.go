package llm

import (
	"fmt"
	"log/slog"
	"strings"

	"fitweeks/internal/diet"
	"fitweeks/internal/persona"
)

const logSystem = "You simulate one week of a fitness program for a synthetic persona. " +
	"You answer with a single JSON object and no surrounding prose."

func logPrompt(per persona.Persona, plan diet.Plan, workoutIDs []string, wk string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Simulate week %s for persona %s.\n", wk, per.PID)
	fmt.Fprintf(&b, "Pre-state: weight_kg=%.1f, muscle_kg=%.1f, fat_pct=%.1f, sleep_h=%.1f, adherence=%.2f.\n",
		per.Weight, per.MuscleMass, per.FatPercent, per.SleepHours, per.Adherence)
	fmt.Fprintf(&b, "Goal: %s. Training %d days/week using programs %s.\n",
		per.PrimaryGoal, per.DaysPerWeek, strings.Join(workoutIDs, ", "))
	fmt.Fprintf(&b, "Diet target: %.0f kcal/day (protein %.0f g, carbs %.0f g, fat %.0f g).\n",
		plan.Totals.Kcal, plan.Totals.Protein, plan.Totals.Carbs, plan.Totals.Fat)
	b.WriteString("Weekly changes must stay small: |delta_weight_kg| <= 1.2, |delta_muscle_kg| <= 0.4, |delta_fat_pct| <= 1.2.\n")
	b.WriteString("Return exactly this JSON schema:\n{\n")
	b.WriteString(`  "Date": "YYYY-MM-DD", "Time": "HH:MM:SS",` + "\n")
	b.WriteString(`  "free_text_feedback": string, "notes": string,` + "\n")
	b.WriteString(`  "daily_avg_kcal": number,` + "\n")
	b.WriteString(`  "Pre_weight_kg": number, "Pre_muscle_kg": number, "Pre_fat_pct": number,` + "\n")
	b.WriteString(`  "Post_weight_kg": number, "Post_muscle_kg": number, "Post_fat_pct": number,` + "\n")
	b.WriteString(`  "delta_weight_kg": number, "delta_muscle_kg": number, "delta_fat_pct": number,` + "\n")
	b.WriteString(`  "sleep_avg_hours": number` + "\n}\n")
	b.WriteString("free_text_feedback must mention the goal and a concrete kcal or sleep figure.")
	return b.String()
}

// GenerateLogDraft asks the provider for a weekly-log draft. ok is false when
// the provider is disabled, errors, or returns no JSON object. The returned
// record is raw: the caller must validate it field-by-field and apply the
// physiological clamps before trusting any number in it.
func (c *Client) GenerateLogDraft(per persona.Persona, plan diet.Plan, workoutIDs []string, wk string) (map[string]any, bool) {
	if !c.Enabled() {
		return nil, false
	}
	text, err := c.Complete(logSystem, logPrompt(per, plan, workoutIDs, wk), 900)
	if err != nil {
		slog.Warn("log draft failed", "pid", per.PID, "week", wk, "error", err)
		return nil, false
	}
	rec, ok := diet.ParseDraft(text)
	if !ok {
		slog.Warn("log draft had no JSON object", "pid", per.PID, "week", wk)
		return nil, false
	}
	return rec, true
}
