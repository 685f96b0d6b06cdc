package llm

import (
	"fmt"
	"log/slog"
	"strings"

	"fitweeks/internal/diet"
	"fitweeks/internal/persona"
)

const dietSystem = "You are a Saudi-cuisine sports nutritionist. " +
	"You answer with a single JSON object and no surrounding prose."

func dietPrompt(per persona.Persona, wk string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Design one repeatable day of four meals for persona %s, week %s.\n", per.PID, wk)
	fmt.Fprintf(&b, "Profile: goal=%s, fitness=%s, training_days=%d, weight_kg=%.1f, budget_SAR_per_day=%.0f, cooking=%s.\n",
		per.PrimaryGoal, per.FitnessLevel, per.DaysPerWeek, per.Weight, per.BudgetSARPerDay, per.CookingSkill)
	b.WriteString("Use Saudi dishes (foul, kabsa, jareesh, saleeg, laban, khubz, dates).\n")
	b.WriteString("Return exactly this flat JSON schema, numbers only for macros:\n{\n")
	b.WriteString(`  "Note": string,` + "\n")
	for _, prefix := range []string{"1st_meal", "2nd_meal", "3rd_meal", "4th_meal"} {
		fmt.Fprintf(&b, "  %q: string,\n", prefix)
		for _, suffix := range []string{"kcal_target_kcal", "carbs_g", "fat_g", "protein_g", "fiber_g", "sodium_mg"} {
			fmt.Fprintf(&b, "  \"%s_%s\": number,\n", prefix, suffix)
		}
	}
	b.WriteString(`  "Total_kcal_target_kcal": number, "Total_carbs_g": number, "Total_fat_g": number,` + "\n")
	b.WriteString(`  "Total_protein_g": number, "Total_fiber_g": number, "Total_sodium_mg": number` + "\n}\n")
	b.WriteString("Every total must equal the sum of the four meals' values.")
	return b.String()
}

// GenerateDietDraft asks the provider for a diet draft and parses the first
// JSON object out of its reply. ok is false when the provider is disabled,
// errors, or returns no object; callers then build the plan deterministically.
// The returned record is raw and must still pass through normalization.
func (c *Client) GenerateDietDraft(per persona.Persona, wk string) (map[string]any, bool) {
	if !c.Enabled() {
		return nil, false
	}
	text, err := c.Complete(dietSystem, dietPrompt(per, wk), 1200)
	if err != nil {
		slog.Warn("diet draft failed", "pid", per.PID, "week", wk, "error", err)
		return nil, false
	}
	rec, ok := diet.ParseDraft(text)
	if !ok {
		slog.Warn("diet draft had no JSON object", "pid", per.PID, "week", wk)
		return nil, false
	}
	return rec, true
}
