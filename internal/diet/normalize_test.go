package diet

import (
	"testing"
)

func TestNormalizeIdempotent(t *testing.T) {
	p := ComposePlan("P020", "2025-W46", PlanContext{Goal: "recomp", DaysPerWeek: 3})
	again := Normalize(p.Record())
	if again != p {
		t.Fatalf("normalizing a normalized record changed it:\n%+v\n%+v", p, again)
	}
}

func TestNormalizeCanonicalizesKeys(t *testing.T) {
	raw := map[string]any{
		" 1st_Meal ":                   "Shakshuka with Toast",
		"1ST_MEAL_KCAL_TARGET_KCAL":    "520",
		"1st_meal_protein_g:":          28.5,
		"Total_kcal_target_kcal,":      "2100,5",
		"total_protein_g":              130,
		"unexpected_provider_metadata": "ignored",
	}
	p := Normalize(raw)
	if p.Meals[0].Name != "Shakshuka with Toast" {
		t.Fatalf("meal name = %q", p.Meals[0].Name)
	}
	if p.Meals[0].Kcal != 520 {
		t.Fatalf("meal kcal = %v", p.Meals[0].Kcal)
	}
	if p.Meals[0].Protein != 28.5 {
		t.Fatalf("meal protein = %v", p.Meals[0].Protein)
	}
	if p.Totals.Kcal != 21005 {
		t.Fatalf("total kcal = %v, comma should be treated as a separator", p.Totals.Kcal)
	}
	if p.Totals.Protein != 130 {
		t.Fatalf("total protein = %v", p.Totals.Protein)
	}
}

func TestNormalizeRecomputesMissingTotals(t *testing.T) {
	raw := map[string]any{
		"1st_meal":                  "Foul with Bread",
		"1st_meal_kcal_target_kcal": 500.0,
		"1st_meal_carbs_g":          60.0,
		"2nd_meal":                  "Kabsa Plate",
		"2nd_meal_kcal_target_kcal": 800.0,
		"2nd_meal_carbs_g":          90.0,
		"3rd_meal":                  "Laban and Dates",
		"3rd_meal_kcal_target_kcal": 300.0,
		"4th_meal":                  "Grilled Chicken",
		"4th_meal_kcal_target_kcal": 600.0,
	}
	p := Normalize(raw)
	if p.Totals.Kcal != 2200 {
		t.Fatalf("recomputed total kcal = %v, want 2200", p.Totals.Kcal)
	}
	if p.Totals.Carbs != 150 {
		t.Fatalf("recomputed total carbs = %v, want 150", p.Totals.Carbs)
	}
}

func TestNormalizePartialTotalsKept(t *testing.T) {
	raw := map[string]any{
		"1st_meal_kcal_target_kcal": 500.0,
		"Total_protein_g":           120.0,
	}
	p := Normalize(raw)
	if p.Totals.Protein != 120 {
		t.Fatalf("total protein = %v", p.Totals.Protein)
	}
	if p.Totals.Kcal != 0 {
		t.Fatalf("total kcal = %v, a partial set of totals must not be recomputed", p.Totals.Kcal)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	p := Normalize(map[string]any{})
	for slot, m := range p.Meals {
		if m.Name == "" {
			t.Fatalf("slot %d has an empty name", slot)
		}
	}
	if p.Meals[0].Name == p.Meals[1].Name {
		t.Fatal("default labels did not rotate")
	}
	if p.Note == "" {
		t.Fatal("default note missing")
	}
}

func TestNormalizeNestedMealObjects(t *testing.T) {
	raw := map[string]any{
		"2nd_meal": map[string]any{
			"name":             "Chicken Kabsa",
			"kcal_target_kcal": 750.0,
			"protein_g":        45.0,
		},
	}
	p := Normalize(raw)
	if p.Meals[1].Name != "Chicken Kabsa" {
		t.Fatalf("name = %q", p.Meals[1].Name)
	}
	if p.Meals[1].Kcal != 750 || p.Meals[1].Protein != 45 {
		t.Fatalf("nested macros not extracted: %+v", p.Meals[1].Macros)
	}
}

func TestParseDraftFencedJSON(t *testing.T) {
	text := "Here is the plan you asked for:\n```json\n" +
		`{"Note": "plan", "1st_meal": "Foul with Bread", "Total_kcal_target_kcal": 2100}` +
		"\n```\nLet me know if you need changes."
	rec, ok := ParseDraft(text)
	if !ok {
		t.Fatal("fenced JSON not found")
	}
	if rec["1st_meal"] != "Foul with Bread" {
		t.Fatalf("1st_meal = %v", rec["1st_meal"])
	}
	if rec["Total_kcal_target_kcal"] != 2100.0 {
		t.Fatalf("total = %v", rec["Total_kcal_target_kcal"])
	}
}

func TestParseDraftBareObjectInProse(t *testing.T) {
	text := `Sure! {"Note": "x", "2nd_meal": {"name": "Kabsa"}} Hope that helps.`
	rec, ok := ParseDraft(text)
	if !ok {
		t.Fatal("object not found")
	}
	sub, ok := rec["2nd_meal"].(map[string]any)
	if !ok || sub["name"] != "Kabsa" {
		t.Fatalf("nested object not preserved: %v", rec["2nd_meal"])
	}
}

func TestParseDraftNoObject(t *testing.T) {
	for _, text := range []string{"", "no json here", "{broken", "{\"a\": }"} {
		if _, ok := ParseDraft(text); ok {
			t.Fatalf("ParseDraft(%q) reported success", text)
		}
	}
}
