package persona

import "testing"

func TestCoerceLenientParsing(t *testing.T) {
	cases := []struct {
		in   any
		def  float64
		want float64
	}{
		{nil, 0, 0},
		{72.5, 0, 72.5},
		{80, 0, 80},
		{"1,850", 0, 1850},
		{"72kg", 0, 72},
		{"2000 kcal/day", 0, 2000},
		{"  7.5 ", 0, 7.5},
		{"", 3, 3},
		{"not a number", 9, 9},
	}
	for _, c := range cases {
		if got := Coerce(c.in, c.def); got != c.want {
			t.Errorf("Coerce(%v, %v) = %v, want %v", c.in, c.def, got, c.want)
		}
	}
}

func TestParseAdherence(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{"High", 0.85},
		{"moderate", 0.65},
		{"Med", 0.65},
		{"low adherence", 0.40},
		{"0.7", 0.7},
		{0.9, 0.9},
		{1.5, 1.0},
		{nil, 0.65},
		{"", 0.65},
	}
	for _, c := range cases {
		if got := ParseAdherence(c.in); got != c.want {
			t.Errorf("ParseAdherence(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestClassifyGoal(t *testing.T) {
	cases := []struct {
		goal string
		want Goal
	}{
		{"fat loss", GoalFatLoss},
		{"Cutting", GoalFatLoss},
		{"muscle gain", GoalMuscleGain},
		{"Bulk", GoalMuscleGain},
		{"recomposition", GoalRecomp},
		{"general health", GoalMaintain},
		{"", GoalMaintain},
	}
	for _, c := range cases {
		if got := ClassifyGoal(c.goal); got != c.want {
			t.Errorf("ClassifyGoal(%q) = %v, want %v", c.goal, got, c.want)
		}
	}
}

func TestFromRecordTypoVariantKeys(t *testing.T) {
	p := FromRecord("P07", map[string]any{
		"Budget_SAR_per_day":   "45 SAR",
		"Adherence propensity": "High",
		"Weight_kg":            "82,5", // thousands-separator style comma
		"Days_per_week":        "4",
	})
	if p.PID != "P07" {
		t.Fatalf("pid = %s", p.PID)
	}
	if p.BudgetSARPerDay != 45 {
		t.Errorf("budget = %v, want 45", p.BudgetSARPerDay)
	}
	if p.Adherence != 0.85 {
		t.Errorf("adherence = %v, want 0.85", p.Adherence)
	}
	if p.Weight != 825 {
		t.Errorf("weight = %v (comma stripped), want 825", p.Weight)
	}
	if p.DaysPerWeek != 4 {
		t.Errorf("days = %d, want 4", p.DaysPerWeek)
	}
}

func TestAdvancedDoesNotMutateBaseline(t *testing.T) {
	base := Persona{PID: "P01", Weight: 80, MuscleMass: 36, FatPercent: 22, SleepHours: 7, PrimaryGoal: "muscle gain"}
	next := base.Advanced(80.4, 36.2, 21.8, 7.5, "keep protein high")
	if base.Weight != 80 || base.Notes != "" {
		t.Fatal("baseline was mutated")
	}
	if next.Weight != 80.4 || next.MuscleMass != 36.2 || next.FatPercent != 21.8 || next.SleepHours != 7.5 {
		t.Fatalf("unexpected snapshot %+v", next)
	}
	if next.PrimaryGoal != "muscle gain" || next.PID != "P01" {
		t.Fatal("carry-through fields lost")
	}
}

func TestParseRoster(t *testing.T) {
	data := []byte(`[
		{"ID":"P01","Primary_goal":"fat loss","Weight_kg":"88","Adherence_propensity":0.8},
		{"Primary_goal":"no id, skipped"},
		{"ID":"P02","Sleep_hours":6.5}
	]`)
	roster := ParseRoster(data)
	if len(roster) != 2 {
		t.Fatalf("got %d personas, want 2", len(roster))
	}
	if roster[0].PID != "P01" || roster[0].Weight != 88 || roster[0].Adherence != 0.8 {
		t.Fatalf("unexpected first persona %+v", roster[0])
	}
	if roster[1].PID != "P02" || roster[1].SleepHours != 6.5 {
		t.Fatalf("unexpected second persona %+v", roster[1])
	}
}
