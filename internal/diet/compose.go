package diet

import (
	"fmt"
	"math/rand"
	"strings"

	"fitweeks/internal/prng"
)

// Slot kcal plausibility band; compositions outside it are resampled.
const (
	slotKcalMin     = 250
	slotKcalMax     = 1200
	composeAttempts = 12
)

type item struct {
	name   string
	amount int // grams or milliliters
	unit   string
}

// pick selects a random element of pool.
func pick(r *rand.Rand, pool []string) string {
	return pool[r.Intn(len(pool))]
}

// amount samples a quantity in [lo, hi] and clamps it to the slot's hard
// bounds [min, max].
func amount(r *rand.Rand, lo, hi, min, max int) int {
	v := lo + r.Intn(hi-lo+1)
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}

func composeBreakfast(r *rand.Rand) (string, []item) {
	bread := pick(r, breads)
	gBread := amount(r, 90, 140, 60, 180)
	spreadOrEggs := pick(r, append(append([]string{}, spreads...), eggs...))
	var gSpread int
	if contains(eggs, spreadOrEggs) {
		gSpread = amount(r, 90, 120, 80, 140) // ~2 eggs = 100 g
	} else {
		gSpread = amount(r, 70, 120, 40, 150)
	}
	fruit := pick(r, fruits)
	gFruit := amount(r, 80, 120, 60, 180)
	drink := pick(r, drinks)
	mlDrink := amount(r, 150, 250, 100, 300)

	items := []item{
		{bread, gBread, "g"},
		{spreadOrEggs, gSpread, "g"},
		{fruit, gFruit, "g"},
		{drink, mlDrink, "ml"},
	}
	label := fmt.Sprintf("%s %s (%d g), %s (%d g), %s (%d g), %s (%d ml)",
		mealWindows[0], bread, gBread, spreadOrEggs, gSpread, fruit, gFruit, drink, mlDrink)
	return label, items
}

func composeLunch(r *rand.Rand) (string, []item) {
	rice := pick(r, riceDish)
	gRice := amount(r, 260, 380, 200, 450)
	protein := pick(r, proteins)
	gProt := amount(r, 150, 200, 120, 240)
	side := pick(r, sides)
	gSide := amount(r, 100, 160, 80, 200)
	drink := pick(r, drinks)
	mlDrink := amount(r, 160, 240, 120, 300)

	items := []item{
		{rice, gRice, "g"},
		{protein, gProt, "g"},
		{side, gSide, "g"},
		{drink, mlDrink, "ml"},
	}
	label := fmt.Sprintf("%s %s (%d g) + %s (%d g), %s (%d g), %s (%d ml)",
		mealWindows[1], rice, gRice, protein, gProt, side, gSide, drink, mlDrink)
	return label, items
}

func composeSnack(r *rand.Rand) (string, []item) {
	spread := pick(r, spreads)
	gSpread := amount(r, 90, 140, 60, 160)
	bread := pick(r, breads)
	gBread := amount(r, 70, 110, 50, 140)
	fruit := pick(r, fruits)
	gFruit := amount(r, 70, 110, 50, 150)

	items := []item{
		{spread, gSpread, "g"},
		{bread, gBread, "g"},
		{fruit, gFruit, "g"},
	}
	label := fmt.Sprintf("%s %s (%d g) with %s (%d g), %s (%d g)",
		mealWindows[2], spread, gSpread, bread, gBread, fruit, gFruit)
	return label, items
}

func composeDinner(r *rand.Rand) (string, []item) {
	// Coin flip: rice-dish combo or a grilled protein plate.
	if r.Float64() < 0.5 {
		rice := pick(r, riceDish)
		gRice := amount(r, 220, 340, 180, 400)
		protein := pick(r, proteins)
		gProt := amount(r, 150, 200, 120, 240)
		side := pick(r, sides)
		gSide := amount(r, 100, 160, 80, 200)
		sauce := pick(r, sauces)
		gSauce := amount(r, 20, 35, 15, 40)

		items := []item{
			{rice, gRice, "g"},
			{protein, gProt, "g"},
			{side, gSide, "g"},
			{sauce, gSauce, "g"},
		}
		label := fmt.Sprintf("%s %s (%d g) + %s (%d g), %s (%d g), %s (%d g)",
			mealWindows[3], rice, gRice, protein, gProt, side, gSide, sauce, gSauce)
		return label, items
	}

	protein := pick(r, proteins)
	gProt := amount(r, 170, 220, 140, 260)
	side := pick(r, sides)
	gSide := amount(r, 120, 180, 90, 220)
	sauce := pick(r, sauces)
	gSauce := amount(r, 20, 35, 15, 40)
	breadOrRice := pick(r, append(append([]string{}, breads...), riceDish...))
	var gBR int
	if contains(breads, breadOrRice) {
		gBR = amount(r, 80, 130, 60, 180)
	} else {
		gBR = amount(r, 200, 320, 160, 400)
	}

	items := []item{
		{protein, gProt, "g"},
		{side, gSide, "g"},
		{sauce, gSauce, "g"},
		{breadOrRice, gBR, "g"},
	}
	label := fmt.Sprintf("%s grilled %s (%d g), %s (%d g), %s (%d g), %s (%d g)",
		mealWindows[3], protein, gProt, side, gSide, sauce, gSauce, breadOrRice, gBR)
	return label, items
}

var slotComposers = [NumMeals]func(*rand.Rand) (string, []item){
	composeBreakfast, composeLunch, composeSnack, composeDinner,
}

// sumMacros totals the table figures for the chosen items, then overrides
// kcal with the 4/4/9 rule applied to the summed macros so the final figure
// is always internally consistent.
func sumMacros(items []item) Macros {
	var m Macros
	for _, it := range items {
		per, ok := foods[it.name]
		if !ok {
			continue
		}
		f := float64(it.amount) / 100.0
		m.Kcal += per.Kcal * f
		m.Carbs += per.Carbs * f
		m.Fat += per.Fat * f
		m.Protein += per.Protein * f
		m.Fiber += per.Fiber * f
		m.Sodium += per.Sodium * f
	}
	m.Carbs = prng.Round1(m.Carbs)
	m.Fat = prng.Round1(m.Fat)
	m.Protein = prng.Round1(m.Protein)
	m.Fiber = prng.Round1(m.Fiber)
	m.Sodium = prng.Round1(m.Sodium)
	m.Kcal = prng.Round1(4*m.Carbs + 4*m.Protein + 9*m.Fat)
	return m
}

// ComposeMeal builds one slot's meal for a persona-week. Compositions whose
// reconciled kcal falls outside the slot band are resampled with a fresh
// attempt-salted stream, up to composeAttempts; the last attempt is accepted
// regardless.
func ComposeMeal(personaID, weekID string, slot int) Meal {
	if slot < 0 || slot >= NumMeals {
		panic(fmt.Sprintf("diet: slot %d out of range", slot))
	}
	purpose := fmt.Sprintf("meal:%d", slot)
	var label string
	var m Macros
	for attempt := 0; attempt < composeAttempts; attempt++ {
		r := prng.New(personaID, weekID, purpose, attempt)
		var items []item
		label, items = slotComposers[slot](r)
		m = sumMacros(items)
		if m.Kcal >= slotKcalMin && m.Kcal <= slotKcalMax {
			break
		}
	}
	return Meal{Name: label, Macros: m}
}

// ComposePlan builds a full fallback plan from the composition table. Totals
// are exact sums of the four meals.
func ComposePlan(personaID, weekID string, per PlanContext) Plan {
	var p Plan
	for slot := 0; slot < NumMeals; slot++ {
		p.Meals[slot] = ComposeMeal(personaID, weekID, slot)
	}
	p.recomputeTotals()
	p.Note = composeNote(personaID, per, p.Totals.Kcal)
	return p
}

// PlanContext is the persona detail the composer needs for its note line.
type PlanContext struct {
	Goal         string
	FitnessLevel string
	DaysPerWeek  int
	BudgetSAR    float64
}

func composeNote(personaID string, per PlanContext, totalKcal float64) string {
	goal := strings.TrimSpace(strings.ReplaceAll(per.Goal, "_", " "))
	return fmt.Sprintf(
		"Persona %s: goal=%s, level=%s, training=%d, budget=%.0f. "+
			"Approx daily energy target ≈ %d kcal. "+
			"Hydrate well; prefer laban/water. Keep sodium moderate; adjust portions around training days.",
		personaID, goal, per.FitnessLevel, per.DaysPerWeek, per.BudgetSAR, int(totalKcal+0.5))
}

func (p *Plan) recomputeTotals() {
	var t Macros
	for _, m := range p.Meals {
		t.Kcal += m.Kcal
		t.Carbs += m.Carbs
		t.Fat += m.Fat
		t.Protein += m.Protein
		t.Fiber += m.Fiber
		t.Sodium += m.Sodium
	}
	t.Kcal = prng.Round1(t.Kcal)
	t.Carbs = prng.Round1(t.Carbs)
	t.Fat = prng.Round1(t.Fat)
	t.Protein = prng.Round1(t.Protein)
	t.Fiber = prng.Round1(t.Fiber)
	t.Sodium = prng.Round1(t.Sodium)
	p.Totals = t
}

func contains(pool []string, s string) bool {
	for _, v := range pool {
		if v == s {
			return true
		}
	}
	return false
}
