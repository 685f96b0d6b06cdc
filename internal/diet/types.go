// Package diet implements the one-day four-meal plan schema, the seeded meal
// composer, the shape normalizer for external drafts, and the diversification
// engine that forces variety across personas and weeks.
package diet

import "fmt"

// Macros is one set of the six tracked nutrition figures.
type Macros struct {
	Kcal    float64 `json:"kcal"`
	Carbs   float64 `json:"carbs_g"`
	Fat     float64 `json:"fat_g"`
	Protein float64 `json:"protein_g"`
	Fiber   float64 `json:"fiber_g"`
	Sodium  float64 `json:"sodium_mg"`
}

// Meal is a descriptive label plus its macros.
type Meal struct {
	Name string `json:"name"`
	Macros
}

// NumMeals is fixed: breakfast, lunch, snack, dinner.
const NumMeals = 4

// Plan is one repeatable day of four meals. Invariant after Normalize or
// Diversify: every total equals the sum of the four per-meal values to one
// decimal place.
type Plan struct {
	Note   string         `json:"Note,omitempty"`
	Meals  [NumMeals]Meal `json:"-"`
	Totals Macros         `json:"-"`
}

// mealPrefixes are the historical flat-record key prefixes, in slot order.
var mealPrefixes = [NumMeals]string{"1st_meal", "2nd_meal", "3rd_meal", "4th_meal"}

// macroSuffixes are the flat-record macro key suffixes, in Macros field order.
var macroSuffixes = [6]string{"kcal_target_kcal", "carbs_g", "fat_g", "protein_g", "fiber_g", "sodium_mg"}

// totalKeys are the flat-record total keys, in Macros field order.
var totalKeys = [6]string{
	"Total_kcal_target_kcal", "Total_carbs_g", "Total_fat_g",
	"Total_protein_g", "Total_fiber_g", "Total_sodium_mg",
}

func (m Macros) values() [6]float64 {
	return [6]float64{m.Kcal, m.Carbs, m.Fat, m.Protein, m.Fiber, m.Sodium}
}

func macrosFrom(v [6]float64) Macros {
	return Macros{Kcal: v[0], Carbs: v[1], Fat: v[2], Protein: v[3], Fiber: v[4], Sodium: v[5]}
}

// Record flattens the plan into the historical 35-key storage shape
// (4 meals × {name + 6 macros} + 6 totals + Note).
func (p Plan) Record() map[string]any {
	rec := make(map[string]any, 35)
	rec["Note"] = p.Note
	tv := p.Totals.values()
	for i, k := range totalKeys {
		rec[k] = tv[i]
	}
	for slot, prefix := range mealPrefixes {
		rec[prefix] = p.Meals[slot].Name
		mv := p.Meals[slot].Macros.values()
		for i, suffix := range macroSuffixes {
			rec[fmt.Sprintf("%s_%s", prefix, suffix)] = mv[i]
		}
	}
	return rec
}
