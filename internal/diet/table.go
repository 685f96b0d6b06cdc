package diet

// foodInfo holds per-100 g (or per-100 ml for drinks) figures. The values are
// practical planning approximations, not lab measurements.
type foodInfo struct {
	Kcal, Carbs, Fat, Protein, Fiber, Sodium float64
}

var foods = map[string]foodInfo{
	// breads
	"tamees":             {275, 52, 3, 9, 3, 450},
	"whole-wheat tamees": {260, 49, 3, 10, 6, 440},
	"samoon":             {280, 54, 3, 9, 2.5, 500},
	"markook":            {260, 53, 2, 8, 3, 400},
	"pita":               {260, 55, 1.5, 9, 2.5, 400},
	"kubz arabi":         {260, 55, 1.5, 9, 2.5, 400},
	// spreads / eggs
	"ful medames":    {110, 19, 0.6, 7.6, 8, 250},
	"labneh":         {130, 5, 7, 10, 0, 200},
	"hummus":         {177, 14.3, 8.6, 7.9, 6, 240},
	"feta":           {265, 4, 21, 14, 0, 1100},
	"peanut butter":  {588, 20, 50, 25, 6, 400},
	"white cheese":   {280, 3, 22, 20, 0, 700},
	"scrambled eggs": {155, 1.1, 11, 13, 0, 125},
	"boiled eggs":    {155, 1.1, 11, 13, 0, 125},
	"omelette":       {180, 2, 14, 12, 0, 135},
	// proteins
	"chicken breast": {165, 0, 3.6, 31, 0, 74},
	"lamb":           {294, 0, 21, 25, 0, 70},
	"beef":           {250, 0, 15, 26, 0, 72},
	"shrimp":         {99, 0.2, 0.3, 24, 0, 150},
	"white fish":     {120, 0, 1.5, 26, 0, 90},
	"tuna":           {132, 0, 1, 29, 0, 320},
	// rice dishes (cooked)
	"kabsa":     {170, 30, 3, 4, 1, 300},
	"mandi":     {160, 29, 2.5, 4, 1, 260},
	"saleeq":    {140, 24, 2.5, 4, 0.5, 250},
	"sayadiyah": {165, 28, 3, 6, 1, 350},
	// sides
	"simple salad":     {35, 7, 0.2, 1.5, 2.5, 50},
	"cucumber sticks":  {16, 3.6, 0.1, 0.7, 0.5, 2},
	"carrot sticks":    {41, 10, 0.2, 0.9, 2.8, 69},
	"roasted zucchini": {30, 6, 0.4, 1.2, 2, 5},
	"okra stew":        {70, 9, 3, 2, 3, 300},
	"grilled peppers":  {31, 6, 0.3, 1, 2, 4},
	// drinks (per 100 ml)
	"laban":         {40, 3, 2, 3, 0, 45},
	"mint tea":      {1, 0.2, 0, 0, 0, 2},
	"Arabic coffee": {2, 0.3, 0, 0.1, 0, 5},
	"black tea":     {1, 0.1, 0, 0, 0, 3},
	"water":         {0, 0, 0, 0, 0, 0},
	// fruits
	"dates":   {282, 75, 0.4, 2.5, 8, 2},
	"banana":  {89, 23, 0.3, 1.1, 2.6, 1},
	"orange":  {47, 12, 0.1, 0.9, 2.4, 1},
	"apple":   {52, 14, 0.2, 0.3, 2.4, 1},
	"berries": {57, 14, 0.3, 1, 5, 1},
	"grapes":  {69, 18, 0.2, 0.7, 1, 2},
	// sauces (small servings)
	"tahini lemon dip": {595, 21, 53, 17, 9, 10},
	"yogurt":           {59, 3.6, 0.4, 10, 0, 36},
	"garlic sauce":     {500, 10, 48, 4, 1, 600},
	"tomato salsa":     {29, 7, 0.2, 1.5, 1.5, 300},
	"pickles":          {12, 2.5, 0.2, 0.3, 1.2, 785},
}

// Slot-appropriate candidate pools.
var (
	breads   = []string{"tamees", "whole-wheat tamees", "samoon", "markook", "pita", "kubz arabi"}
	spreads  = []string{"ful medames", "labneh", "hummus", "feta", "peanut butter", "white cheese"}
	eggs     = []string{"scrambled eggs", "boiled eggs", "omelette"}
	proteins = []string{"chicken breast", "lamb", "beef", "shrimp", "white fish", "tuna"}
	riceDish = []string{"kabsa", "mandi", "saleeq", "sayadiyah"}
	sides    = []string{"simple salad", "cucumber sticks", "carrot sticks", "roasted zucchini", "okra stew", "grilled peppers"}
	drinks   = []string{"laban", "mint tea", "Arabic coffee", "black tea", "water"}
	fruits   = []string{"dates", "banana", "orange", "apple", "berries", "grapes"}
	sauces   = []string{"tahini lemon dip", "yogurt", "garlic sauce", "tomato salsa", "pickles"}
)

// mealWindows prefix each slot's label with its time-of-day window.
var mealWindows = [NumMeals]string{
	"07:30–09:30 — Breakfast:",
	"12:30–14:30 — Lunch:",
	"17:00–18:30 — Snack:",
	"20:00–22:00 — Dinner:",
}

// rotationPool is the fixed label pool used both for normalizer defaults and
// for the diversifier's consecutive-window rotation.
var rotationPool = []string{
	"Masoub (banana+dates+milk)",
	"Chicken Kabsa (lean rice)",
	"Jareesh with laban",
	"Ful medames + tamees",
	"Balila cup (chickpeas)",
	"Grilled Hammour + rice + salad",
	"Labneh + cucumbers + olives + bread",
	"Tuna salad + lemon + olive oil",
	"Margoog (light) + salad",
	"Thareed (lean beef + veg)",
	"Harees (light) + salad",
	"Egg shakshouka + bread",
	"Date + laban snack",
}
