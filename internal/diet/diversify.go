package diet

import (
	"math"
	"math/rand"

	"fitweeks/internal/persona"
	"fitweeks/internal/prng"
)

// Params are the diversifier's tuning constants. They were chosen empirically
// in the source experiments; treat them as defaults, not nutrition science.
type Params struct {
	KcalPerKg         float64 // baseline daily kcal per kg bodyweight
	FatLossKcalAdj    float64
	MuscleGainKcalAdj float64
	KcalMin, KcalMax  float64
	TotalJitterPct    float64 // ±jitter applied to kcal and protein
	FatJitterPct      float64 // ±jitter applied to fat grams
	CarbFloor         float64
	FiberMin          float64
	FiberMax          float64
	SodiumBase        float64 // at 70 kg bodyweight
	SodiumPerKg       float64
	SodiumJitter      float64
	SodiumMin         float64
	SodiumMax         float64
	MinShare          float64 // floor added to each Dirichlet-like weight
	MaxDepth          int     // recursion cap; last candidate wins beyond it
}

// DefaultParams mirror the source experiments' constants.
var DefaultParams = Params{
	KcalPerKg:         28.0,
	FatLossKcalAdj:    -250,
	MuscleGainKcalAdj: 150,
	KcalMin:           1600,
	KcalMax:           3600,
	TotalJitterPct:    0.06,
	FatJitterPct:      0.08,
	CarbFloor:         90,
	FiberMin:          24,
	FiberMax:          36,
	SodiumBase:        2000,
	SodiumPerKg:       8,
	SodiumJitter:      350,
	SodiumMin:         1500,
	SodiumMax:         3200,
	MinShare:          0.3,
	MaxDepth:          20,
}

// Diversify forces per-persona/per-week variety onto a plan: totals are
// re-derived from the persona's weight and goal with seeded jitter, meal
// names rotate through the fixed pool, and every total is re-split across
// the four meals with Dirichlet-like weights. If the result is degenerate
// (all meals identical) or too close to last week's plan, it recurses with
// nonce+1, up to DefaultParams.MaxDepth.
func Diversify(p Plan, personaID, weekID string, per persona.Persona, lastWeek *Plan, nonce int) Plan {
	return DiversifyWith(DefaultParams, p, personaID, weekID, per, lastWeek, nonce)
}

// DiversifyWith is Diversify with explicit parameters.
func DiversifyWith(cfg Params, p Plan, personaID, weekID string, per persona.Persona, lastWeek *Plan, nonce int) Plan {
	for depth := 0; ; depth++ {
		r := prng.New(personaID, weekID, "diet", nonce)

		retotal(cfg, &p, per, r)

		// Four consecutive labels from a random window of the rotation pool.
		offset := r.Intn(len(rotationPool) - NumMeals)
		for slot := 0; slot < NumMeals; slot++ {
			p.Meals[slot].Name = rotationPool[offset+slot]
		}

		splitTotals(cfg, &p, r)

		if !allMealsIdentical(p) && !similarOverview(p, lastWeek) {
			return p
		}
		if depth >= cfg.MaxDepth {
			return p
		}
		nonce++
	}
}

// retotal replaces the six totals with goal/weight-informed values plus
// seeded jitter, guaranteeing cross-persona and cross-week differences even
// when the incoming draft was empty or constant.
func retotal(cfg Params, p *Plan, per persona.Persona, r *rand.Rand) {
	w := per.Weight
	if w <= 0 {
		w = 75.0
	}
	goal := per.GoalKind()

	kcal := cfg.KcalPerKg * w
	switch goal {
	case persona.GoalFatLoss:
		kcal += cfg.FatLossKcalAdj
	case persona.GoalMuscleGain:
		kcal += cfg.MuscleGainKcalAdj
	}
	kcal = clamp(prng.Jitter(r, kcal, cfg.TotalJitterPct), cfg.KcalMin, cfg.KcalMax)

	var protein, fat float64
	switch goal {
	case persona.GoalMuscleGain:
		protein = prng.Jitter(r, clamp(1.9*w, 110, 190), cfg.TotalJitterPct)
		fat = prng.Jitter(r, kcal*0.27/9.0, cfg.FatJitterPct)
	case persona.GoalFatLoss:
		protein = prng.Jitter(r, clamp(1.8*w, 100, 180), cfg.TotalJitterPct)
		fat = prng.Jitter(r, kcal*0.30/9.0, cfg.FatJitterPct)
	default:
		protein = prng.Jitter(r, clamp(1.7*w, 95, 175), cfg.TotalJitterPct)
		fat = prng.Jitter(r, kcal*0.28/9.0, cfg.FatJitterPct)
	}

	carbs := (kcal - (protein*4 + fat*9)) / 4.0
	if carbs < cfg.CarbFloor {
		carbs = cfg.CarbFloor
	}

	fiber := prng.Round1(prng.Uniform(r, cfg.FiberMin, cfg.FiberMax))
	sodium := math.Round(clamp(
		cfg.SodiumBase+(w-70.0)*cfg.SodiumPerKg+prng.Uniform(r, -cfg.SodiumJitter, cfg.SodiumJitter),
		cfg.SodiumMin, cfg.SodiumMax))

	p.Totals = Macros{
		Kcal:    prng.Round1(kcal),
		Carbs:   prng.Round1(carbs),
		Fat:     prng.Round1(fat),
		Protein: prng.Round1(protein),
		Fiber:   fiber,
		Sodium:  sodium,
	}
}

// splitTotals distributes each total across the four meals. The last share
// absorbs the rounding remainder so per-meal values sum back to the total
// exactly (to one decimal).
func splitTotals(cfg Params, p *Plan, r *rand.Rand) {
	tv := p.Totals.values()
	var shares [6][NumMeals]float64
	for i, total := range tv {
		shares[i] = split4(cfg, r, total)
	}
	for slot := 0; slot < NumMeals; slot++ {
		p.Meals[slot].Macros = macrosFrom([6]float64{
			shares[0][slot], shares[1][slot], shares[2][slot],
			shares[3][slot], shares[4][slot], shares[5][slot],
		})
	}
}

func split4(cfg Params, r *rand.Rand, total float64) [NumMeals]float64 {
	var out [NumMeals]float64
	if total <= 0 {
		return out
	}
	var weights [NumMeals]float64
	sum := 0.0
	for i := range weights {
		weights[i] = r.Float64() + cfg.MinShare
		sum += weights[i]
	}
	rest := total
	for i := 0; i < NumMeals-1; i++ {
		out[i] = prng.Round1(total * weights[i] / sum)
		rest -= out[i]
	}
	out[NumMeals-1] = prng.Round1(rest)
	return out
}

// allMealsIdentical reports whether every meal matches the first one in all
// six macros (within tolerance) and shares its name.
func allMealsIdentical(p Plan) bool {
	const tol = 1e-6
	first := p.Meals[0]
	for _, m := range p.Meals[1:] {
		if m.Name != first.Name {
			return false
		}
		a, b := m.Macros.values(), first.Macros.values()
		for i := range a {
			if math.Abs(a[i]-b[i]) > tol {
				return false
			}
		}
	}
	return true
}

// similarOverview reports whether this plan repeats last week's: same meal
// names in all four slots, or all six totals nearly equal.
func similarOverview(p Plan, last *Plan) bool {
	if last == nil {
		return false
	}
	sameNames := true
	for i := range p.Meals {
		if p.Meals[i].Name != last.Meals[i].Name {
			sameNames = false
			break
		}
	}
	if sameNames {
		return true
	}
	const tol = 1e-6
	a, b := p.Totals.values(), last.Totals.values()
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
