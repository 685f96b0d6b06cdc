package persona

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Coerce leniently parses a numeric value that may arrive as a float, an int,
// or a string with thousands separators or trailing units ("1,850 kcal").
// nil and unparsable values fall back to def.
func Coerce(v any, def float64) float64 {
	switch x := v.(type) {
	case nil:
		return def
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case string:
		return coerceString(x, def)
	default:
		return def
	}
}

// CoerceOK is Coerce with an explicit success flag, for callers that must
// distinguish "absent or garbage" from a genuine zero.
func CoerceOK(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(x), ",", "")
		end := len(s)
		for end > 0 {
			c := s[end-1]
			if (c >= '0' && c <= '9') || c == '.' {
				break
			}
			end--
		}
		f, err := strconv.ParseFloat(s[:end], 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func coerceString(s string, def float64) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return def
	}
	// Strip trailing non-numeric characters ("72kg", "2000 kcal/day").
	end := len(s)
	for end > 0 {
		c := s[end-1]
		if (c >= '0' && c <= '9') || c == '.' {
			break
		}
		end--
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return def
	}
	return f
}

// ParseAdherence normalizes an adherence value to [0,1]. Accepts numbers,
// numeric strings, and the categorical labels used by the roster.
func ParseAdherence(v any) float64 {
	const def = 0.65
	switch x := v.(type) {
	case nil:
		return def
	case string:
		s := strings.ToLower(strings.TrimSpace(x))
		switch {
		case s == "":
			return def
		case strings.Contains(s, "high"):
			return 0.85
		case strings.Contains(s, "med"), strings.Contains(s, "mod"):
			return 0.65
		case strings.Contains(s, "low"):
			return 0.40
		}
		f := coerceString(s, def)
		return clamp01(f)
	default:
		return clamp01(Coerce(v, def))
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// firstKey returns the first present key's value from a record, tolerating
// the typo-variant spellings that exist in the roster.
func firstKey(rec map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

func stringOf(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// FromRecord builds a Persona from a loosely typed roster record. All fields
// except the id are optional.
func FromRecord(pid string, rec map[string]any) Persona {
	p := Persona{PID: pid}
	p.AgeBand = stringOf(firstKey(rec, "Age_band", "Age band"))
	p.Sex = stringOf(firstKey(rec, "Sex"))
	p.BMI = Coerce(firstKey(rec, "BMI"), 0)
	p.DaysPerWeek = int(Coerce(firstKey(rec, "Days_per_week", "Days per week"), 0))
	p.FitnessLevel = stringOf(firstKey(rec, "Current_fitness_level"))
	p.PrimaryGoal = stringOf(firstKey(rec, "Primary_goal", "Primary goal"))
	p.CookingSkill = stringOf(firstKey(rec, "Cooking_skill"))
	p.Barrier = stringOf(firstKey(rec, "Biggest_barrier"))
	p.Motivation = stringOf(firstKey(rec, "Motivation_to_workout"))
	p.Injuries = stringOf(firstKey(rec, "Injury_history"))
	p.BudgetSARPerDay = Coerce(firstKey(rec, "Budjet_SAR_per_day", "Budget_SAR_per_day", "Budget_per_day_SAR"), 0)
	p.Adherence = ParseAdherence(firstKey(rec, "Adherence_propensity", "Adherence propensity"))
	p.Weight = Coerce(firstKey(rec, "Weight_kg"), 0)
	p.MuscleMass = Coerce(firstKey(rec, "Muscle_mass_kg"), 0)
	p.FatPercent = Coerce(firstKey(rec, "Fat_percent"), 0)
	p.SleepHours = Coerce(firstKey(rec, "Sleep_hours"), 0)
	p.Notes = stringOf(firstKey(rec, "notes"))
	return p
}

// ParseRoster reads a JSON array of persona records; each element must carry
// an "ID" field. Records without one are skipped.
func ParseRoster(data []byte) []Persona {
	var out []Persona
	gjson.ParseBytes(data).ForEach(func(_, row gjson.Result) bool {
		pid := strings.TrimSpace(row.Get("ID").String())
		if pid == "" {
			pid = strings.TrimSpace(row.Get("id").String())
		}
		if pid == "" {
			return true
		}
		rec := make(map[string]any)
		row.ForEach(func(k, v gjson.Result) bool {
			rec[k.String()] = v.Value()
			return true
		})
		out = append(out, FromRecord(pid, rec))
		return true
	})
	return out
}
