package diet

import (
	"strings"

	"github.com/tidwall/gjson"

	"fitweeks/internal/persona"
)

// canonicalKeys maps a case/whitespace-insensitive form of every schema key
// to its canonical spelling.
var canonicalKeys = buildCanonicalKeys()

func buildCanonicalKeys() map[string]string {
	keys := []string{"Note"}
	keys = append(keys, totalKeys[:]...)
	for _, prefix := range mealPrefixes {
		keys = append(keys, prefix)
		for _, suffix := range macroSuffixes {
			keys = append(keys, prefix+"_"+suffix)
		}
	}
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[canonKey(k)] = k
	}
	return out
}

func canonKey(k string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(k), " ,:"))
}

// Normalize coerces an arbitrary flat record into a well-formed Plan:
// key names are matched case/whitespace-insensitively, numeric fields pass
// through lenient parsing (nil and garbage become 0), empty meal names get a
// rotating default label, and all-zero totals are recomputed from the meals.
// Normalizing an already-normalized record is a no-op.
func Normalize(raw map[string]any) Plan {
	rec := make(map[string]any, len(raw))
	for k, v := range raw {
		if canonical, ok := canonicalKeys[canonKey(k)]; ok {
			rec[canonical] = v
		}
	}

	var p Plan
	if note, ok := rec["Note"].(string); ok {
		p.Note = note
	}

	for slot, prefix := range mealPrefixes {
		name, nested := mealName(rec[prefix])
		if name == "" {
			name = rotationPool[slot%len(rotationPool)]
		}
		var vals [6]float64
		for i, suffix := range macroSuffixes {
			full := prefix + "_" + suffix
			v, ok := rec[full]
			if !ok && nested != nil {
				// Some drafts nest the meal's numbers under the meal key.
				if nv, okn := nested[full]; okn {
					v = nv
				} else if nv, okn := nested[suffix]; okn {
					v = nv
				}
			}
			vals[i] = persona.Coerce(v, 0)
		}
		p.Meals[slot] = Meal{Name: name, Macros: macrosFrom(vals)}
	}

	var totals [6]float64
	allZero := true
	for i, k := range totalKeys {
		totals[i] = persona.Coerce(rec[k], 0)
		if totals[i] != 0 {
			allZero = false
		}
	}
	if allZero {
		// All-or-nothing fallback: only a fully missing set of totals is
		// recomputed from the meals.
		p.recomputeTotals()
	} else {
		p.Totals = macrosFrom(totals)
	}

	if p.Note == "" {
		p.Note = "Saudi-inspired plan. Adjust portions if training load changes."
	}
	return p
}

// mealName extracts a label from a meal value that may be a plain string or
// a nested object carrying a "name" field.
func mealName(v any) (string, map[string]any) {
	switch x := v.(type) {
	case string:
		return strings.TrimSpace(x), nil
	case map[string]any:
		name, _ := x["name"].(string)
		return strings.TrimSpace(name), x
	default:
		return "", nil
	}
}

// ParseDraft extracts the first JSON object from free-form provider text
// (tolerating code fences and surrounding prose) and returns its fields as a
// raw record suitable for Normalize. ok is false when no object is found.
func ParseDraft(text string) (map[string]any, bool) {
	obj, ok := firstJSONObject(text)
	if !ok {
		return nil, false
	}
	rec := make(map[string]any)
	obj.ForEach(func(k, v gjson.Result) bool {
		if v.IsObject() {
			sub := make(map[string]any)
			v.ForEach(func(sk, sv gjson.Result) bool {
				sub[sk.String()] = sv.Value()
				return true
			})
			rec[k.String()] = sub
		} else {
			rec[k.String()] = v.Value()
		}
		return true
	})
	return rec, true
}

func firstJSONObject(text string) (gjson.Result, bool) {
	if text == "" {
		return gjson.Result{}, false
	}
	// Prefer fenced blocks when present.
	if i := strings.Index(text, "```"); i != -1 {
		rest := text[i+3:]
		if j := strings.Index(rest, "```"); j != -1 {
			if r, ok := scanObject(rest[:j]); ok {
				return r, true
			}
		}
	}
	return scanObject(text)
}

// scanObject finds the first balanced {...} span that parses as JSON.
func scanObject(text string) (gjson.Result, bool) {
	start := strings.Index(text, "{")
	for start != -1 {
		depth := 0
		for end := start; end < len(text); end++ {
			switch text[end] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					cand := text[start : end+1]
					if gjson.Valid(cand) {
						return gjson.Parse(cand), true
					}
					end = len(text) // abandon this start
				}
			}
		}
		next := strings.Index(text[start+1:], "{")
		if next == -1 {
			break
		}
		start = start + 1 + next
	}
	return gjson.Result{}, false
}
