// Package unique fingerprints diet plans and weekly logs so a run can reject
// near-duplicate artifacts before they are persisted.
package unique

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"math"
	"strings"
	"sync"

	"fitweeks/internal/diet"
)

// fingerprintLen is the number of hex characters kept from the digest.
const fingerprintLen = 16

// MaxRetries is how many regeneration attempts a caller should make before
// accepting a duplicate artifact anyway.
const MaxRetries = 4

func digest(parts []string) string {
	h := sha1.Sum([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(h[:])[:fingerprintLen]
}

func round10(v float64) int {
	return int(math.Round(v/10.0)) * 10
}

// DietFingerprint identifies a plan by its four meal names plus kcal and
// sodium totals rounded to the nearest 10, so cosmetic decimal noise does not
// defeat duplicate detection.
func DietFingerprint(p diet.Plan) string {
	parts := make([]string, 0, diet.NumMeals+2)
	for _, m := range p.Meals {
		parts = append(parts, strings.ToLower(strings.TrimSpace(m.Name)))
	}
	parts = append(parts,
		fmt.Sprintf("kcal:%d", round10(p.Totals.Kcal)),
		fmt.Sprintf("na:%d", round10(p.Totals.Sodium)))
	return digest(parts)
}

// LogFingerprint identifies a weekly log by its narrative fields only; the
// numeric outcome is allowed to repeat across weeks.
func LogFingerprint(feedback, notes string) string {
	return digest([]string{
		strings.ToLower(strings.TrimSpace(feedback)),
		strings.ToLower(strings.TrimSpace(notes)),
	})
}

// Tracker is a run-scoped set of fingerprints, safe for concurrent use.
type Tracker struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{seen: make(map[string]struct{})}
}

// Add records fp and reports whether it was new.
func (t *Tracker) Add(fp string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, dup := t.seen[fp]; dup {
		return false
	}
	t.seen[fp] = struct{}{}
	return true
}

// Len reports how many distinct fingerprints the run has produced.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.seen)
}

// Reset clears the set for a fresh run.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seen = make(map[string]struct{})
}
