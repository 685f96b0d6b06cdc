// Package prng derives reproducible pseudo-random streams from experiment
// coordinates. The same (persona, week, purpose, nonce) tuple always yields
// the same stream; bumping the nonce yields an unrelated one.
package prng

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
)

// Seed hashes the four coordinates into a stable 64-bit seed. Collision
// resistance of the digest is the requirement here, not secrecy.
func Seed(personaID, weekID, purpose string, nonce int) int64 {
	if personaID == "" {
		panic("prng: empty persona id")
	}
	if weekID == "" {
		panic("prng: empty week id")
	}
	if nonce < 0 {
		panic(fmt.Sprintf("prng: negative nonce %d", nonce))
	}
	h := sha256.Sum256(fmt.Appendf(nil, "%s|%s|%s|%d", personaID, weekID, purpose, nonce))
	return int64(binary.BigEndian.Uint64(h[:8]) >> 1)
}

// New returns a rand.Rand seeded for the given coordinates.
func New(personaID, weekID, purpose string, nonce int) *rand.Rand {
	return rand.New(rand.NewSource(Seed(personaID, weekID, purpose, nonce)))
}

// Uniform draws a float64 in [lo, hi) from r.
func Uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Jitter scales v by a uniform factor in [1-pct, 1+pct], rounded to one
// decimal place.
func Jitter(r *rand.Rand, v, pct float64) float64 {
	return Round1(v * Uniform(r, 1.0-pct, 1.0+pct))
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
