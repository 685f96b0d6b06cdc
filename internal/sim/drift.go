package sim

import (
	"github.com/ojrac/opensimplex-go"

	"fitweeks/internal/persona"
	"fitweeks/internal/prng"
)

// Drift amplitudes per week.
const (
	adherenceDriftAmp = 0.05
	sleepDriftAmp     = 0.3
	driftScale        = 0.35 // noise-space step per week; <1 keeps weeks correlated
)

// Drift produces smooth week-over-week variation of a persona's adherence and
// sleep, so multi-week arcs look like habits forming and slipping rather than
// independent coin flips. Deterministic per persona id.
type Drift struct {
	noise opensimplex.Noise
}

func NewDrift(personaID string) Drift {
	return Drift{noise: opensimplex.NewNormalized(prng.Seed(personaID, "drift", "habit", 0))}
}

// eval maps normalized noise [0,1] to [-amp, amp] along one channel.
func (d Drift) eval(channel float64, weekIndex int, amp float64) float64 {
	v := d.noise.Eval2(float64(weekIndex)*driftScale, channel)
	return (v*2.0 - 1.0) * amp
}

// Adherence returns the adherence offset for the given week index, in
// [-0.05, 0.05].
func (d Drift) Adherence(weekIndex int) float64 {
	return d.eval(0.0, weekIndex, adherenceDriftAmp)
}

// Sleep returns the sleep-hours offset for the given week index, in
// [-0.3, 0.3].
func (d Drift) Sleep(weekIndex int) float64 {
	return d.eval(10.0, weekIndex, sleepDriftAmp)
}

// Apply returns the persona with drifted adherence and sleep for one week.
// Adherence stays in [0, 1], sleep in [4, 10].
func (d Drift) Apply(p persona.Persona, weekIndex int) persona.Persona {
	p.Adherence = clampF(p.Adherence+d.Adherence(weekIndex), 0, 1)
	if p.SleepHours > 0 {
		p.SleepHours = clampF(p.SleepHours+d.Sleep(weekIndex), 4, 10)
	}
	return p
}
