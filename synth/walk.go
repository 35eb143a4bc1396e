package synth

import "math/rand"

// walkModule wanders around a nominal value: each sample the accumulated
// offset is damped and perturbed by Gaussian noise.
type walkModule struct {
	rng     *rand.Rand
	nominal float64
	stdDev  float64
	damping float64
	offset  float64
}

// NewWalk returns a damped Gaussian random walk emitting
// nominal + offset, where offset = damping*offset + N(0, stdDev) per sample.
// Driving an oscillator's frequency with a walk turns a steady tone into a
// wandering pitch; the seed makes the wander reproducible.
func NewWalk(seed int64, nominal, stdDev, damping float64) Module {
	return &walkModule{
		rng:     rand.New(rand.NewSource(seed)),
		nominal: nominal,
		stdDev:  stdDev,
		damping: damping,
	}
}

func (w *walkModule) Next() float64 {
	w.offset = w.offset*w.damping + w.rng.NormFloat64()*w.stdDev

	return w.nominal + w.offset
}
