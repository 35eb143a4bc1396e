// Package synth provides the small signal-module engine behind dataset
// rendering: stream-style oscillators, a frequency random walk, composition
// helpers, and in-place buffer effects.
//
// 🚀 What is a Module?
//
//	A Module produces one sample per Next() call, nominally in [-1, 1].
//	Modules compose: oscillators consume their instantaneous frequency from
//	another Module (a Const for a steady tone, a Walk for wandering pitch),
//	and NewSum/NewGain/NewClamp combine or shape outputs. A fresh module
//	graph replays identically from the same seeds, which is what makes
//	rendered datasets reproducible.
//
// ✨ Building blocks:
//   - Oscillators: NewSine, NewSaw, NewTriangle, NewPulse, NewWavetable —
//     phase-accumulating, frequency-driven per sample
//   - NewNoise — seeded white noise, frequency-independent
//   - NewWalk — damped Gaussian random walk around a nominal value
//   - Const, NewSum, NewGain, NewClamp — composition and shaping
//   - Distort, Normalize — in-place buffer effects
//
// ⚙️ Usage:
//
//	freq := synth.NewWalk(walkSeed, 440, 2.5, 0.9)
//	osc := synth.NewGain(synth.NewSine(freq, 44100), 0.6)
//	for i := 0; i < n; i++ {
//	    buf[i] = osc.Next()
//	}
//
// Modules are deliberately stateful and single-use; build a new graph for
// every render rather than rewinding an old one.
package synth
