// Package params is the probabilistic heart of the generator: reusable
// parameter-space templates, per-index sampling, and rendering of the
// sampled parameters into audio.
//
// The pipeline has three stages:
//
//  1. DataParameters - an immutable, validated template describing the
//     whole parameter space: frequency range, chord pool, octave policy,
//     oscillator slots, effects, clip length. Built once through With*
//     calls, each returning a fresh validated value.
//  2. DataPointParameters - one concrete draw from the template,
//     produced by Generate(index). All randomness is consumed here, from
//     a generator seeded only by the index and the template seed, so a
//     datapoint is fully determined by (template, index) and indices can
//     be generated in any order or in parallel.
//  3. Render - turns the concrete parameters into an audio buffer:
//     per-frequency oscillator banks driven by a damped frequency walk,
//     summed, budget-scaled, then run through the sampled effects.
//
// Every template invariant (ordered ranges, valid chord ids, the <= 1
// oscillator amplitude budget, at least one frequency-bearing slot) is
// enforced at construction or at Generate time with typed errors, never
// discovered mid-render.
package params
