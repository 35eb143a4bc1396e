// Package dist provides bijective mappings between a linear coordinate in
// [-1, 1] and a physical value range, on either a logarithmic (LogUniform)
// or linear (Uniform) scale, plus seeded sampling over those ranges.
//
// The coordinate ("map value") is what a training label stores: it locates a
// sampled value inside its configured range independently of the range's
// physical units, so frequencies, amplitudes and distortion powers all
// become comparable [-1, 1] features.
//
// ⚙️ Usage:
//
//	amp, err := dist.NewLogUniform(0.1, 0.8)
//	if err != nil { ... }
//	coord, value := amp.SampleWithMap(rng) // coord ∈ [-1,1], value ∈ [0.1,0.8]
//	back := amp.ValueToMap(value)          // == coord within 1e-4
//
// Both spaces are immutable value types; construction validates the range
// once and every later call is pure.
package dist
