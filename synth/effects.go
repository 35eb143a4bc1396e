// This file declares the in-place buffer effects applied after rendering.
package synth

import "math"

// Distort applies a power-law curve to every sample in place:
// sign(s) * refAmplitude * (|s|/refAmplitude)^power.
//
// refAmplitude is the summed nominal peak amplitude of the rendered voices,
// not the instantaneous peak of the buffer; anchoring the curve there keeps
// the distortion character stable across renders whose live level differs.
// Powers below 1 push the signal toward the reference level (saturation),
// powers above 1 pull quiet material toward silence (gating). A zero
// reference leaves the buffer untouched, since only silence can produce it.
func Distort(samples []float64, power, refAmplitude float64) {
	if refAmplitude == 0 {
		return
	}
	for i, s := range samples {
		shaped := refAmplitude * math.Pow(math.Abs(s)/refAmplitude, power)
		if math.Signbit(s) {
			shaped = -shaped
		}
		samples[i] = shaped
	}
}

// Normalize scales the buffer in place so the maximum absolute sample
// becomes exactly 1. A silent buffer is left untouched; silence is a valid
// signal, not an error.
func Normalize(samples []float64) {
	var peak float64
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak == 0 {
		return
	}
	for i := range samples {
		samples[i] /= peak
	}
}
