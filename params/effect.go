package params

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/synthset/dist"
	"github.com/katalvlaran/synthset/synth"
)

// EffectKind enumerates the post-render buffer effects.
type EffectKind int

const (
	Distortion EffectKind = iota
	Normalize
)

// String returns the lower-case kind name.
func (k EffectKind) String() string {
	switch k {
	case Distortion:
		return "distortion"
	case Normalize:
		return "normalize"
	default:
		return fmt.Sprintf("EffectKind(%d)", int(k))
	}
}

// EffectDistribution describes one effect slot of a template: the effect
// kind, its parameter space, and an inclusion probability rolled
// independently per datapoint.
type EffectDistribution struct {
	kind        EffectKind
	probability float64
	power       dist.LogUniform // Distortion only
}

// DistortionEffect describes a power-law waveshaper whose exponent is
// drawn log-uniformly from [powerMin, powerMax] per datapoint.
func DistortionEffect(probability, powerMin, powerMax float64) (EffectDistribution, error) {
	if probability < 0 || probability > 1 {
		return EffectDistribution{}, fmt.Errorf("%w: got %v", ErrProbability, probability)
	}
	power, err := dist.NewLogUniform(powerMin, powerMax)
	if err != nil {
		return EffectDistribution{}, fmt.Errorf("params: distortion power: %w", err)
	}
	return EffectDistribution{kind: Distortion, probability: probability, power: power}, nil
}

// NormalizeEffect describes a peak normalization pass. It has no
// parameters of its own beyond the inclusion probability.
func NormalizeEffect(probability float64) (EffectDistribution, error) {
	if probability < 0 || probability > 1 {
		return EffectDistribution{}, fmt.Errorf("%w: got %v", ErrProbability, probability)
	}
	return EffectDistribution{kind: Normalize, probability: probability}, nil
}

// Kind reports the slot's effect kind.
func (e EffectDistribution) Kind() EffectKind { return e.kind }

// Probability reports the slot's per-datapoint inclusion probability.
func (e EffectDistribution) Probability() float64 { return e.probability }

// sample rolls the slot for one datapoint: inclusion first, then the
// power draw for distortion. Returns ok=false when the effect is absent.
func (e EffectDistribution) sample(rng *rand.Rand) (EffectParameters, bool) {
	if rng.Float64() >= e.probability {
		return EffectParameters{}, false
	}
	p := EffectParameters{kind: e.kind}
	if e.kind == Distortion {
		p.power = e.power.Sample(rng)
	}
	return p, true
}

// EffectParameters is one concrete effect of one datapoint.
type EffectParameters struct {
	kind  EffectKind
	power float64
}

// Kind reports the resolved effect kind.
func (p EffectParameters) Kind() EffectKind { return p.kind }

// Power reports the sampled distortion exponent. Meaningful for
// Distortion only.
func (p EffectParameters) Power() float64 { return p.power }

// Apply runs the effect over samples in place. signalAmplitude is the
// summed nominal amplitude of the datapoint's oscillators; distortion
// uses it as the reference scale so the curve keeps its character across
// datapoints whose live peaks differ. Normalize ignores it.
func (p EffectParameters) Apply(samples []float64, signalAmplitude float64) {
	switch p.kind {
	case Distortion:
		synth.Distort(samples, p.power, signalAmplitude)
	case Normalize:
		synth.Normalize(samples)
	}
}
