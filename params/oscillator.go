package params

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/synthset/dist"
	"github.com/katalvlaran/synthset/synth"
)

// OscillatorKind enumerates the waveform families an oscillator slot can
// resolve to.
type OscillatorKind int

const (
	Sine OscillatorKind = iota
	Saw
	Pulse
	Triangle
	Noise
	Wavetable
)

// String returns the lower-case kind name.
func (k OscillatorKind) String() string {
	switch k {
	case Sine:
		return "sine"
	case Saw:
		return "saw"
	case Pulse:
		return "pulse"
	case Triangle:
		return "triangle"
	case Noise:
		return "noise"
	case Wavetable:
		return "wavetable"
	default:
		return fmt.Sprintf("OscillatorKind(%d)", int(k))
	}
}

// FrequencyBearing reports whether the kind tracks a pitch. Noise is the
// only kind that does not; a datapoint made purely of noise would carry
// no ground-truth frequency to learn from.
func (k OscillatorKind) FrequencyBearing() bool { return k != Noise }

// OscillatorDistribution describes one oscillator slot of a template: a
// waveform kind with its kind-specific parameter space, an inclusion
// probability rolled independently per datapoint, and a log-uniform
// amplitude range.
type OscillatorDistribution struct {
	kind        OscillatorKind
	probability float64
	pulseWidth  dist.Uniform // Pulse only
	table       []float64    // Wavetable only
	amplitude   dist.LogUniform
}

// SineOscillator describes a slot resolving to a sine wave.
func SineOscillator(probability, ampMin, ampMax float64) (OscillatorDistribution, error) {
	return newOscillatorDistribution(Sine, probability, ampMin, ampMax)
}

// SawOscillator describes a slot resolving to a rising sawtooth.
func SawOscillator(probability, ampMin, ampMax float64) (OscillatorDistribution, error) {
	return newOscillatorDistribution(Saw, probability, ampMin, ampMax)
}

// TriangleOscillator describes a slot resolving to a triangle wave.
func TriangleOscillator(probability, ampMin, ampMax float64) (OscillatorDistribution, error) {
	return newOscillatorDistribution(Triangle, probability, ampMin, ampMax)
}

// PulseOscillator describes a slot resolving to a pulse wave whose duty
// cycle is drawn uniformly from [widthMin, widthMax] per datapoint.
func PulseOscillator(probability, widthMin, widthMax, ampMin, ampMax float64) (OscillatorDistribution, error) {
	o, err := newOscillatorDistribution(Pulse, probability, ampMin, ampMax)
	if err != nil {
		return OscillatorDistribution{}, err
	}
	o.pulseWidth, err = dist.NewUniform(widthMin, widthMax)
	if err != nil {
		return OscillatorDistribution{}, fmt.Errorf("params: pulse width: %w", err)
	}
	return o, nil
}

// NoiseOscillator describes a slot resolving to white noise with a fresh
// generator seed per datapoint. Noise is not frequency-bearing.
func NoiseOscillator(probability, ampMin, ampMax float64) (OscillatorDistribution, error) {
	return newOscillatorDistribution(Noise, probability, ampMin, ampMax)
}

// WavetableOscillator describes a slot resolving to a single-cycle
// wavetable scan. The table is copied and must be non-empty.
func WavetableOscillator(table []float64, probability, ampMin, ampMax float64) (OscillatorDistribution, error) {
	if len(table) == 0 {
		return OscillatorDistribution{}, fmt.Errorf("params: wavetable oscillator: %w", synth.ErrEmptyTable)
	}
	o, err := newOscillatorDistribution(Wavetable, probability, ampMin, ampMax)
	if err != nil {
		return OscillatorDistribution{}, err
	}
	o.table = append([]float64(nil), table...)
	return o, nil
}

func newOscillatorDistribution(kind OscillatorKind, probability, ampMin, ampMax float64) (OscillatorDistribution, error) {
	if probability < 0 || probability > 1 {
		return OscillatorDistribution{}, fmt.Errorf("%w: got %v", ErrProbability, probability)
	}
	if ampMin < 0 || ampMax < ampMin || ampMax > 1 {
		return OscillatorDistribution{}, fmt.Errorf("%w: got [%v, %v]", ErrAmplitudeRange, ampMin, ampMax)
	}
	amplitude, err := dist.NewLogUniform(ampMin, ampMax)
	if err != nil {
		return OscillatorDistribution{}, fmt.Errorf("params: amplitude distribution: %w", err)
	}
	return OscillatorDistribution{
		kind:        kind,
		probability: probability,
		amplitude:   amplitude,
	}, nil
}

// Kind reports the slot's waveform kind.
func (o OscillatorDistribution) Kind() OscillatorKind { return o.kind }

// Probability reports the slot's per-datapoint inclusion probability.
func (o OscillatorDistribution) Probability() float64 { return o.probability }

// MaxAmplitude reports the upper bound of the slot's amplitude range,
// the slot's contribution to the template amplitude budget.
func (o OscillatorDistribution) MaxAmplitude() float64 { return o.amplitude.Max() }

// FrequencyBearing reports whether the slot can produce a pitched
// oscillator.
func (o OscillatorDistribution) FrequencyBearing() bool { return o.kind.FrequencyBearing() }

// sample rolls the slot for one datapoint. The draw order is fixed and
// part of the reproducibility contract: inclusion, then the kind-specific
// sub-parameter, then amplitude. Returns ok=false when the slot sits this
// datapoint out.
func (o OscillatorDistribution) sample(rng *rand.Rand) (OscillatorParameters, bool) {
	if rng.Float64() >= o.probability {
		return OscillatorParameters{}, false
	}
	p := OscillatorParameters{kind: o.kind, table: o.table}
	switch o.kind {
	case Pulse:
		p.pulseWidth = o.pulseWidth.Sample(rng)
	case Noise:
		p.noiseSeed = rng.Uint64()
	}
	p.amplitude = o.amplitude.Sample(rng)
	return p, true
}

// OscillatorParameters is one concrete, fully resolved oscillator of one
// datapoint: the kind, its resolved sub-parameter and its amplitude.
type OscillatorParameters struct {
	kind       OscillatorKind
	pulseWidth float64
	noiseSeed  uint64
	table      []float64
	amplitude  float64
}

// Kind reports the resolved waveform kind.
func (p OscillatorParameters) Kind() OscillatorKind { return p.kind }

// Amplitude reports the sampled peak amplitude.
func (p OscillatorParameters) Amplitude() float64 { return p.amplitude }

// FrequencyBearing reports whether the oscillator tracks a pitch.
func (p OscillatorParameters) FrequencyBearing() bool { return p.kind.FrequencyBearing() }

// PulseWidth reports the resolved duty cycle. Meaningful for Pulse only.
func (p OscillatorParameters) PulseWidth() float64 { return p.pulseWidth }

// Module builds the render module for this oscillator at the given
// sample rate. Pitched kinds follow the freq module sample by sample;
// noise ignores freq entirely and is clamped to [-1, 1].
func (p OscillatorParameters) Module(freq synth.Module, sampleRate int) (synth.Module, error) {
	switch p.kind {
	case Sine:
		return synth.NewSine(freq, sampleRate), nil
	case Saw:
		return synth.NewSaw(freq, sampleRate), nil
	case Pulse:
		return synth.NewPulse(freq, p.pulseWidth, sampleRate), nil
	case Triangle:
		return synth.NewTriangle(freq, sampleRate), nil
	case Noise:
		return synth.NewClamp(synth.NewNoise(int64(p.noiseSeed)), -1, 1), nil
	case Wavetable:
		return synth.NewWavetable(p.table, freq, sampleRate)
	default:
		return nil, fmt.Errorf("params: unknown oscillator kind %d", int(p.kind))
	}
}
