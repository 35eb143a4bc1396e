// This file declares the oscillator modules. All waveform oscillators share
// the same phase accumulator: each sample reads the instantaneous frequency
// from the frequency source, evaluates the waveform at the current phase,
// then advances the phase by frequency/sampleRate with wraparound.
package synth

import (
	"errors"
	"math"
	"math/rand"
)

// ErrEmptyTable indicates a wavetable oscillator built from an empty table.
var ErrEmptyTable = errors.New("synth: wavetable must contain at least one sample")

// phaseOscillator evaluates a waveform over an accumulated phase in [0, 1).
type phaseOscillator struct {
	freq       Module
	sampleRate float64
	phase      float64
	wave       func(phase float64) float64
}

func (o *phaseOscillator) Next() float64 {
	out := o.wave(o.phase)
	o.phase += o.freq.Next() / o.sampleRate
	o.phase -= math.Floor(o.phase)

	return out
}

// NewSine returns a sine oscillator driven by the freq source.
func NewSine(freq Module, sampleRate int) Module {
	return &phaseOscillator{
		freq:       freq,
		sampleRate: float64(sampleRate),
		wave: func(phase float64) float64 {
			return math.Sin(2 * math.Pi * phase)
		},
	}
}

// NewSaw returns a rising sawtooth oscillator: -1 at phase 0, +1 at phase 1.
func NewSaw(freq Module, sampleRate int) Module {
	return &phaseOscillator{
		freq:       freq,
		sampleRate: float64(sampleRate),
		wave: func(phase float64) float64 {
			return 2*phase - 1
		},
	}
}

// NewTriangle returns a triangle oscillator rising from -1 to +1 over the
// first half cycle and falling back over the second.
func NewTriangle(freq Module, sampleRate int) Module {
	return &phaseOscillator{
		freq:       freq,
		sampleRate: float64(sampleRate),
		wave: func(phase float64) float64 {
			if phase < 0.5 {
				return 4*phase - 1
			}

			return 3 - 4*phase
		},
	}
}

// NewPulse returns a pulse oscillator emitting +1 while the phase is below
// width and -1 after; width 0.5 gives a square wave.
func NewPulse(freq Module, width float64, sampleRate int) Module {
	return &phaseOscillator{
		freq:       freq,
		sampleRate: float64(sampleRate),
		wave: func(phase float64) float64 {
			if phase < width {
				return 1
			}

			return -1
		},
	}
}

// NewWavetable returns an oscillator reading one cycle from table with
// linear interpolation between neighboring entries.
func NewWavetable(table []float64, freq Module, sampleRate int) (Module, error) {
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}

	return &wavetableOscillator{
		freq:       freq,
		sampleRate: float64(sampleRate),
		table:      table,
	}, nil
}

type wavetableOscillator struct {
	freq       Module
	sampleRate float64
	phase      float64
	table      []float64
}

func (w *wavetableOscillator) Next() float64 {
	pos := w.phase * float64(len(w.table))
	lo := int(pos)
	frac := pos - float64(lo)
	if lo >= len(w.table) {
		// Rounding can land the phase exactly on the table end.
		lo, frac = 0, 0
	}
	hi := lo + 1
	if hi == len(w.table) {
		hi = 0
	}
	out := w.table[lo] + (w.table[hi]-w.table[lo])*frac

	w.phase += w.freq.Next() / w.sampleRate
	w.phase -= math.Floor(w.phase)

	return out
}

// noiseModule emits seeded uniform white noise in [-1, 1); the frequency of
// the surrounding voice does not influence it.
type noiseModule struct {
	rng *rand.Rand
}

// NewNoise returns a white-noise module with its own generator, so renders
// replay exactly from the seed.
func NewNoise(seed int64) Module {
	return &noiseModule{rng: rand.New(rand.NewSource(seed))}
}

func (n *noiseModule) Next() float64 {
	return n.rng.Float64()*2 - 1
}
