package params

import (
	"math/rand"

	"github.com/katalvlaran/synthset/audio"
	"github.com/katalvlaran/synthset/chord"
	"github.com/katalvlaran/synthset/pitch"
	"github.com/katalvlaran/synthset/synth"
)

// walkDamping is the fixed damping factor of the per-oscillator
// frequency random walk.
const walkDamping = 0.9

// DataPointParameters is one concrete draw from a template: every
// random decision for one datapoint, fully resolved. It is plain data,
// safe to copy, and consumed once by Render.
type DataPointParameters struct {
	// SampleRate is the output sample rate in Hz.
	SampleRate int
	// BaseFrequencyMap is the perceptual map coordinate of the base
	// frequency, kept so labels can report the position inside the
	// audible range rather than only the raw Hz value.
	BaseFrequencyMap float64
	// BaseFrequency is the chord root in Hz before octave placement.
	BaseFrequency float64
	// FrequencyStdDev is the frequency walk standard deviation in cents.
	FrequencyStdDev float64
	// FrequencyWalkSeed seeds the per-oscillator frequency walks.
	FrequencyWalkSeed uint64
	// ChordType indexes chord.Types.
	ChordType int
	// Frequencies is the expanded note set: root octaves first, then
	// each chord interval's octaves in table order.
	Frequencies []float64
	// Oscillators holds the slots that rolled inclusion, in template
	// order. At least one entry is frequency-bearing.
	Oscillators []OscillatorParameters
	// Effects holds the effects that rolled inclusion, in template
	// order.
	Effects []EffectParameters
	// NumSamples is the clip length in frames.
	NumSamples int
}

// newDataPointParameters consumes the datapoint's entire random stream.
// The draw order below is a compatibility contract: changing it changes
// every dataset generated from existing seeds.
func newDataPointParameters(p DataParameters, seed uint64) (DataPointParameters, error) {
	rng := rand.New(rand.NewSource(int64(seed)))

	// 1) Base frequency, via its perceptual map coordinate.
	frequencyMap := p.frequencyDist.Sample(rng)
	baseFrequency := pitch.FromMap(frequencyMap)

	// 2) Oscillator slots. Resample the whole bank until a pitched
	// oscillator is present; Generate has verified one is possible.
	var oscillators []OscillatorParameters
	for {
		oscillators = oscillators[:0]
		for _, o := range p.oscillators {
			if op, ok := o.sample(rng); ok {
				oscillators = append(oscillators, op)
			}
		}
		if anyFrequencyBearing(oscillators) {
			break
		}
	}

	// 3) Chord type.
	chordType := p.chords[rng.Intn(len(p.chords))]

	// 4) Note set: root octaves, then octaves per chord interval.
	frequencies, err := p.octaves.GenerateFrequencies(rng, baseFrequency, true)
	if err != nil {
		return DataPointParameters{}, err
	}
	for _, f := range chord.Types[chordType].Frequencies(baseFrequency)[1:] {
		spread, err := p.octaves.GenerateFrequencies(rng, f, false)
		if err != nil {
			return DataPointParameters{}, err
		}
		frequencies = append(frequencies, spread...)
	}

	// 5) Walk std dev, 6) walk seed, 7) effects.
	stdDev := p.stdDevDist.Sample(rng)
	walkSeed := rng.Uint64()

	var effects []EffectParameters
	for _, e := range p.effects {
		if ep, ok := e.sample(rng); ok {
			effects = append(effects, ep)
		}
	}

	return DataPointParameters{
		SampleRate:        p.sampleRate,
		BaseFrequencyMap:  frequencyMap,
		BaseFrequency:     baseFrequency,
		FrequencyStdDev:   stdDev,
		FrequencyWalkSeed: walkSeed,
		ChordType:         chordType,
		Frequencies:       frequencies,
		Oscillators:       oscillators,
		Effects:           effects,
		NumSamples:        p.numSamples,
	}, nil
}

func anyFrequencyBearing(oscillators []OscillatorParameters) bool {
	for _, o := range oscillators {
		if o.FrequencyBearing() {
			return true
		}
	}
	return false
}

// HasFrequencyOscillator reports whether at least one included
// oscillator tracks a pitch. True for every generated datapoint.
func (p DataPointParameters) HasFrequencyOscillator() bool {
	return anyFrequencyBearing(p.Oscillators)
}

// TotalAmplitude returns the summed peak amplitude of the included
// oscillators, the nominal full-scale reference of the datapoint.
func (p DataPointParameters) TotalAmplitude() float64 {
	var sum float64
	for _, o := range p.Oscillators {
		sum += o.Amplitude()
	}
	return sum
}

// Render synthesizes the datapoint into an audio buffer.
//
// Every expanded frequency gets its own copy of the oscillator bank.
// Pitched oscillators follow a damped random walk around their nominal
// frequency, with the std dev converted from cents at that frequency and
// a per-instance walk seed derived from FrequencyWalkSeed; noise copies
// replay the same stored noise seed at every frequency. The bank sum is
// scaled by 1/len(Frequencies) to keep the amplitude budget independent
// of chord size, pulled through the clipping check, and finally run
// through the effects in order with TotalAmplitude as reference.
//
// Returns the rendered audio, a *audio.ClippingError if any raw sample
// leaves [-1, 1], or a module construction error.
func (p DataPointParameters) Render() (audio.Audio, error) {
	modules := make([]synth.Module, 0, len(p.Frequencies)*len(p.Oscillators))
	ordinal := uint64(0)
	for _, frequency := range p.Frequencies {
		stdDevHz := pitch.CentsToHz(frequency, p.FrequencyStdDev)
		for _, osc := range p.Oscillators {
			var freq synth.Module
			if osc.FrequencyBearing() {
				walkSeed := hash64(ordinal) + p.FrequencyWalkSeed
				freq = synth.NewWalk(int64(walkSeed), frequency, stdDevHz, walkDamping)
			}
			ordinal++

			m, err := osc.Module(freq, p.SampleRate)
			if err != nil {
				return audio.Audio{}, err
			}
			modules = append(modules, synth.NewGain(m, osc.Amplitude()))
		}
	}

	total := synth.NewGain(synth.NewSum(modules...), 1/float64(len(p.Frequencies)))
	out, err := audio.FromModule(total, p.SampleRate, p.NumSamples)
	if err != nil {
		return audio.Audio{}, err
	}

	reference := p.TotalAmplitude()
	for _, effect := range p.Effects {
		effect.Apply(out.Samples, reference)
	}
	return out, nil
}
