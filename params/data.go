package params

import (
	"fmt"

	"github.com/katalvlaran/synthset/chord"
	"github.com/katalvlaran/synthset/dist"
	"github.com/katalvlaran/synthset/pitch"
)

// DataParameters is the immutable, validated template describing one
// dataset's parameter space. Build it with New, refine it with the With*
// methods (each returns a new value, the receiver is never modified),
// then call Generate per index.
//
// The base frequency range is stored as a uniform distribution over
// perceptual map coordinates, so base pitches are spread evenly in log
// frequency rather than in Hz.
type DataParameters struct {
	sampleRate    int
	frequencyDist dist.Uniform    // over perceptual map coordinates
	stdDevDist    dist.LogUniform // frequency walk std dev, cents
	chords        []int
	octaves       chord.OctaveParameters
	oscillators   []OscillatorDistribution
	effects       []EffectDistribution
	numSamples    int
	seedOffset    uint64
}

// New builds a template with no oscillators or effects yet.
//
// frequencyRange is the {min, max} base frequency in Hz, mapped through
// the perceptual coordinate space; stdDevRange is the {min, max} of the
// per-datapoint frequency walk standard deviation, in cents. chords
// lists the allowed chord table indices.
//
// Returns:
//   - ErrSampleRate, ErrNumSamples, ErrFrequencyRange, ErrNoChords or
//     ErrChordType on an invalid argument;
//   - a dist error (wrapped) on an invalid std dev range.
func New(
	sampleRate int,
	frequencyRange, stdDevRange [2]float64,
	chords []int,
	octaves chord.OctaveParameters,
	numSamples int,
) (DataParameters, error) {
	if sampleRate <= 0 {
		return DataParameters{}, fmt.Errorf("%w: got %d", ErrSampleRate, sampleRate)
	}
	if numSamples <= 0 {
		return DataParameters{}, fmt.Errorf("%w: got %d", ErrNumSamples, numSamples)
	}
	if frequencyRange[0] <= 0 || frequencyRange[0] >= frequencyRange[1] {
		return DataParameters{}, fmt.Errorf("%w: got [%v, %v]", ErrFrequencyRange, frequencyRange[0], frequencyRange[1])
	}
	if len(chords) == 0 {
		return DataParameters{}, ErrNoChords
	}
	for _, id := range chords {
		if id < 0 || id >= len(chord.Types) {
			return DataParameters{}, fmt.Errorf("%w: got %d with %d chord types", ErrChordType, id, len(chord.Types))
		}
	}

	frequencyDist, err := dist.NewUniform(pitch.ToMap(frequencyRange[0]), pitch.ToMap(frequencyRange[1]))
	if err != nil {
		return DataParameters{}, fmt.Errorf("params: frequency distribution: %w", err)
	}
	stdDevDist, err := dist.NewLogUniform(stdDevRange[0], stdDevRange[1])
	if err != nil {
		return DataParameters{}, fmt.Errorf("params: frequency std dev: %w", err)
	}

	return DataParameters{
		sampleRate:    sampleRate,
		frequencyDist: frequencyDist,
		stdDevDist:    stdDevDist,
		chords:        append([]int(nil), chords...),
		octaves:       octaves,
		numSamples:    numSamples,
		seedOffset:    hash64(hash64(0)),
	}, nil
}

// clone deep-copies the template so With* methods never alias a slice
// with their receiver.
func (p DataParameters) clone() DataParameters {
	q := p
	q.chords = append([]int(nil), p.chords...)
	q.oscillators = append([]OscillatorDistribution(nil), p.oscillators...)
	q.effects = append([]EffectDistribution(nil), p.effects...)
	return q
}

// WithSeed returns a copy of the template whose seed offset derives from
// seed. Two templates differing only in seed produce unrelated datasets;
// the same seed reproduces the same dataset bit for bit.
func (p DataParameters) WithSeed(seed uint64) DataParameters {
	q := p.clone()
	q.seedOffset = hash64(hash64(seed))
	return q
}

// WithOscillator returns a copy of the template with one more oscillator
// slot. Fails with ErrAmplitudeBudget if the sum of per-slot amplitude
// maxima would exceed 1: each slot must keep summation headroom even
// when every slot rolls its peak.
func (p DataParameters) WithOscillator(osc OscillatorDistribution) (DataParameters, error) {
	q := p.clone()
	q.oscillators = append(q.oscillators, osc)

	var sum float64
	for _, o := range q.oscillators {
		sum += o.MaxAmplitude()
	}
	if sum > 1 {
		return DataParameters{}, fmt.Errorf("%w: got %v", ErrAmplitudeBudget, sum)
	}
	return q, nil
}

// WithWavetable is shorthand for WithOscillator(WavetableOscillator(...)).
func (p DataParameters) WithWavetable(table []float64, probability, ampMin, ampMax float64) (DataParameters, error) {
	osc, err := WavetableOscillator(table, probability, ampMin, ampMax)
	if err != nil {
		return DataParameters{}, err
	}
	return p.WithOscillator(osc)
}

// WithEffect returns a copy of the template with one more effect slot.
// Effects apply in the order they were added.
func (p DataParameters) WithEffect(effect EffectDistribution) DataParameters {
	q := p.clone()
	q.effects = append(q.effects, effect)
	return q
}

// SampleRate reports the template's output sample rate in Hz.
func (p DataParameters) SampleRate() int { return p.sampleRate }

// NumSamples reports the length of every generated clip in frames.
func (p DataParameters) NumSamples() int { return p.numSamples }

// Generate samples the concrete parameters for one datapoint index.
//
// Fails with ErrNoFrequencyOscillator if no slot could ever produce a
// pitched oscillator, counting a slot with inclusion probability zero as
// never producing one; the per-datapoint rejection loop would otherwise
// never terminate.
func (p DataParameters) Generate(index uint64) (DataPointParameters, error) {
	bearing := false
	for _, o := range p.oscillators {
		if o.FrequencyBearing() && o.Probability() > 0 {
			bearing = true
			break
		}
	}
	if !bearing {
		return DataPointParameters{}, ErrNoFrequencyOscillator
	}
	return newDataPointParameters(p, indexSeed(index, p.seedOffset))
}
