package params_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synthset/chord"
	"github.com/katalvlaran/synthset/dist"
	"github.com/katalvlaran/synthset/params"
	"github.com/katalvlaran/synthset/pitch"
)

// wideOctaves spans the whole audible range so octave placement never
// constrains a test that is about something else.
func wideOctaves(t *testing.T) chord.OctaveParameters {
	t.Helper()
	oct, err := chord.NewOctaveParameters(0, 0, 20, 20000)
	require.NoError(t, err)
	return oct
}

// chordOctaves is a production-shaped policy with real octave
// duplication pressure.
func chordOctaves() (chord.OctaveParameters, error) {
	return chord.NewOctaveParameters(0.5, 0.3, 90, 10000)
}

// singleNoteTemplate is the smallest useful template: one guaranteed
// sine slot, single-note chords, no octave duplication, no walk wobble.
func singleNoteTemplate(t *testing.T) params.DataParameters {
	t.Helper()
	p, err := params.New(44100, [2]float64{50, 2000}, [2]float64{0, 0}, []int{0}, wideOctaves(t), 256)
	require.NoError(t, err)
	sine, err := params.SineOscillator(1, 0.5, 0.7)
	require.NoError(t, err)
	p, err = p.WithOscillator(sine)
	require.NoError(t, err)
	return p
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	oct := wideOctaves(t)
	valid := func() (params.DataParameters, error) {
		return params.New(44100, [2]float64{50, 2000}, [2]float64{0.5, 3}, []int{0, 1}, oct, 256)
	}
	_, err := valid()
	require.NoError(t, err)

	_, err = params.New(0, [2]float64{50, 2000}, [2]float64{0.5, 3}, []int{0}, oct, 256)
	assert.ErrorIs(t, err, params.ErrSampleRate)

	_, err = params.New(44100, [2]float64{50, 2000}, [2]float64{0.5, 3}, []int{0}, oct, 0)
	assert.ErrorIs(t, err, params.ErrNumSamples)

	_, err = params.New(44100, [2]float64{0, 2000}, [2]float64{0.5, 3}, []int{0}, oct, 256)
	assert.ErrorIs(t, err, params.ErrFrequencyRange)

	_, err = params.New(44100, [2]float64{2000, 50}, [2]float64{0.5, 3}, []int{0}, oct, 256)
	assert.ErrorIs(t, err, params.ErrFrequencyRange)

	_, err = params.New(44100, [2]float64{50, 50}, [2]float64{0.5, 3}, []int{0}, oct, 256)
	assert.ErrorIs(t, err, params.ErrFrequencyRange)

	_, err = params.New(44100, [2]float64{50, 2000}, [2]float64{3, 0.5}, []int{0}, oct, 256)
	assert.ErrorIs(t, err, dist.ErrInvertedRange)

	_, err = params.New(44100, [2]float64{50, 2000}, [2]float64{-1, 3}, []int{0}, oct, 256)
	assert.ErrorIs(t, err, dist.ErrNegativeMin)

	_, err = params.New(44100, [2]float64{50, 2000}, [2]float64{0.5, 3}, nil, oct, 256)
	assert.ErrorIs(t, err, params.ErrNoChords)

	_, err = params.New(44100, [2]float64{50, 2000}, [2]float64{0.5, 3}, []int{-1}, oct, 256)
	assert.ErrorIs(t, err, params.ErrChordType)

	_, err = params.New(44100, [2]float64{50, 2000}, [2]float64{0.5, 3}, []int{len(chord.Types)}, oct, 256)
	assert.ErrorIs(t, err, params.ErrChordType)
}

func TestWithOscillator_AmplitudeBudget(t *testing.T) {
	t.Parallel()

	p, err := params.New(44100, [2]float64{50, 2000}, [2]float64{0.5, 3}, []int{0}, wideOctaves(t), 256)
	require.NoError(t, err)

	half, err := params.SineOscillator(1, 0.1, 0.5)
	require.NoError(t, err)

	// 0.5 + 0.5 lands exactly on the budget and is accepted.
	p, err = p.WithOscillator(half)
	require.NoError(t, err)
	p, err = p.WithOscillator(half)
	require.NoError(t, err)

	// One more slot of any size overflows.
	tiny, err := params.SineOscillator(1, 0.01, 0.01)
	require.NoError(t, err)
	_, err = p.WithOscillator(tiny)
	assert.ErrorIs(t, err, params.ErrAmplitudeBudget)

	// The failed add must not have touched the receiver.
	dp, err := p.Generate(0)
	require.NoError(t, err)
	assert.Len(t, dp.Oscillators, 2)
}

func TestGenerate_RequiresFrequencyBearingSlot(t *testing.T) {
	t.Parallel()

	base, err := params.New(44100, [2]float64{50, 2000}, [2]float64{0.5, 3}, []int{0}, wideOctaves(t), 256)
	require.NoError(t, err)

	// No oscillators at all.
	_, err = base.Generate(0)
	assert.ErrorIs(t, err, params.ErrNoFrequencyOscillator)

	// Noise alone cannot carry a pitch.
	noise, err := params.NoiseOscillator(1, 0.1, 0.2)
	require.NoError(t, err)
	noiseOnly, err := base.WithOscillator(noise)
	require.NoError(t, err)
	_, err = noiseOnly.Generate(0)
	assert.ErrorIs(t, err, params.ErrNoFrequencyOscillator)

	// A pitched slot that can never roll inclusion does not count.
	deadSine, err := params.SineOscillator(0, 0.1, 0.2)
	require.NoError(t, err)
	dead, err := noiseOnly.WithOscillator(deadSine)
	require.NoError(t, err)
	_, err = dead.Generate(0)
	assert.ErrorIs(t, err, params.ErrNoFrequencyOscillator)
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	p := singleNoteTemplate(t)

	first, err := p.Generate(7)
	require.NoError(t, err)
	second, err := p.Generate(7)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Interleaving other indices must not disturb index 7.
	for i := uint64(0); i < 20; i++ {
		_, err = p.Generate(i)
		require.NoError(t, err)
	}
	third, err := p.Generate(7)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestGenerate_SeedSelectsDataset(t *testing.T) {
	t.Parallel()

	p := singleNoteTemplate(t)
	reseeded := p.WithSeed(1)

	base, err := p.Generate(0)
	require.NoError(t, err)
	other, err := reseeded.Generate(0)
	require.NoError(t, err)
	assert.NotEqual(t, base.BaseFrequency, other.BaseFrequency)

	// WithSeed returned a copy; the original still reproduces.
	again, err := p.Generate(0)
	require.NoError(t, err)
	assert.Equal(t, base, again)

	// The default offset is the seed-0 offset.
	defaulted, err := p.WithSeed(0).Generate(0)
	require.NoError(t, err)
	assert.Equal(t, base, defaulted)
}

func TestGenerate_BaseFrequencyWithinRange(t *testing.T) {
	t.Parallel()

	p := singleNoteTemplate(t)
	for i := uint64(0); i < 100; i++ {
		dp, err := p.Generate(i)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, dp.BaseFrequency, 50.0)
		assert.LessOrEqual(t, dp.BaseFrequency, 2000.0)
		assert.InDelta(t, pitch.ToMap(dp.BaseFrequency), dp.BaseFrequencyMap, 1e-9)
	}
}

func TestGenerate_ChordFromAllowedSet(t *testing.T) {
	t.Parallel()

	allowed := []int{1, 3, 5}
	p, err := params.New(44100, [2]float64{50, 2000}, [2]float64{0.5, 3}, allowed, wideOctaves(t), 256)
	require.NoError(t, err)
	sine, err := params.SineOscillator(1, 0.5, 0.7)
	require.NoError(t, err)
	p, err = p.WithOscillator(sine)
	require.NoError(t, err)

	seen := map[int]bool{}
	for i := uint64(0); i < 200; i++ {
		dp, err := p.Generate(i)
		require.NoError(t, err)
		assert.Contains(t, allowed, dp.ChordType)
		seen[dp.ChordType] = true

		// Without octave duplication the note count is the chord size.
		assert.Len(t, dp.Frequencies, chord.Types[dp.ChordType].NumNotes())
	}
	for _, id := range allowed {
		assert.True(t, seen[id], "chord %d never chosen in 200 draws", id)
	}
}

func TestGenerate_FrequencyBearingGuarantee(t *testing.T) {
	t.Parallel()

	// A sine slot that is almost never included forces the rejection
	// loop to earn its keep next to an always-on noise slot.
	p, err := params.New(44100, [2]float64{50, 2000}, [2]float64{0.5, 3}, []int{0}, wideOctaves(t), 256)
	require.NoError(t, err)
	rareSine, err := params.SineOscillator(0.05, 0.1, 0.2)
	require.NoError(t, err)
	noise, err := params.NoiseOscillator(0.95, 0.1, 0.2)
	require.NoError(t, err)
	p, err = p.WithOscillator(rareSine)
	require.NoError(t, err)
	p, err = p.WithOscillator(noise)
	require.NoError(t, err)

	for i := uint64(0); i < 200; i++ {
		dp, err := p.Generate(i)
		require.NoError(t, err)
		assert.True(t, dp.HasFrequencyOscillator(), "index %d", i)
	}
}

func TestGenerate_EndToEndSingleNote(t *testing.T) {
	t.Parallel()

	p := singleNoteTemplate(t)
	dp, err := p.Generate(0)
	require.NoError(t, err)

	assert.Equal(t, 0, dp.ChordType)
	assert.Len(t, dp.Frequencies, 1)
	assert.Equal(t, dp.BaseFrequency, dp.Frequencies[0])
	require.Len(t, dp.Oscillators, 1)
	osc := dp.Oscillators[0]
	assert.Equal(t, params.Sine, osc.Kind())
	assert.GreaterOrEqual(t, osc.Amplitude(), 0.5)
	assert.LessOrEqual(t, osc.Amplitude(), 0.7)

	a, err := dp.Render()
	require.NoError(t, err)
	assert.Equal(t, 256, a.NumSamples())
	assert.Equal(t, 44100, a.SampleRate)
}
