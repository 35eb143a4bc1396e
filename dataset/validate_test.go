package dataset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/synthset/audio"
	"github.com/katalvlaran/synthset/dataset"
)

// writeSmallDataset writes a three-point dataset to a fresh directory and
// returns both the directory and its labels for tests to corrupt.
func writeSmallDataset(t *testing.T) (string, dataset.Labels) {
	t.Helper()

	dir := t.TempDir()

	labels, err := dataset.WriteDataset(context.Background(), testTemplate(t), dir, "synth_", 3, 2)
	require.NoError(t, err)

	return dir, labels
}

func TestValidate_CleanDataset(t *testing.T) {
	t.Parallel()

	dir, _ := writeSmallDataset(t)
	assert.NoError(t, dataset.Validate(dir))
}

func TestValidate_MissingAudio(t *testing.T) {
	t.Parallel()

	dir, _ := writeSmallDataset(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "synth_1.wav")))

	err := dataset.Validate(dir)
	require.ErrorIs(t, err, dataset.ErrMissingAudio)
	assert.ErrorContains(t, err, "synth_1")
}

func TestValidate_UnlabeledAudio(t *testing.T) {
	t.Parallel()

	dir, _ := writeSmallDataset(t)

	stray := audio.FromSamples([]float64{0, 0.5, -0.5}, 8000)
	require.NoError(t, stray.WriteWAV(filepath.Join(dir, "stray.wav")))

	err := dataset.Validate(dir)
	require.ErrorIs(t, err, dataset.ErrUnlabeledAudio)
	assert.ErrorContains(t, err, "stray.wav")
}

func TestValidate_SampleRateMismatch(t *testing.T) {
	t.Parallel()

	dir, labels := writeSmallDataset(t)

	l := labels["synth_0"]
	l.SampleRate = 44100
	labels["synth_0"] = l
	require.NoError(t, labels.Save(dir))

	err := dataset.Validate(dir)
	require.ErrorIs(t, err, dataset.ErrLabelMismatch)
	assert.ErrorContains(t, err, "sample rate")
	assert.ErrorContains(t, err, "synth_0")
}

func TestValidate_SampleCountMismatch(t *testing.T) {
	t.Parallel()

	dir, labels := writeSmallDataset(t)

	l := labels["synth_2"]
	l.NumSamples++
	labels["synth_2"] = l
	require.NoError(t, labels.Save(dir))

	err := dataset.Validate(dir)
	require.ErrorIs(t, err, dataset.ErrLabelMismatch)
	assert.ErrorContains(t, err, "samples")
	assert.ErrorContains(t, err, "synth_2")
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	dir, _ := writeSmallDataset(t)

	require.NoError(t, os.Remove(filepath.Join(dir, "synth_0.wav")))

	stray := audio.FromSamples([]float64{0.25}, 8000)
	require.NoError(t, stray.WriteWAV(filepath.Join(dir, "stray.wav")))

	err := dataset.Validate(dir)
	assert.ErrorIs(t, err, dataset.ErrMissingAudio)
	assert.ErrorIs(t, err, dataset.ErrUnlabeledAudio)
}

func TestValidate_MissingLabelDocument(t *testing.T) {
	t.Parallel()

	err := dataset.Validate(t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
