package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/synthset/params"
	"github.com/katalvlaran/synthset/pitch"
)

// LabelsFileName is the name of the label document inside a dataset
// directory.
const LabelsFileName = "labels.json"

// Label is the ground truth stored for one datapoint. It captures the
// training targets (pitch in several encodings, the chord) together with
// the format facts needed to reload the audio without guessing.
type Label struct {
	// SampleRate is the audio sample rate in Hz.
	SampleRate int `json:"sample_rate"`

	// BaseFrequencyMap locates the root frequency on the perceptual map
	// in [-1, 1]. This is the regression target most models train on.
	BaseFrequencyMap float64 `json:"base_frequency_map"`

	// BaseFrequency is the root frequency in Hz.
	BaseFrequency float64 `json:"base_frequency"`

	// NoteNumber is the fractional MIDI-style note number of the root.
	NoteNumber float64 `json:"note_number"`

	// ChordType indexes chord.Types; 0 is a single note.
	ChordType int `json:"chord_type"`

	// Frequencies lists every sounding frequency in Hz, root first.
	Frequencies []float64 `json:"frequencies"`

	// NumSamples is the clip length in samples.
	NumSamples int `json:"num_samples"`
}

// NewLabel projects the ground truth out of fully sampled datapoint
// parameters. Oscillator and effect draws are deliberately not recorded:
// they are nuisance variation, not targets.
func NewLabel(p params.DataPointParameters) Label {
	return Label{
		SampleRate:       p.SampleRate,
		BaseFrequencyMap: p.BaseFrequencyMap,
		BaseFrequency:    p.BaseFrequency,
		NoteNumber:       pitch.NoteNumber(p.BaseFrequency),
		ChordType:        p.ChordType,
		Frequencies:      append([]float64(nil), p.Frequencies...),
		NumSamples:       p.NumSamples,
	}
}

// Labels maps datapoint names (file names without the .wav extension) to
// their ground truth.
type Labels map[string]Label

// Save writes the labels to <dir>/labels.json, pretty-printed so the
// document stays diffable and greppable.
func (l Labels) Save(dir string) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("dataset: encode labels: %w", err)
	}

	path := filepath.Join(dir, LabelsFileName)
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("dataset: write %s: %w", path, err)
	}

	return nil
}

// LoadLabels reads <dir>/labels.json back into memory.
func LoadLabels(dir string) (Labels, error) {
	path := filepath.Join(dir, LabelsFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	var l Labels
	if err = json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("dataset: decode %s: %w", path, err)
	}

	return l, nil
}
