package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/synthset/audio"
)

// LoadWavetables reads every WAV file in dir as a single-cycle wavetable
// and returns the tables keyed by file name without the extension. Files
// must be in the dataset's own format (mono 32-bit float); anything else
// fails the whole load. Non-WAV entries and subdirectories are ignored.
//
// The sample rate of a wavetable file is irrelevant: a table is one cycle
// of a waveform, and the oscillator sweeps it at whatever frequency it is
// asked to play.
func LoadWavetables(dir string) (map[string][]float64, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", dir, err)
	}

	tables := make(map[string][]float64)

	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".wav") {
			continue
		}

		a, err := audio.ReadWAV(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}

		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		tables[name] = a.Samples
	}

	return tables, nil
}
