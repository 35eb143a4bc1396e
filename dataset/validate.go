package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/synthset/audio"
)

// Validate cross-checks a dataset directory against its labels.json.
//
// Every labeled datapoint must have a readable WAV file whose sample rate
// and sample count agree with the label, and every WAV file in the
// directory must be labeled. All problems found are joined into a single
// returned error, so errors.Is can probe for ErrLabelMismatch,
// ErrMissingAudio, or ErrUnlabeledAudio while the message still lists each
// offending datapoint. A clean dataset returns nil.
func Validate(dir string) error {
	labels, err := LoadLabels(dir)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}

	sort.Strings(names)

	var problems []error
	for _, name := range names {
		problems = append(problems, validateDataPoint(dir, name, labels[name])...)
	}

	// A WAV file the label document does not know about means the
	// directory and labels.json have drifted apart.
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("dataset: read %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".wav") {
			continue
		}

		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if _, ok := labels[name]; !ok {
			problems = append(problems, fmt.Errorf("%w: %s", ErrUnlabeledAudio, e.Name()))
		}
	}

	return errors.Join(problems...)
}

// validateDataPoint checks one labeled datapoint's audio file.
func validateDataPoint(dir, name string, label Label) []error {
	a, err := audio.ReadWAV(filepath.Join(dir, AudioFileName(name)))

	switch {
	case errors.Is(err, os.ErrNotExist):
		return []error{fmt.Errorf("%w: %s", ErrMissingAudio, name)}
	case err != nil:
		return []error{err}
	}

	var problems []error

	if a.SampleRate != label.SampleRate {
		problems = append(problems, fmt.Errorf("%w: %s: sample rate %d, label says %d",
			ErrLabelMismatch, name, a.SampleRate, label.SampleRate))
	}

	if a.NumSamples() != label.NumSamples {
		problems = append(problems, fmt.Errorf("%w: %s: %d samples, label says %d",
			ErrLabelMismatch, name, a.NumSamples(), label.NumSamples))
	}

	return problems
}
