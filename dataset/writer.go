package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/synthset/params"
)

// AudioFileName returns the WAV file name of a datapoint.
func AudioFileName(name string) string {
	return name + ".wav"
}

// WriteDataPoint writes one datapoint's audio to <dir>/<name>.wav. Labels
// are not written here; collect them and call Labels.Save once, so a
// dataset directory carries a single label document.
func WriteDataPoint(dir, name string, d DataPoint) error {
	return d.Audio.WriteWAV(filepath.Join(dir, AudioFileName(name)))
}

// WriteDataset generates count datapoints under the template, writes them
// to dir as <prefix><index>.wav across the given number of workers, and
// finishes with a labels.json covering all of them. The written labels are
// returned for convenience.
//
// The first generation or write error aborts the run; a partially written
// directory is left behind without labels.json, which Validate will flag.
func WriteDataset(ctx context.Context, p params.DataParameters, dir, prefix string, count, workers int) (Labels, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("dataset: create %s: %w", dir, err)
	}

	labels := make(Labels, count)

	for r := range GenerateRange(ctx, p, 0, uint64(count), workers) {
		if r.Err != nil {
			return nil, r.Err
		}

		name := fmt.Sprintf("%s%d", prefix, r.Index)
		if err := WriteDataPoint(dir, name, r.DataPoint); err != nil {
			return nil, err
		}

		labels[name] = r.DataPoint.Label()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := labels.Save(dir); err != nil {
		return nil, err
	}

	return labels, nil
}
