package dataset

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/synthset/audio"
	"github.com/katalvlaran/synthset/params"
)

// DataPoint pairs a rendered clip with the parameters that produced it.
type DataPoint struct {
	Params params.DataPointParameters
	Audio  audio.Audio
}

// Label projects the datapoint's ground truth for labels.json.
func (d DataPoint) Label() Label {
	return NewLabel(d.Params)
}

// Generate samples and renders the datapoint at index under the template.
// The same (template, index) pair always yields the same datapoint.
func Generate(p params.DataParameters, index uint64) (DataPoint, error) {
	dp, err := p.Generate(index)
	if err != nil {
		return DataPoint{}, fmt.Errorf("dataset: datapoint %d: %w", index, err)
	}

	a, err := dp.Render()
	if err != nil {
		return DataPoint{}, fmt.Errorf("dataset: datapoint %d: %w", index, err)
	}

	return DataPoint{Params: dp, Audio: a}, nil
}

// Generator walks a template's index space sequentially. Use it when
// datapoints are consumed one at a time; use GenerateRange to saturate
// every core instead.
type Generator struct {
	params params.DataParameters
	next   uint64
}

// NewGenerator returns a generator positioned at index 0.
func NewGenerator(p params.DataParameters) *Generator {
	return &Generator{params: p}
}

// Next generates the datapoint at the current index and advances. It never
// runs out: the index space is the whole of uint64.
func (g *Generator) Next() (DataPoint, error) {
	d, err := Generate(g.params, g.next)
	if err != nil {
		return DataPoint{}, err
	}

	g.next++

	return d, nil
}

// Result is one outcome of GenerateRange: either a datapoint or the error
// that prevented it, tagged with the index it belongs to.
type Result struct {
	Index     uint64
	DataPoint DataPoint
	Err       error
}

// GenerateRange renders indices [from, to) across the given number of
// workers and streams results on the returned channel. Results arrive in
// completion order, not index order; the Index field says which datapoint
// each one is. The channel is closed once the range is exhausted or ctx is
// canceled, whichever comes first.
func GenerateRange(ctx context.Context, p params.DataParameters, from, to uint64, workers int) <-chan Result {
	if workers < 1 {
		workers = 1
	}

	out := make(chan Result, workers)
	indices := make(chan uint64)

	go func() {
		defer close(indices)

		for i := from; i < to; i++ {
			select {
			case indices <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup

	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()

			for i := range indices {
				d, err := Generate(p, i)

				select {
				case out <- Result{Index: i, DataPoint: d, Err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
