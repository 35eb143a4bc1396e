package dataset_test

import (
	"context"
	"runtime"
	"testing"

	"github.com/katalvlaran/synthset/chord"
	"github.com/katalvlaran/synthset/dataset"
	"github.com/katalvlaran/synthset/params"
)

// benchDatasetTemplate builds a production-shaped template: the full
// oscillator bank against seventh chords at 44.1 kHz.
func benchDatasetTemplate(b *testing.B) params.DataParameters {
	b.Helper()

	oct, err := chord.NewOctaveParameters(0.5, 0.3, 90, 10000)
	if err != nil {
		b.Fatalf("setup octaves failed: %v", err)
	}

	p, err := params.New(44100, [2]float64{50, 2000}, [2]float64{0.5, 3}, []int{0, 1, 2, 5}, oct, 256)
	if err != nil {
		b.Fatalf("setup template failed: %v", err)
	}

	builders := []func() (params.OscillatorDistribution, error){
		func() (params.OscillatorDistribution, error) { return params.SineOscillator(0.5, 0.1, 0.2) },
		func() (params.OscillatorDistribution, error) { return params.SawOscillator(0.5, 0.1, 0.2) },
		func() (params.OscillatorDistribution, error) { return params.PulseOscillator(0.5, 0.1, 0.9, 0.1, 0.2) },
		func() (params.OscillatorDistribution, error) { return params.TriangleOscillator(0.5, 0.1, 0.2) },
		func() (params.OscillatorDistribution, error) { return params.NoiseOscillator(0.5, 0.1, 0.2) },
	}
	for _, build := range builders {
		osc, err := build()
		if err != nil {
			b.Fatalf("setup oscillator failed: %v", err)
		}
		p, err = p.WithOscillator(osc)
		if err != nil {
			b.Fatalf("setup template failed: %v", err)
		}
	}

	distortion, err := params.DistortionEffect(0.5, 0.1, 20)
	if err != nil {
		b.Fatalf("setup effect failed: %v", err)
	}
	normalize, err := params.NormalizeEffect(1)
	if err != nil {
		b.Fatalf("setup effect failed: %v", err)
	}

	return p.WithEffect(distortion).WithEffect(normalize)
}

// BenchmarkGenerate measures one full datapoint: sampling plus rendering.
func BenchmarkGenerate(b *testing.B) {
	p := benchDatasetTemplate(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dataset.Generate(p, uint64(i)); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerateRange measures parallel throughput with one worker per
// core, in batches of 64 datapoints.
func BenchmarkGenerateRange(b *testing.B) {
	p := benchDatasetTemplate(b)
	workers := runtime.NumCPU()

	const batch = 64

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		from := uint64(i) * batch
		for r := range dataset.GenerateRange(context.Background(), p, from, from+batch, workers) {
			if r.Err != nil {
				b.Fatalf("GenerateRange failed at %d: %v", r.Index, r.Err)
			}
		}
	}
}
