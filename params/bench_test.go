package params_test

import (
	"testing"

	"github.com/katalvlaran/synthset/chord"
	"github.com/katalvlaran/synthset/params"
)

// benchRender samples index 0 once, then times pure rendering.
func benchRender(b *testing.B, p params.DataParameters) {
	b.Helper()
	dp, err := p.Generate(0)
	if err != nil {
		b.Fatalf("setup Generate failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dp.Render(); err != nil {
			b.Fatalf("Render failed: %v", err)
		}
	}
}

func benchTemplate(b *testing.B, chords []int) params.DataParameters {
	b.Helper()
	oct, err := chord.NewOctaveParameters(0.5, 0.3, 90, 10000)
	if err != nil {
		b.Fatalf("setup octaves failed: %v", err)
	}
	p, err := params.New(44100, [2]float64{50, 2000}, [2]float64{0.5, 3}, chords, oct, 256)
	if err != nil {
		b.Fatalf("setup template failed: %v", err)
	}
	return p
}

// BenchmarkRender_Sine measures a 256-sample single-note sine render.
func BenchmarkRender_Sine(b *testing.B) {
	p := benchTemplate(b, []int{0})
	sine, err := params.SineOscillator(1, 0.5, 0.7)
	if err != nil {
		b.Fatalf("setup oscillator failed: %v", err)
	}
	p, err = p.WithOscillator(sine)
	if err != nil {
		b.Fatalf("setup template failed: %v", err)
	}
	benchRender(b, p)
}

// BenchmarkRender_SineChord measures the same sine against a four-note
// chord with octave duplication.
func BenchmarkRender_SineChord(b *testing.B) {
	p := benchTemplate(b, []int{5})
	sine, err := params.SineOscillator(1, 0.5, 0.7)
	if err != nil {
		b.Fatalf("setup oscillator failed: %v", err)
	}
	p, err = p.WithOscillator(sine)
	if err != nil {
		b.Fatalf("setup template failed: %v", err)
	}
	benchRender(b, p)
}

// BenchmarkRender_AllOscillators measures the full oscillator bank with
// a distortion pass, the worst realistic per-datapoint load.
func BenchmarkRender_AllOscillators(b *testing.B) {
	p := benchTemplate(b, []int{5})
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
	distortion, err := params.DistortionEffect(0.5, 0.2, 20)
	if err != nil {
		b.Fatalf("setup effect failed: %v", err)
	}
	benchRender(b, p.WithEffect(distortion))
}
