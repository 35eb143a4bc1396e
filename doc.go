// Package synthset builds labeled synthetic audio datasets for training
// pitch and chord models: seeded parameter sampling, oscillator rendering,
// chord expansion, effects, and WAV/JSON persistence.
//
// 🚀 What is synthset?
//
//	A deterministic procedural audio pipeline that brings together:
//		• Distributions: uniform & log-uniform sampling over map coordinates
//		• Pitch space: frequency ↔ note number ↔ perceptual map conversions
//		• Chords: interval tables with octave duplication policies
//		• Synthesis: sine, saw, pulse, triangle, noise & wavetable oscillators
//		  driven by a damped random frequency walk
//		• Effects: power-law distortion & peak normalization
//		• Audio: clipping detection, FFT low-pass, WAV & CSV persistence
//		• Datasets: parallel generation, labels.json, validation
//
// ✨ Why choose synthset?
//
//   - Reproducible – every datapoint is a pure function of (template, index)
//   - Label-complete – ground truth ships with every clip instead of being
//     recovered from audio after the fact
//   - Fast – generation is embarrassingly parallel and saturates every core
//   - Extensible – wavetable oscillators load straight from WAV directories
//
// Under the hood, everything is organized under these subpackages:
//
//	audio/   — rendered clips: clipping checks, spectra, WAV/CSV persistence
//	chord/   — chord tables & octave duplication
//	dataset/ — datapoints, labels, parallel writers, validation
//	dist/    — map-coordinate distributions
//	params/  — dataset templates & per-datapoint sampling
//	pitch/   — frequency, note number & map-coordinate conversions
//	synth/   — oscillator modules & effects
//
// Quick taste:
//
//	template, _ := params.New(44100, [2]float64{50, 2000}, [2]float64{0.5, 3},
//		[]int{1, 2, 3, 4, 5, 6}, octaves, 256)
//	point, _ := dataset.Generate(template, 0)
//	_ = point.Audio.WriteWAV("first.wav")
//
// Dive into examples/ for full scenario programs and cmd/synthgen for the
// dataset-writing CLI.
//
//	go get github.com/katalvlaran/synthset
package synthset
