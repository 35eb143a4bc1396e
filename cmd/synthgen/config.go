package main

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/synthset/chord"
	"github.com/katalvlaran/synthset/dataset"
	"github.com/katalvlaran/synthset/params"
)

// Config is the full description of a generation run. Zero-value fields
// fall back to the defaults set in loadConfig, which reproduce the
// standard chord dataset.
type Config struct {
	SampleRate int    `mapstructure:"sample_rate"`
	NumSamples int    `mapstructure:"num_samples"` // clip length in samples
	Seed       uint64 `mapstructure:"seed"`

	FrequencyRange Range `mapstructure:"frequency_range"` // root frequency, Hz
	StdDevCents    Range `mapstructure:"std_dev_cents"`   // walk std dev, cents

	Chords  []int        `mapstructure:"chords"`
	Octaves OctaveConfig `mapstructure:"octaves"`

	Oscillators []OscillatorConfig `mapstructure:"oscillators"`
	Wavetables  WavetablesConfig   `mapstructure:"wavetables"`
	Effects     []EffectConfig     `mapstructure:"effects"`

	Output OutputConfig `mapstructure:"output"`
}

// Range is an inclusive numeric interval.
type Range struct {
	Min float64 `mapstructure:"min"`
	Max float64 `mapstructure:"max"`
}

// OctaveConfig mirrors chord.OctaveParameters.
type OctaveConfig struct {
	RootProbability  float64 `mapstructure:"root_probability"`
	OtherProbability float64 `mapstructure:"other_probability"`
	MinFrequency     float64 `mapstructure:"min_frequency"`
	MaxFrequency     float64 `mapstructure:"max_frequency"`
}

// OscillatorConfig describes one oscillator slot of the template.
type OscillatorConfig struct {
	Kind        string  `mapstructure:"kind"` // sine, saw, pulse, triangle, noise
	Probability float64 `mapstructure:"probability"`
	Amplitude   Range   `mapstructure:"amplitude"`
	PulseWidth  Range   `mapstructure:"pulse_width"` // pulse only
}

// WavetablesConfig adds one oscillator slot per WAV file found in Dir,
// all sharing the same probability and amplitude range. An empty Dir
// means no wavetable slots.
type WavetablesConfig struct {
	Dir         string  `mapstructure:"dir"`
	Probability float64 `mapstructure:"probability"`
	Amplitude   Range   `mapstructure:"amplitude"`
}

// EffectConfig describes one effect slot of the template.
type EffectConfig struct {
	Kind        string  `mapstructure:"kind"` // distortion, normalize
	Probability float64 `mapstructure:"probability"`
	Power       Range   `mapstructure:"power"` // distortion only
}

// OutputConfig says where the dataset lands and how hard to push.
type OutputConfig struct {
	Dir     string `mapstructure:"dir"`
	Prefix  string `mapstructure:"prefix"`
	Count   int    `mapstructure:"count"`
	Workers int    `mapstructure:"workers"`
}

// loadConfig reads the YAML file at path on top of the built-in defaults.
// An empty path runs entirely on defaults.
func loadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	// Slice-valued sections cannot carry viper defaults without clobbering
	// a partial user list, so they default here instead.
	if !v.IsSet("oscillators") {
		cfg.Oscillators = defaultOscillators()
	}
	if !v.IsSet("effects") {
		cfg.Effects = defaultEffects()
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sample_rate", 44100)
	v.SetDefault("num_samples", 256)
	v.SetDefault("seed", 0)
	v.SetDefault("frequency_range.min", 50.0)
	v.SetDefault("frequency_range.max", 2000.0)
	v.SetDefault("std_dev_cents.min", 0.5)
	v.SetDefault("std_dev_cents.max", 3.0)
	v.SetDefault("chords", []int{1, 2, 3, 4, 5, 6})
	v.SetDefault("octaves.root_probability", 0.5)
	v.SetDefault("octaves.other_probability", 0.3)
	v.SetDefault("octaves.min_frequency", 90.0)
	v.SetDefault("octaves.max_frequency", 10000.0)
	v.SetDefault("wavetables.probability", 0.5)
	v.SetDefault("wavetables.amplitude.min", 0.1)
	v.SetDefault("wavetables.amplitude.max", 0.2)
	v.SetDefault("output.dir", "data")
	v.SetDefault("output.prefix", "synth_chord_")
	v.SetDefault("output.count", 1000)
	v.SetDefault("output.workers", runtime.NumCPU())
}

// defaultOscillators is the standard five-slot mix: every waveform at
// probability one half with a modest amplitude.
func defaultOscillators() []OscillatorConfig {
	amp := Range{Min: 0.1, Max: 0.2}

	return []OscillatorConfig{
		{Kind: "sine", Probability: 0.5, Amplitude: amp},
		{Kind: "saw", Probability: 0.5, Amplitude: amp},
		{Kind: "pulse", Probability: 0.5, Amplitude: amp, PulseWidth: Range{Min: 0.1, Max: 0.9}},
		{Kind: "triangle", Probability: 0.5, Amplitude: amp},
		{Kind: "noise", Probability: 0.5, Amplitude: amp},
	}
}

// defaultEffects is occasional distortion followed by an unconditional
// normalize, so clips always peak at full scale.
func defaultEffects() []EffectConfig {
	return []EffectConfig{
		{Kind: "distortion", Probability: 0.5, Power: Range{Min: 0.1, Max: 20}},
		{Kind: "normalize", Probability: 1},
	}
}

// distribution turns the config entry into a template oscillator slot.
func (c OscillatorConfig) distribution() (params.OscillatorDistribution, error) {
	switch strings.ToLower(c.Kind) {
	case "sine":
		return params.SineOscillator(c.Probability, c.Amplitude.Min, c.Amplitude.Max)
	case "saw":
		return params.SawOscillator(c.Probability, c.Amplitude.Min, c.Amplitude.Max)
	case "pulse":
		return params.PulseOscillator(c.Probability, c.PulseWidth.Min, c.PulseWidth.Max, c.Amplitude.Min, c.Amplitude.Max)
	case "triangle":
		return params.TriangleOscillator(c.Probability, c.Amplitude.Min, c.Amplitude.Max)
	case "noise":
		return params.NoiseOscillator(c.Probability, c.Amplitude.Min, c.Amplitude.Max)
	default:
		return params.OscillatorDistribution{}, fmt.Errorf("unknown oscillator kind %q", c.Kind)
	}
}

// distribution turns the config entry into a template effect slot.
func (c EffectConfig) distribution() (params.EffectDistribution, error) {
	switch strings.ToLower(c.Kind) {
	case "distortion":
		return params.DistortionEffect(c.Probability, c.Power.Min, c.Power.Max)
	case "normalize":
		return params.NormalizeEffect(c.Probability)
	default:
		return params.EffectDistribution{}, fmt.Errorf("unknown effect kind %q", c.Kind)
	}
}

// buildTemplate assembles the generation template the config describes.
func buildTemplate(cfg Config) (params.DataParameters, error) {
	octaves, err := chord.NewOctaveParameters(
		cfg.Octaves.RootProbability,
		cfg.Octaves.OtherProbability,
		cfg.Octaves.MinFrequency,
		cfg.Octaves.MaxFrequency,
	)
	if err != nil {
		return params.DataParameters{}, err
	}

	p, err := params.New(
		cfg.SampleRate,
		[2]float64{cfg.FrequencyRange.Min, cfg.FrequencyRange.Max},
		[2]float64{cfg.StdDevCents.Min, cfg.StdDevCents.Max},
		cfg.Chords,
		octaves,
		cfg.NumSamples,
	)
	if err != nil {
		return params.DataParameters{}, err
	}

	p = p.WithSeed(cfg.Seed)

	for i, oc := range cfg.Oscillators {
		osc, err := oc.distribution()
		if err != nil {
			return params.DataParameters{}, fmt.Errorf("oscillator %d: %w", i, err)
		}

		if p, err = p.WithOscillator(osc); err != nil {
			return params.DataParameters{}, fmt.Errorf("oscillator %d: %w", i, err)
		}
	}

	if cfg.Wavetables.Dir != "" {
		tables, err := dataset.LoadWavetables(cfg.Wavetables.Dir)
		if err != nil {
			return params.DataParameters{}, err
		}

		// Slot order feeds the sampling stream, so it must not depend on
		// map iteration order.
		names := make([]string, 0, len(tables))
		for name := range tables {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			p, err = p.WithWavetable(tables[name], cfg.Wavetables.Probability,
				cfg.Wavetables.Amplitude.Min, cfg.Wavetables.Amplitude.Max)
			if err != nil {
				return params.DataParameters{}, fmt.Errorf("wavetable %s: %w", name, err)
			}
		}
	}

	for i, ec := range cfg.Effects {
		eff, err := ec.distribution()
		if err != nil {
			return params.DataParameters{}, fmt.Errorf("effect %d: %w", i, err)
		}

		p = p.WithEffect(eff)
	}

	return p, nil
}
