package params

// NewTestOscillator builds a concrete oscillator directly, bypassing
// distribution sampling and the template amplitude budget. Render tests
// use it to provoke conditions the builder refuses to construct.
func NewTestOscillator(kind OscillatorKind, amplitude float64) OscillatorParameters {
	return OscillatorParameters{kind: kind, amplitude: amplitude}
}
