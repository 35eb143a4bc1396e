// This file declares the Module contract and the composition helpers
// (Const, NewSum, NewGain, NewClamp).
package synth

// Module is a mono sample stream: successive Next calls yield successive
// samples, nominally in [-1, 1]. A Module is single-use; re-rendering means
// rebuilding the module graph from its parameters.
type Module interface {
	Next() float64
}

// constModule emits a fixed value forever.
type constModule float64

func (c constModule) Next() float64 { return float64(c) }

// Const returns a Module that always emits v; the usual frequency source for
// an unmodulated oscillator.
func Const(v float64) Module { return constModule(v) }

// sumModule adds the outputs of its inputs sample by sample.
type sumModule struct {
	inputs []Module
}

// NewSum returns a Module emitting the sum of all inputs per sample. An
// empty input list yields silence.
func NewSum(inputs ...Module) Module {
	return &sumModule{inputs: inputs}
}

func (s *sumModule) Next() float64 {
	var total float64
	for _, in := range s.inputs {
		total += in.Next()
	}

	return total
}

// gainModule scales its input by a constant factor.
type gainModule struct {
	input Module
	gain  float64
}

// NewGain returns a Module emitting input samples multiplied by gain.
func NewGain(input Module, gain float64) Module {
	return &gainModule{input: input, gain: gain}
}

func (g *gainModule) Next() float64 {
	return g.input.Next() * g.gain
}

// clampModule limits its input to [lo, hi].
type clampModule struct {
	input  Module
	lo, hi float64
}

// NewClamp returns a Module limiting input samples to [lo, hi].
func NewClamp(input Module, lo, hi float64) Module {
	return &clampModule{input: input, lo: lo, hi: hi}
}

func (c *clampModule) Next() float64 {
	v := c.input.Next()
	if v < c.lo {
		return c.lo
	}
	if v > c.hi {
		return c.hi
	}

	return v
}
