// This file declares the Space contract, the LogUniform and Uniform value
// types, their constructors and sentinel errors.
//
// Errors:
//
//	ErrNegativeMin - log range minimum is negative.
//	ErrInvertedRange - range maximum is below the minimum.
package dist

import (
	"errors"
	"math"
	"math/rand"
)

// Sentinel errors for range construction.
var (
	// ErrNegativeMin indicates a logarithmic range minimum below zero.
	ErrNegativeMin = errors.New("dist: log range minimum must be non-negative")

	// ErrInvertedRange indicates a range maximum below its minimum.
	ErrInvertedRange = errors.New("dist: range maximum must be at least the minimum")
)

// logEpsilon replaces a zero minimum so the logarithmic map stays defined.
const logEpsilon = 1e-6

// Space is a bijective mapping between a linear coordinate in [-1, 1] and a
// physical value in [Min, Max], with uniform sampling over the coordinate.
//
// Implementations must keep MapToValue and ValueToMap exact inverses of each
// other (within floating-point tolerance) for non-degenerate ranges.
type Space interface {
	// MapToValue converts a coordinate in [-1, 1] to a value in [Min, Max].
	MapToValue(coord float64) float64

	// ValueToMap converts a value in [Min, Max] back to its coordinate.
	ValueToMap(value float64) float64

	// Sample draws one value; exactly one rng draw is consumed.
	Sample(rng *rand.Rand) float64

	// SampleWithMap draws one value and also returns its coordinate;
	// exactly one rng draw is consumed.
	SampleWithMap(rng *rand.Rand) (coord, value float64)

	// Min reports the lower bound of the value range.
	Min() float64

	// Max reports the upper bound of the value range.
	Max() float64
}

// LogUniform maps the coordinate range [-1, 1] onto [min, max] so that equal
// coordinate steps correspond to equal ratios of the value. A zero minimum is
// clamped to a small positive epsilon to keep the logarithm defined; a
// degenerate range (min == max) maps every coordinate to that single value.
type LogUniform struct {
	min, max   float64
	logMin     float64
	logRange   float64
	degenerate bool
}

// NewLogUniform builds a LogUniform over [min, max].
// Returns ErrNegativeMin if min < 0 and ErrInvertedRange if max < min.
func NewLogUniform(min, max float64) (LogUniform, error) {
	if min < 0 {
		return LogUniform{}, ErrNegativeMin
	}
	if max < min {
		return LogUniform{}, ErrInvertedRange
	}
	clamped := min
	if clamped == 0 {
		clamped = logEpsilon
	}
	l := LogUniform{
		min:        min,
		max:        max,
		logMin:     math.Log(clamped),
		degenerate: min == max,
	}
	if !l.degenerate {
		l.logRange = math.Log(max) - l.logMin
	}

	return l, nil
}

// MapToValue converts coord ∈ [-1, 1] to exp(logRange*(coord+1)/2 + logMin).
func (l LogUniform) MapToValue(coord float64) float64 {
	if l.degenerate {
		return l.min
	}

	return math.Exp(l.logRange*(coord+1)/2 + l.logMin)
}

// ValueToMap is the exact inverse of MapToValue. For a degenerate range the
// coordinate is not recoverable and -1 is returned.
func (l LogUniform) ValueToMap(value float64) float64 {
	if l.degenerate {
		return -1
	}

	return (math.Log(value)-l.logMin)/l.logRange*2 - 1
}

// Sample draws one value log-uniformly from [min, max].
func (l LogUniform) Sample(rng *rand.Rand) float64 {
	_, value := l.SampleWithMap(rng)

	return value
}

// SampleWithMap draws a coordinate uniformly in [-1, 1] and returns both the
// coordinate and its mapped value.
func (l LogUniform) SampleWithMap(rng *rand.Rand) (float64, float64) {
	coord := rng.Float64()*2 - 1

	return coord, l.MapToValue(coord)
}

// Min reports the configured lower bound (before epsilon clamping).
func (l LogUniform) Min() float64 { return l.min }

// Max reports the configured upper bound.
func (l LogUniform) Max() float64 { return l.max }

// Uniform is the linear analog of LogUniform: equal coordinate steps
// correspond to equal value differences.
type Uniform struct {
	min, max float64
}

// NewUniform builds a Uniform over [min, max]. Negative bounds are fine,
// the linear map needs no positivity.
// Returns ErrInvertedRange if max < min.
func NewUniform(min, max float64) (Uniform, error) {
	if max < min {
		return Uniform{}, ErrInvertedRange
	}

	return Uniform{min: min, max: max}, nil
}

// MapToValue converts coord ∈ [-1, 1] to min + (max-min)*(coord+1)/2.
func (u Uniform) MapToValue(coord float64) float64 {
	return u.min + (u.max-u.min)*(coord+1)/2
}

// ValueToMap is the exact inverse of MapToValue. For a degenerate range the
// coordinate is not recoverable and -1 is returned.
func (u Uniform) ValueToMap(value float64) float64 {
	if u.min == u.max {
		return -1
	}

	return (value-u.min)/(u.max-u.min)*2 - 1
}

// Sample draws one value uniformly from [min, max].
func (u Uniform) Sample(rng *rand.Rand) float64 {
	_, value := u.SampleWithMap(rng)

	return value
}

// SampleWithMap draws a coordinate uniformly in [-1, 1] and returns both the
// coordinate and its mapped value.
func (u Uniform) SampleWithMap(rng *rand.Rand) (float64, float64) {
	coord := rng.Float64()*2 - 1

	return coord, u.MapToValue(coord)
}

// Min reports the lower bound of the value range.
func (u Uniform) Min() float64 { return u.min }

// Max reports the upper bound of the value range.
func (u Uniform) Max() float64 { return u.max }
