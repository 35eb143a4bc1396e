// This file declares OctaveParameters: the octave-spread policy applied to
// every chord note, and its sentinel errors.
package chord

import (
	"errors"
	"math"
	"math/rand"
)

// Sentinel errors for octave policy construction and evaluation.
var (
	// ErrProbability indicates an octave-duplication probability outside [0, 1].
	ErrProbability = errors.New("chord: octave probability must be in [0, 1]")

	// ErrMinFrequency indicates a non-positive minimum frequency bound.
	ErrMinFrequency = errors.New("chord: minimum frequency must be positive")

	// ErrOctaveRoom indicates bounds too narrow to hold a full octave.
	ErrOctaveRoom = errors.New("chord: maximum frequency must be at least twice the minimum")

	// ErrNoOctave indicates that no octave shift of a note fits the bounds.
	ErrNoOctave = errors.New("chord: no octave of the frequency fits the configured bounds")
)

// octaveSearchLimit bounds the octave index searches; forty doublings exceed
// any representable audio frequency ratio.
const octaveSearchLimit = 40

// OctaveParameters control how chord notes are duplicated across octaves.
//
// For each note the generator locates the note's lowest octave copy at or
// above MinFrequency and counts how many doublings stay at or below
// MaxFrequency; random octave choices are drawn from that range. The root
// note always keeps its own octave (the base frequency itself appears in the
// output even when it lies below MinFrequency, so labels stay truthful);
// every other note gets one random octave. Afterwards, additional distinct
// octaves are appended while a Bernoulli trial with the configured
// probability keeps succeeding.
type OctaveParameters struct {
	addRootOctaveProbability  float64
	addOtherOctaveProbability float64
	minFrequency              float64
	maxFrequency              float64
}

// NewOctaveParameters validates and builds an octave-spread policy.
//
// Validation (in order):
//  1. Both probabilities must lie in [0, 1] (ErrProbability).
//  2. minFrequency must be positive (ErrMinFrequency).
//  3. maxFrequency must be at least 2*minFrequency, so at least one octave
//     choice always exists (ErrOctaveRoom).
func NewOctaveParameters(addRootOctaveProbability, addOtherOctaveProbability, minFrequency, maxFrequency float64) (OctaveParameters, error) {
	for _, p := range []float64{addRootOctaveProbability, addOtherOctaveProbability} {
		if p < 0 || p > 1 {
			return OctaveParameters{}, ErrProbability
		}
	}
	if minFrequency <= 0 {
		return OctaveParameters{}, ErrMinFrequency
	}
	if maxFrequency < 2*minFrequency {
		return OctaveParameters{}, ErrOctaveRoom
	}

	return OctaveParameters{
		addRootOctaveProbability:  addRootOctaveProbability,
		addOtherOctaveProbability: addOtherOctaveProbability,
		minFrequency:              minFrequency,
		maxFrequency:              maxFrequency,
	}, nil
}

// MinFrequency reports the lower octave bound in Hz.
func (o OctaveParameters) MinFrequency() float64 { return o.minFrequency }

// MaxFrequency reports the upper octave bound in Hz.
func (o OctaveParameters) MaxFrequency() float64 { return o.maxFrequency }

// GenerateFrequencies expands one chord note into its octave copies.
//
// The root note emits its own octave first; a non-root note emits one
// uniformly random octave. Additional distinct octaves are then appended
// while a Bernoulli trial succeeds; a draw that repeats an already chosen
// octave is discarded without stopping the loop. Every randomly chosen
// octave lies within [MinFrequency, MaxFrequency].
//
// The rng draw order (one octave draw for non-root, then alternating
// Bernoulli/octave draws) is part of the package contract: callers replay it
// to reproduce datasets bit for bit.
func (o OctaveParameters) GenerateFrequencies(rng *rand.Rand, frequency float64, root bool) ([]float64, error) {
	// Locate the note's octave position relative to the lower bound.
	givenOctave, ok := o.findGivenOctave(frequency)
	if !ok {
		return nil, ErrNoOctave
	}
	lowestOctave := frequency / math.Exp2(float64(givenOctave))

	numOctaves, ok := o.findNumOctaves(lowestOctave)
	if !ok {
		return nil, ErrNoOctave
	}

	octaves := make([]int, 0, 2)
	if root {
		octaves = append(octaves, givenOctave)
	} else {
		octaves = append(octaves, rng.Intn(numOctaves))
	}

	addProbability := o.addOtherOctaveProbability
	if root {
		addProbability = o.addRootOctaveProbability
	}
	for rng.Float64() < addProbability {
		octave := rng.Intn(numOctaves)
		if !containsInt(octaves, octave) {
			octaves = append(octaves, octave)
		}
	}

	frequencies := make([]float64, len(octaves))
	for i, octave := range octaves {
		frequencies[i] = lowestOctave * math.Exp2(float64(octave))
	}

	return frequencies, nil
}

// findGivenOctave returns the octave index of the note itself: the largest i
// with frequency/2^i still at or above MinFrequency.
func (o OctaveParameters) findGivenOctave(frequency float64) (int, bool) {
	for i := -10; i < octaveSearchLimit; i++ {
		if frequency/math.Exp2(float64(i)) < o.minFrequency {
			return i - 1, true
		}
	}

	return 0, false
}

// findNumOctaves counts the octave choices reachable from lowestOctave
// without exceeding MaxFrequency.
func (o OctaveParameters) findNumOctaves(lowestOctave float64) (int, bool) {
	for i := 1; i < octaveSearchLimit; i++ {
		if lowestOctave*math.Exp2(float64(i)) > o.maxFrequency {
			return i, true
		}
	}

	return 0, false
}

func containsInt(values []int, v int) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}

	return false
}
