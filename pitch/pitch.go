// Package pitch relates physical frequencies, musical note numbers, and the
// perceptual map coordinate used in training labels.
//
// The perceptual map is a single log-uniform space over the audible band
// [20 Hz, 20 kHz]: a coordinate in [-1, 1] locates a frequency inside that
// band so that equal coordinate steps sound like equal pitch steps. Note
// numbers follow twelve-tone equal temperament with A4 = 440 Hz at note 69,
// so integer steps are semitones.
//
// Reference points: note 80 ≈ 830.61 Hz, note 60 ≈ 261.63 Hz (middle C),
// note 40 ≈ 82.41 Hz, note 20 ≈ 25.96 Hz.
package pitch

import (
	"math"

	"github.com/katalvlaran/synthset/dist"
)

// Audible band bounds for the perceptual frequency map, in Hz.
const (
	MinFrequency = 20.0
	MaxFrequency = 20000.0
)

const (
	concertAFrequency  = 440.0
	concertANoteNumber = 69.0
	semitonesPerOctave = 12.0
	centsPerOctave     = 1200.0
)

// audible is the shared log-uniform space over the audible band.
var audible = func() dist.LogUniform {
	l, err := dist.NewLogUniform(MinFrequency, MaxFrequency)
	if err != nil {
		panic(err)
	}

	return l
}()

// ToMap converts a frequency in Hz to its perceptual map coordinate.
func ToMap(frequency float64) float64 {
	return audible.ValueToMap(frequency)
}

// FromMap converts a perceptual map coordinate back to a frequency in Hz.
func FromMap(coord float64) float64 {
	return audible.MapToValue(coord)
}

// NoteFrequency returns the frequency of a (possibly fractional) note number.
func NoteFrequency(note float64) float64 {
	return concertAFrequency * math.Exp2((note-concertANoteNumber)/semitonesPerOctave)
}

// NoteNumber returns the (possibly fractional) note number of a frequency.
func NoteNumber(frequency float64) float64 {
	return concertANoteNumber + semitonesPerOctave*math.Log2(frequency/concertAFrequency)
}

// NoteToMap converts a note number to its perceptual map coordinate.
func NoteToMap(note float64) float64 {
	return ToMap(NoteFrequency(note))
}

// MapToNote converts a perceptual map coordinate to a note number.
func MapToNote(coord float64) float64 {
	return NoteNumber(FromMap(coord))
}

// CentsToHz converts a deviation in cents around a center frequency to the
// equivalent deviation in Hz: frequency * (2^(cents/1200) - 1).
func CentsToHz(frequency, cents float64) float64 {
	return frequency * (math.Exp2(cents/centsPerOctave) - 1)
}
