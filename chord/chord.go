// Package chord enumerates chord frequency sets and distributes chord notes
// across octaves within configured bounds.
//
// A chord type is a fixed list of frequency multipliers relative to a root
// note (just intonation: major = root, 5/4, 3/2). The package-level Types
// table is the closed set of chord identifiers used in dataset labels; index
// 0 is always the single root note. Octave spreading then duplicates chord
// notes at random octaves inside [MinFrequency, MaxFrequency], controlled by
// per-note Bernoulli probabilities.
//
// Ordering is significant everywhere: Frequencies emits the root first and
// the remaining notes in table order, and GenerateFrequencies emits octave
// copies in insertion order. Downstream sampling relies on both.
package chord

// Type describes one chord: a display name and the frequency multipliers of
// its non-root notes relative to the root.
type Type struct {
	name        string
	multipliers []float64
}

// Types is the fixed chord table. A chord identifier used anywhere in this
// module is an index into this table.
var Types = []Type{
	{name: "Single Note"},
	{name: "Major", multipliers: []float64{5.0 / 4, 3.0 / 2}},
	{name: "Minor", multipliers: []float64{6.0 / 5, 3.0 / 2}},
	{name: "Diminished", multipliers: []float64{6.0 / 5, 36.0 / 25}},
	{name: "Augmented", multipliers: []float64{5.0 / 4, 25.0 / 16}},
	{name: "Major Seventh", multipliers: []float64{5.0 / 4, 3.0 / 2, 15.0 / 8}},
	{name: "Minor Seventh", multipliers: []float64{6.0 / 5, 3.0 / 2, 9.0 / 5}},
	{name: "Dominant Seventh", multipliers: []float64{5.0 / 4, 3.0 / 2, 9.0 / 5}},
}

// Name reports the chord's display name.
func (t Type) Name() string { return t.name }

// NumNotes reports how many notes the chord spans, including the root.
func (t Type) NumNotes() int { return len(t.multipliers) + 1 }

// Frequencies returns the chord's note frequencies for the given root:
// the root itself first, then root*multiplier per table entry, in order.
func (t Type) Frequencies(root float64) []float64 {
	frequencies := make([]float64, 0, t.NumNotes())
	frequencies = append(frequencies, root)
	for _, m := range t.multipliers {
		frequencies = append(frequencies, root*m)
	}

	return frequencies
}
