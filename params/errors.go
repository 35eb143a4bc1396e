package params

import "errors"

var (
	// ErrSampleRate reports a non-positive sample rate.
	ErrSampleRate = errors.New("params: sample rate must be positive")

	// ErrNumSamples reports a non-positive clip length.
	ErrNumSamples = errors.New("params: sample count must be positive")

	// ErrFrequencyRange reports a base frequency range that is not
	// strictly positive and strictly increasing.
	ErrFrequencyRange = errors.New("params: frequency range must be positive with min below max")

	// ErrNoChords reports an empty chord pool.
	ErrNoChords = errors.New("params: at least one chord type is required")

	// ErrChordType reports a chord id outside the chord table.
	ErrChordType = errors.New("params: chord type index out of range")

	// ErrProbability reports an inclusion probability outside [0, 1].
	ErrProbability = errors.New("params: probability must be in [0, 1]")

	// ErrAmplitudeRange reports an oscillator amplitude range that
	// leaves [0, 1] or is inverted.
	ErrAmplitudeRange = errors.New("params: amplitude range must satisfy 0 <= min <= max <= 1")

	// ErrAmplitudeBudget reports that adding an oscillator would push
	// the sum of per-slot amplitude maxima past full scale.
	ErrAmplitudeBudget = errors.New("params: summed oscillator amplitude maxima exceed 1")

	// ErrNoFrequencyOscillator reports a template whose slots can never
	// produce a pitched oscillator. Caught at Generate time, before the
	// rejection loop could spin forever.
	ErrNoFrequencyOscillator = errors.New("params: no frequency-bearing oscillator configured")
)
