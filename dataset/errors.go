package dataset

import "errors"

var (
	// ErrLabelMismatch is returned by Validate when an audio file does not
	// agree with its labels.json entry (sample rate or sample count).
	ErrLabelMismatch = errors.New("dataset: label does not match audio")

	// ErrMissingAudio is returned by Validate when labels.json names a
	// datapoint whose WAV file is absent from the dataset directory.
	ErrMissingAudio = errors.New("dataset: labeled audio file is missing")

	// ErrUnlabeledAudio is returned by Validate when the dataset directory
	// holds a WAV file that labels.json knows nothing about.
	ErrUnlabeledAudio = errors.New("dataset: audio file has no label")
)
