package audio

import (
	"errors"
	"fmt"
)

var (
	// ErrClipping reports that a rendered sample fell outside [-1, 1].
	// Returned (wrapped in a ClippingError) by FromModule.
	ErrClipping = errors.New("audio: sample amplitude outside [-1, 1]")

	// ErrUnsupportedChannels reports a WAV file that is not mono.
	ErrUnsupportedChannels = errors.New("audio: unsupported channel count, expected mono")

	// ErrUnsupportedBitDepth reports a WAV file that is not 32-bit.
	ErrUnsupportedBitDepth = errors.New("audio: unsupported bit depth, expected 32-bit")

	// ErrUnsupportedFormat reports a WAV file whose samples are not IEEE float.
	ErrUnsupportedFormat = errors.New("audio: unsupported sample format, expected IEEE float")
)

// ClippingError pinpoints the first sample of a rendered buffer that left
// the [-1, 1] range. It matches ErrClipping under errors.Is, so callers
// that do not care about the position can test for the sentinel alone.
type ClippingError struct {
	// Index is the offset of the first out-of-range sample.
	Index int
}

// Error implements the error interface.
func (e *ClippingError) Error() string {
	return fmt.Sprintf("audio: sample %d clipped outside [-1, 1]", e.Index)
}

// Is reports whether target is ErrClipping.
func (e *ClippingError) Is(target error) bool {
	return target == ErrClipping
}
