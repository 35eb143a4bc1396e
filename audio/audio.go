package audio

import (
	"fmt"
	"math"
	"time"

	goaudio "github.com/go-audio/audio"

	"github.com/katalvlaran/synthset/synth"
)

// WAV spec shared by the encoder and the decoder checks.
const (
	wavChannels    = 1
	wavBitDepth    = 32
	wavFloatFormat = 3 // WAVE_FORMAT_IEEE_FLOAT
)

// Audio is an immutable mono sample buffer tagged with its sample rate.
//
// Every sample is expected to lie in [-1, 1]; FromModule enforces this at
// construction time. Callers must not mutate Samples after construction.
type Audio struct {
	// Samples holds the mono signal, one float64 per frame.
	Samples []float64
	// SampleRate is the playback rate in frames per second.
	SampleRate int
}

// FromSamples wraps an existing buffer without copying or range checks.
//
// Use it for buffers that are already trusted, e.g. read back from disk
// or produced by an effect that preserves the amplitude contract.
func FromSamples(samples []float64, sampleRate int) Audio {
	return Audio{Samples: samples, SampleRate: sampleRate}
}

// FromModule renders numSamples frames from m into a new Audio.
//
// The module is pulled once per frame. If any rendered sample falls
// outside [-1, 1] the render is abandoned and a *ClippingError naming the
// first offending frame is returned; the partial buffer is discarded.
//
// Returns:
//   - the rendered Audio on success;
//   - a *ClippingError (matching ErrClipping) on amplitude violation.
func FromModule(m synth.Module, sampleRate, numSamples int) (Audio, error) {
	samples := make([]float64, numSamples)
	for i := range samples {
		s := m.Next()
		if math.Abs(s) > 1 {
			return Audio{}, &ClippingError{Index: i}
		}
		samples[i] = s
	}
	return Audio{Samples: samples, SampleRate: sampleRate}, nil
}

// FromDuration renders seconds worth of frames from m.
//
// The frame count is derived by converting the fractional and integral
// parts of the duration separately, so that long durations do not lose
// sub-sample precision to a single float multiply.
func FromDuration(m synth.Module, sampleRate int, seconds float64) (Audio, error) {
	whole, frac := math.Modf(seconds)
	numSamples := int(frac*float64(sampleRate)) + int(whole)*sampleRate
	return FromModule(m, sampleRate, numSamples)
}

// NumSamples returns the number of frames in the buffer.
func (a Audio) NumSamples() int { return len(a.Samples) }

// Duration returns the playback time of the buffer.
func (a Audio) Duration() time.Duration {
	if a.SampleRate == 0 {
		return 0
	}
	seconds := float64(len(a.Samples)) / float64(a.SampleRate)
	return time.Duration(seconds * float64(time.Second))
}

// FloatBuffer copies the signal into a go-audio FloatBuffer, the exchange
// type understood by the wider go-audio ecosystem (transforms, encoders).
func (a Audio) FloatBuffer() *goaudio.FloatBuffer {
	data := make([]float64, len(a.Samples))
	copy(data, a.Samples)
	return &goaudio.FloatBuffer{
		Format: &goaudio.Format{
			NumChannels: wavChannels,
			SampleRate:  a.SampleRate,
		},
		Data: data,
	}
}

// FromFloatBuffer copies a mono go-audio FloatBuffer back into an Audio.
//
// Returns ErrUnsupportedChannels if the buffer is not mono.
func FromFloatBuffer(buf *goaudio.FloatBuffer) (Audio, error) {
	if buf.Format.NumChannels != wavChannels {
		return Audio{}, fmt.Errorf("%w: got %d", ErrUnsupportedChannels, buf.Format.NumChannels)
	}
	samples := make([]float64, len(buf.Data))
	copy(samples, buf.Data)
	return Audio{Samples: samples, SampleRate: buf.Format.SampleRate}, nil
}
