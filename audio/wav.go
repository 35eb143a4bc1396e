package audio

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// WriteWAV encodes the buffer to path as a mono 32-bit IEEE float WAV
// file, the one shape ReadWAV accepts back.
//
// Samples are narrowed to float32 on the way out; the [-1, 1] amplitude
// contract keeps that narrowing lossless in range, if not in precision.
func (a Audio) WriteWAV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audio: create %s: %w", path, err)
	}
	enc := wav.NewEncoder(f, a.SampleRate, wavBitDepth, wavChannels, wavFloatFormat)
	for _, s := range a.Samples {
		if err = enc.WriteFrame(float32(s)); err != nil {
			_ = f.Close()
			return fmt.Errorf("audio: write %s: %w", path, err)
		}
	}
	if err = enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("audio: finalize %s: %w", path, err)
	}
	return f.Close()
}

// ReadWAV decodes a WAV file previously produced by WriteWAV.
//
// The header is validated before any sample data is touched, in order:
//  1. channel count must be mono (ErrUnsupportedChannels);
//  2. bit depth must be 32 (ErrUnsupportedBitDepth);
//  3. sample format must be IEEE float (ErrUnsupportedFormat).
//
// Returns the decoded Audio, or the first validation or I/O error.
func ReadWAV(path string) (Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return Audio{}, fmt.Errorf("audio: open %s: %w", path, err)
	}
	defer f.Close()

	d := wav.NewDecoder(f)
	d.ReadInfo()
	if err = d.Err(); err != nil {
		return Audio{}, fmt.Errorf("audio: read %s: %w", path, err)
	}
	if d.NumChans != wavChannels {
		return Audio{}, fmt.Errorf("%w: got %d", ErrUnsupportedChannels, d.NumChans)
	}
	if d.BitDepth != wavBitDepth {
		return Audio{}, fmt.Errorf("%w: got %d", ErrUnsupportedBitDepth, d.BitDepth)
	}
	if d.WavAudioFormat != wavFloatFormat {
		return Audio{}, fmt.Errorf("%w: got format %d", ErrUnsupportedFormat, d.WavAudioFormat)
	}
	if err = d.FwdToPCM(); err != nil {
		return Audio{}, fmt.Errorf("audio: locate samples in %s: %w", path, err)
	}

	raw := make([]float32, d.PCMLen()/(wavBitDepth/8))
	if err = binary.Read(d.PCMChunk, binary.LittleEndian, raw); err != nil {
		return Audio{}, fmt.Errorf("audio: decode samples in %s: %w", path, err)
	}
	samples := make([]float64, len(raw))
	for i, s := range raw {
		samples[i] = float64(s)
	}
	return Audio{Samples: samples, SampleRate: int(d.SampleRate)}, nil
}
