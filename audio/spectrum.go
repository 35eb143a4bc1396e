package audio

import (
	"github.com/mjibson/go-dsp/fft"
)

// Spectrum returns the discrete Fourier transform of the signal.
//
// The result has one complex bin per input sample; bin k corresponds to
// the frequency k*SampleRate/NumSamples Hz. The buffer length does not
// need to be a power of two.
func (a Audio) Spectrum() []complex128 {
	return fft.FFTReal(a.Samples)
}

// FromSpectrum builds an Audio from a full complex spectrum by inverse
// transform, keeping the real part of each output sample.
//
// The inverse transform is normalized, so a Spectrum/FromSpectrum round
// trip reproduces the original signal up to floating-point error.
func FromSpectrum(spectrum []complex128, sampleRate int) Audio {
	signal := fft.IFFT(spectrum)
	samples := make([]float64, len(signal))
	for i, s := range signal {
		samples[i] = real(s)
	}
	return Audio{Samples: samples, SampleRate: sampleRate}
}

// LowPass returns a copy of the signal with every spectral bin from
// index cutoff/SampleRate*NumSamples upward zeroed, then transformed
// back, i.e. a brick-wall low-pass filter.
//
// Bins are cut by raw index across the full mirrored spectrum, so the
// conjugate half of a passband tone is removed along with the stopband;
// DC passes untouched while pure tones below cutoff keep half their
// amplitude. The receiver is left unmodified.
func (a Audio) LowPass(cutoff float64) Audio {
	spectrum := a.Spectrum()
	cutoffIndex := int(cutoff / float64(a.SampleRate) * float64(len(spectrum)))
	if cutoffIndex < 0 {
		cutoffIndex = 0
	}
	for i := cutoffIndex; i < len(spectrum); i++ {
		spectrum[i] = 0
	}
	return FromSpectrum(spectrum, a.SampleRate)
}
