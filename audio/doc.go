// Package audio holds rendered sample buffers and their file formats.
//
// Audio is a read-only value: a mono float sample buffer plus its sample
// rate. Construction from a signal module enforces the [-1, 1] amplitude
// contract, failing with a ClippingError at the first offending sample
// rather than clamping silently; clipping always means the generating
// parameters were wrong, and hiding it would poison a dataset.
//
// The package also provides the spectral side (forward/inverse FFT and a
// brick-wall low-pass used for post-hoc cleanup) and the on-disk formats:
// 32-bit float mono WAV, CSV dumps for plotting, and a bridge to the
// go-audio buffer types.
//
// Errors:
//
//	ErrClipping            - a rendered sample left [-1, 1] (carries the index).
//	ErrUnsupportedChannels - WAV file is not mono.
//	ErrUnsupportedBitDepth - WAV file is not 32-bit.
//	ErrUnsupportedFormat   - WAV file is not IEEE float.
package audio
