// Package freqmix blends video latent volumes in the frequency domain.
//
// The core operation keeps the low-frequency band of one volume and takes
// the high-frequency band from another, weighted by a low-pass mask from
// the freqfilter package:
//
//	mixed = IFFT3(shift(FFT3(x))·mask + shift(FFT3(noise))·(1-mask))
//
// The three-dimensional transform runs separably over the (time, height,
// width) axes of each (batch, channel) cell; spectra are center-shifted
// before blending so that the mask's centered geometry lines up with the
// zero-frequency bin. The result is the real part of the inverse
// transform.
//
// # Usage
//
// For a single blend, use the one-shot function:
//
//	mixed, err := freqmix.Mix(x, noise, mask)
//
// Iterative noise reinitialization mixes many volumes of one shape. Create
// a reusable [Mixer] to avoid repeated FFT plan creation:
//
//	m, err := freqmix.NewMixer(shape)
//	for i := 0; i < rounds; i++ {
//		mixed, err := m.Mix(x, freshNoise(), mask)
//		...
//	}
//
// [Mixer.EnergySplit] reports how a volume's spectral energy divides under
// a mask, which helps when choosing cutoff frequencies.
//
// A [Mixer] is not safe for concurrent use; create one per goroutine.
package freqmix
