// Package freqfilter builds frequency-domain low-pass filter masks over
// (time, height, width) volumes for video-diffusion noise reinitialization.
//
// A mask weights each centered frequency-space coordinate with "how much
// low-frequency content to keep" in [0, 1]. Four mask shapes are available:
//
//   - Gaussian: smooth falloff exp(-d² / (2·d_s²))
//   - Butterworth: 1 / (1 + (d²/d_s²)^n); order n trades steepness between
//     the gaussian (low n) and ideal (high n) shapes
//   - Ideal: hard binary cutoff
//   - Box: binary axis-aligned block, an approximated ideal filter that
//     avoids the per-coordinate distance computation
//
// Masks are centered: the zero-frequency coordinate sits at the integer
// midpoint of each axis, matching spectra that have been center-shifted.
// A spatial or temporal cutoff of exactly 0 yields an all-zero mask, which
// callers use to disable low-pass mixing entirely.
//
// # Usage
//
//	shape := volume.Shape{Batch: 1, Channels: 4, Time: 16, Height: 64, Width: 64}
//	mask, err := freqfilter.Build(shape, freqfilter.DefaultParams())
//
// The mask has Batch = Channels = 1 and broadcasts over those axes when
// passed to the mixing routines.
package freqfilter
