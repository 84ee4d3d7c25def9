// Package volume provides the dense tensor type shared by the filter and
// mixing packages.
//
// A volume is a real-valued array over (batch, channels, time, height, width)
// stored row-major with width fastest, so every (batch, channel) cell of
// Time*Height*Width values is one contiguous block. Elementwise arithmetic is
// delegated to SIMD-accelerated block operations where available.
package volume
