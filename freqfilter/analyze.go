package freqfilter

import "github.com/cwbudde/algo-freeinit/volume"

// Analysis summarizes a filter mask for inspection and tooling.
type Analysis struct {
	// Min and Max are the extreme mask values.
	Min float64
	Max float64
	// Mean is the average mask value. For a low-pass mask this is the
	// fraction of total spectral energy a flat spectrum would retain.
	Mean float64
	// PassFraction is the fraction of coordinates with value above 0.5.
	PassFraction float64
	// Binary reports whether every value is exactly 0 or exactly 1, as
	// produced by the ideal and box methods.
	Binary bool
}

// Analyze computes summary statistics of a mask produced by [Build].
// A nil mask yields a zero Analysis.
func Analyze(mask *volume.Volume) Analysis {
	if mask == nil || mask.Len() == 0 {
		return Analysis{}
	}

	data := mask.Data()
	a := Analysis{Min: data[0], Max: data[0], Binary: true}
	sum := 0.0
	pass := 0
	for _, v := range data {
		if v < a.Min {
			a.Min = v
		}
		if v > a.Max {
			a.Max = v
		}
		sum += v
		if v > 0.5 {
			pass++
		}
		if v != 0 && v != 1 {
			a.Binary = false
		}
	}
	n := float64(len(data))
	a.Mean = sum / n
	a.PassFraction = float64(pass) / n
	return a
}
