package freqfilter

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-freeinit/volume"
)

// Method identifies the shape of a low-pass filter mask.
type Method int

const (
	// MethodGaussian selects the smooth gaussian falloff.
	MethodGaussian Method = iota
	// MethodIdeal selects the hard radial cutoff.
	MethodIdeal
	// MethodBox selects the axis-aligned binary block.
	MethodBox
	// MethodButterworth selects the order-n butterworth falloff.
	MethodButterworth
)

// String returns the lowercase name of the method.
func (m Method) String() string {
	switch m {
	case MethodGaussian:
		return "gaussian"
	case MethodIdeal:
		return "ideal"
	case MethodBox:
		return "box"
	case MethodButterworth:
		return "butterworth"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod resolves a method name as accepted by command-line tools.
// Matching is case-insensitive.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gaussian":
		return MethodGaussian, nil
	case "ideal":
		return MethodIdeal, nil
	case "box":
		return MethodBox, nil
	case "butterworth":
		return MethodButterworth, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedMethod, name)
	}
}

// defaultOrder is the butterworth order used when Params.Order is zero.
const defaultOrder = 4

// Params configures mask construction for [Build].
type Params struct {
	// Method selects the mask shape.
	Method Method
	// SpatialCutoff is the normalized cutoff d_s in [0, 1] shared by the
	// height and width axes. A value of 0 produces an all-zero mask.
	SpatialCutoff float64
	// TemporalCutoff is the normalized cutoff d_t in [0, 1] for the time
	// axis. A value of 0 produces an all-zero mask.
	TemporalCutoff float64
	// Order is the butterworth order n. Zero selects the default of 4.
	// Ignored by the other methods.
	Order int
}

// DefaultParams returns the parameters commonly used for noise
// reinitialization: a butterworth mask of order 4 with both cutoffs at 0.25.
func DefaultParams() Params {
	return Params{
		Method:         MethodButterworth,
		SpatialCutoff:  0.25,
		TemporalCutoff: 0.25,
		Order:          defaultOrder,
	}
}

// Build constructs the low-pass mask for the trailing (time, height, width)
// dimensions of shape. The returned mask has Batch = Channels = 1; the
// batch and channel extents of shape do not affect the result. Unknown
// methods report [ErrUnsupportedMethod].
func Build(shape volume.Shape, params Params) (*volume.Volume, error) {
	if params.Order == 0 {
		params.Order = defaultOrder
	}
	switch params.Method {
	case MethodGaussian:
		return Gaussian(shape, params.SpatialCutoff, params.TemporalCutoff)
	case MethodIdeal:
		return Ideal(shape, params.SpatialCutoff, params.TemporalCutoff)
	case MethodBox:
		return Box(shape, params.SpatialCutoff, params.TemporalCutoff)
	case MethodButterworth:
		return Butterworth(shape, params.Order, params.SpatialCutoff, params.TemporalCutoff)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMethod, int(params.Method))
	}
}

// Gaussian builds a gaussian low-pass mask with value exp(-d² / (2·d_s²))
// at squared centered distance d².
func Gaussian(shape volume.Shape, spatial, temporal float64) (*volume.Volume, error) {
	mask, done, err := newMask(shape, spatial, temporal)
	if err != nil || done {
		return mask, err
	}

	inv := 1 / (2 * spatial * spatial)
	fillRadial(mask, spatial, temporal, func(dsq float64) float64 {
		return math.Exp(-inv * dsq)
	})
	return mask, nil
}

// Ideal builds a binary low-pass mask that passes every coordinate whose
// squared centered distance satisfies d² <= 2·d_s. The threshold compares
// the squared distance against twice the unsquared cutoff.
func Ideal(shape volume.Shape, spatial, temporal float64) (*volume.Volume, error) {
	mask, done, err := newMask(shape, spatial, temporal)
	if err != nil || done {
		return mask, err
	}

	limit := 2 * spatial
	fillRadial(mask, spatial, temporal, func(dsq float64) float64 {
		if dsq <= limit {
			return 1
		}
		return 0
	})
	return mask, nil
}

// Butterworth builds an order-n butterworth low-pass mask with value
// 1 / (1 + (d²/d_s²)^n) at squared centered distance d².
func Butterworth(shape volume.Shape, order int, spatial, temporal float64) (*volume.Volume, error) {
	if err := validateOrder(order); err != nil {
		return nil, err
	}
	mask, done, err := newMask(shape, spatial, temporal)
	if err != nil || done {
		return mask, err
	}

	inv := 1 / (spatial * spatial)
	n := float64(order)
	fillRadial(mask, spatial, temporal, func(dsq float64) float64 {
		return 1 / (1 + math.Pow(dsq*inv, n))
	})
	return mask, nil
}

// Box builds a binary mask that is 1 on an axis-aligned block around the
// center coordinate and 0 elsewhere. The half-width of the block is
// round(floor(H/2)·d_s) on the height axis and round(floor(T/2)·d_t) on the
// time axis; the width axis reuses the height-derived half-width. Rounding
// is half away from zero. Blocks wider than an axis are clipped to it.
func Box(shape volume.Shape, spatial, temporal float64) (*volume.Volume, error) {
	mask, done, err := newMask(shape, spatial, temporal)
	if err != nil || done {
		return mask, err
	}

	s := mask.Shape()
	halfS := int(math.Round(float64(s.Height/2) * spatial))
	halfT := int(math.Round(float64(s.Time/2) * temporal))

	t0, t1 := clampSpan(s.Time/2, halfT, s.Time)
	h0, h1 := clampSpan(s.Height/2, halfS, s.Height)
	w0, w1 := clampSpan(s.Width/2, halfS, s.Width)

	data := mask.Data()
	for t := t0; t < t1; t++ {
		for h := h0; h < h1; h++ {
			row := (t*s.Height + h) * s.Width
			for w := w0; w < w1; w++ {
				data[row+w] = 1
			}
		}
	}
	return mask, nil
}

// newMask validates the cutoffs and allocates the zero-filled mask volume
// for the trailing dimensions of shape. done reports the d_s = 0 or
// d_t = 0 fast path, in which case the all-zero mask is already final.
func newMask(shape volume.Shape, spatial, temporal float64) (*volume.Volume, bool, error) {
	if err := validateCutoffs(spatial, temporal); err != nil {
		return nil, false, err
	}
	mask, err := volume.New(volume.Shape{
		Batch:    1,
		Channels: 1,
		Time:     shape.Time,
		Height:   shape.Height,
		Width:    shape.Width,
	})
	if err != nil {
		return nil, false, err
	}
	return mask, spatial == 0 || temporal == 0, nil
}

// fillRadial writes value(d²) at every (t, h, w) coordinate of mask, where
// d² is the squared centered distance with the temporal axis compressed by
// d_s/d_t. Each axis coordinate is normalized to [-1, 1) via 2i/n - 1.
func fillRadial(mask *volume.Volume, spatial, temporal float64, value func(dsq float64) float64) {
	s := mask.Shape()
	data := mask.Data()
	ratio := spatial / temporal

	i := 0
	for t := 0; t < s.Time; t++ {
		ct := ratio * (2*float64(t)/float64(s.Time) - 1)
		for h := 0; h < s.Height; h++ {
			ch := 2*float64(h)/float64(s.Height) - 1
			for w := 0; w < s.Width; w++ {
				cw := 2*float64(w)/float64(s.Width) - 1
				data[i] = value(ct*ct + ch*ch + cw*cw)
				i++
			}
		}
	}
}

// clampSpan returns the [lo, hi) index range of the block centered at
// center with the given half-width, clipped to [0, n).
func clampSpan(center, half, n int) (int, int) {
	lo := center - half
	hi := center + half
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	return lo, hi
}
