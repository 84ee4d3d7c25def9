package freqmix

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// axisPlans bundles the per-axis FFT plans for one (time, height, width)
// cell geometry. The 3D transform is separable: every axis line of the
// row-major buffer is transformed independently. A nil plan marks a
// length-1 axis, which transforms to itself.
type axisPlans struct {
	t, h, w int

	time   *algofft.Plan[complex128]
	height *algofft.Plan[complex128]
	width  *algofft.Plan[complex128]
}

func newAxisPlans(t, h, w int) (*axisPlans, error) {
	p := &axisPlans{t: t, h: h, w: w}

	var err error
	if p.time, err = planFor(t); err != nil {
		return nil, fmt.Errorf("freqmix: failed to create time-axis FFT plan: %w", err)
	}
	if p.height, err = planFor(h); err != nil {
		return nil, fmt.Errorf("freqmix: failed to create height-axis FFT plan: %w", err)
	}
	if p.width, err = planFor(w); err != nil {
		return nil, fmt.Errorf("freqmix: failed to create width-axis FFT plan: %w", err)
	}
	return p, nil
}

func planFor(n int) (*algofft.Plan[complex128], error) {
	if n < 2 {
		return nil, nil
	}
	return algofft.NewPlan64(n)
}

// forward computes the unnormalized 3D FFT of buf in place.
func (p *axisPlans) forward(buf []complex128) error {
	return p.transform(buf, false)
}

// inverse computes the 3D inverse FFT of buf in place. Each axis pass
// normalizes by its length, so the full pass divides by t·h·w.
func (p *axisPlans) inverse(buf []complex128) error {
	return p.transform(buf, true)
}

func (p *axisPlans) transform(buf []complex128, inverse bool) error {
	// Width lines are contiguous rows.
	if p.width != nil {
		for base := 0; base < len(buf); base += p.w {
			line := buf[base : base+p.w]
			if err := p.width.TransformStrided(line, line, 1, inverse); err != nil {
				return fmt.Errorf("freqmix: width-axis FFT failed: %w", err)
			}
		}
	}

	frame := p.h * p.w

	// Height lines start at every (frame, column) offset and step by the
	// row length.
	if p.height != nil {
		for t := 0; t < p.t; t++ {
			for x := 0; x < p.w; x++ {
				line := buf[t*frame+x:]
				if err := p.height.TransformStrided(line, line, p.w, inverse); err != nil {
					return fmt.Errorf("freqmix: height-axis FFT failed: %w", err)
				}
			}
		}
	}

	// Time lines start at every in-frame offset and step by the frame size.
	if p.time != nil {
		for off := 0; off < frame; off++ {
			line := buf[off:]
			if err := p.time.TransformStrided(line, line, frame, inverse); err != nil {
				return fmt.Errorf("freqmix: time-axis FFT failed: %w", err)
			}
		}
	}

	return nil
}

// shift3 moves the zero-frequency bin of the (t, h, w) spectrum src to the
// volume center, the 3D analogue of fftshift. dst and src must not alias.
func shift3(dst, src []complex128, t, h, w int) {
	gather3(dst, src, t, h, w, (t+1)/2, (h+1)/2, (w+1)/2)
}

// unshift3 undoes shift3, returning the zero-frequency bin to index 0.
// dst and src must not alias.
func unshift3(dst, src []complex128, t, h, w int) {
	gather3(dst, src, t, h, w, t/2, h/2, w/2)
}

// gather3 writes dst[t, h, w] = src[(t+ot)%T, (h+oh)%H, (w+ow)%W] over the
// row-major (T, H, W) layout.
func gather3(dst, src []complex128, t, h, w, ot, oh, ow int) {
	i := 0
	for tt := 0; tt < t; tt++ {
		st := ((tt + ot) % t) * h * w
		for hh := 0; hh < h; hh++ {
			sh := st + ((hh+oh)%h)*w
			for ww := 0; ww < w; ww++ {
				dst[i] = src[sh+(ww+ow)%w]
				i++
			}
		}
	}
}
