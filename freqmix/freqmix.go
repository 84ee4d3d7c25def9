package freqmix

import (
	"fmt"

	"github.com/cwbudde/algo-freeinit/volume"
)

// Mix blends the low-frequency band of x with the high-frequency band of
// noise under a centered low-pass mask and returns the result as a new
// volume. The mask is broadcast over the batch and channel axes.
//
// This is a convenience wrapper that creates a temporary [Mixer]; for
// repeated mixing over one shape, create the mixer once.
func Mix(x, noise, mask *volume.Volume) (*volume.Volume, error) {
	if x == nil {
		return nil, fmt.Errorf("freqmix: nil input volume")
	}
	m, err := NewMixer(x.Shape())
	if err != nil {
		return nil, err
	}
	return m.Mix(x, noise, mask)
}

// Mixer performs frequency-domain mixing over volumes of a fixed shape,
// reusing FFT plans and scratch buffers across calls.
//
// A Mixer is not safe for concurrent use; create one per goroutine.
type Mixer struct {
	shape volume.Shape
	plans *axisPlans

	xSpec     []complex128
	noiseSpec []complex128
	scratch   []complex128
}

// NewMixer creates a mixer for volumes of the given shape.
func NewMixer(shape volume.Shape) (*Mixer, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	plans, err := newAxisPlans(shape.Time, shape.Height, shape.Width)
	if err != nil {
		return nil, err
	}

	n := shape.CellLen()
	return &Mixer{
		shape:     shape,
		plans:     plans,
		xSpec:     make([]complex128, n),
		noiseSpec: make([]complex128, n),
		scratch:   make([]complex128, n),
	}, nil
}

// Shape returns the volume shape the mixer was created for.
func (m *Mixer) Shape() volume.Shape {
	return m.shape
}

// Mix blends x and noise into a newly allocated volume. See [Mixer.MixTo].
func (m *Mixer) Mix(x, noise, mask *volume.Volume) (*volume.Volume, error) {
	dst, err := volume.New(m.shape)
	if err != nil {
		return nil, err
	}
	if err := m.MixTo(dst, x, noise, mask); err != nil {
		return nil, err
	}
	return dst, nil
}

// MixTo blends x and noise into dst. Every (batch, channel) cell is
// processed independently: both cells are transformed with a 3D FFT over
// (time, height, width), center-shifted, blended as
// spec_x·mask + spec_noise·(1-mask), unshifted, and inverse transformed.
// dst receives the real part of the result.
//
// dst, x, and noise must match the mixer shape. mask must have batch and
// channel extents of 1 and the mixer's cell geometry, as produced by
// freqfilter.Build. dst may alias x or noise.
func (m *Mixer) MixTo(dst, x, noise, mask *volume.Volume) error {
	if err := m.validate(dst, x, noise, mask); err != nil {
		return err
	}

	maskData := mask.Data()
	for b := 0; b < m.shape.Batch; b++ {
		for c := 0; c < m.shape.Channels; c++ {
			if err := m.mixCell(dst.Cell(b, c), x.Cell(b, c), noise.Cell(b, c), maskData); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Mixer) mixCell(dst, x, noise, mask []float64) error {
	s := m.shape

	for i, v := range x {
		m.scratch[i] = complex(v, 0)
	}
	if err := m.plans.forward(m.scratch); err != nil {
		return err
	}
	shift3(m.xSpec, m.scratch, s.Time, s.Height, s.Width)

	for i, v := range noise {
		m.scratch[i] = complex(v, 0)
	}
	if err := m.plans.forward(m.scratch); err != nil {
		return err
	}
	shift3(m.noiseSpec, m.scratch, s.Time, s.Height, s.Width)

	for i, w := range mask {
		keep := complex(w, 0)
		m.scratch[i] = m.xSpec[i]*keep + m.noiseSpec[i]*(1-keep)
	}

	unshift3(m.xSpec, m.scratch, s.Time, s.Height, s.Width)
	if err := m.plans.inverse(m.xSpec); err != nil {
		return err
	}

	for i := range dst {
		dst[i] = real(m.xSpec[i])
	}
	return nil
}

func (m *Mixer) validate(dst, x, noise, mask *volume.Volume) error {
	if dst == nil || x == nil || noise == nil || mask == nil {
		return fmt.Errorf("freqmix: nil volume")
	}
	if x.Shape() != m.shape {
		return fmt.Errorf("%w: x is %s, mixer wants %s", volume.ErrShapeMismatch, x.Shape(), m.shape)
	}
	if noise.Shape() != m.shape {
		return fmt.Errorf("%w: noise is %s, mixer wants %s", volume.ErrShapeMismatch, noise.Shape(), m.shape)
	}
	if dst.Shape() != m.shape {
		return fmt.Errorf("%w: dst is %s, mixer wants %s", volume.ErrShapeMismatch, dst.Shape(), m.shape)
	}
	if mask.Shape() != m.maskShape() {
		return fmt.Errorf("%w: mask is %s, mixer wants %s", volume.ErrShapeMismatch, mask.Shape(), m.maskShape())
	}
	return nil
}

// maskShape is the shape masks must have for this mixer.
func (m *Mixer) maskShape() volume.Shape {
	return volume.Shape{Batch: 1, Channels: 1, Time: m.shape.Time, Height: m.shape.Height, Width: m.shape.Width}
}
