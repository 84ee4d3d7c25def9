package volume

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// ErrShapeMismatch is returned when two volumes with different shapes are
// combined by an elementwise operation.
var ErrShapeMismatch = errors.New("volume: shape mismatch")

// Shape describes the dimensions of a video latent volume in
// (batch, channels, time, height, width) order.
//
// Only Time, Height, and Width carry frequency-space geometry; Batch and
// Channels are broadcast dimensions.
type Shape struct {
	Batch    int
	Channels int
	Time     int
	Height   int
	Width    int
}

// Validate returns an error unless every dimension is at least 1.
func (s Shape) Validate() error {
	if s.Batch < 1 {
		return fmt.Errorf("volume: batch must be >= 1: %d", s.Batch)
	}

	if s.Channels < 1 {
		return fmt.Errorf("volume: channels must be >= 1: %d", s.Channels)
	}

	if s.Time < 1 {
		return fmt.Errorf("volume: time must be >= 1: %d", s.Time)
	}

	if s.Height < 1 {
		return fmt.Errorf("volume: height must be >= 1: %d", s.Height)
	}

	if s.Width < 1 {
		return fmt.Errorf("volume: width must be >= 1: %d", s.Width)
	}

	return nil
}

// Len returns the total number of values, Batch*Channels*Time*Height*Width.
func (s Shape) Len() int {
	return s.Batch * s.Channels * s.Time * s.Height * s.Width
}

// CellLen returns the number of values in one (batch, channel) cell,
// Time*Height*Width.
func (s Shape) CellLen() int {
	return s.Time * s.Height * s.Width
}

// SameCell reports whether s and o agree on the Time/Height/Width axes.
func (s Shape) SameCell(o Shape) bool {
	return s.Time == o.Time && s.Height == o.Height && s.Width == o.Width
}

// String formats the shape as "BxCxTxHxW".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%dx%dx%d", s.Batch, s.Channels, s.Time, s.Height, s.Width)
}

// Volume is a dense real-valued tensor over a Shape.
//
// The zero value is not usable; construct volumes with [New] or [FromData].
type Volume struct {
	shape Shape
	data  []float64
}

// New allocates a zero-filled volume of the given shape.
func New(shape Shape) (*Volume, error) {
	err := shape.Validate()
	if err != nil {
		return nil, err
	}

	return &Volume{shape: shape, data: make([]float64, shape.Len())}, nil
}

// FromData wraps an existing row-major slice as a volume without copying.
// The slice length must equal shape.Len().
func FromData(shape Shape, data []float64) (*Volume, error) {
	err := shape.Validate()
	if err != nil {
		return nil, err
	}

	if len(data) != shape.Len() {
		return nil, fmt.Errorf("volume: data length %d does not match shape %s (%d values)",
			len(data), shape, shape.Len())
	}

	return &Volume{shape: shape, data: data}, nil
}

// Shape returns the volume's dimensions.
func (v *Volume) Shape() Shape { return v.shape }

// Len returns the total number of values.
func (v *Volume) Len() int { return len(v.data) }

// Data returns the backing slice in row-major order. Mutations are visible
// to the volume.
func (v *Volume) Data() []float64 { return v.data }

// Cell returns the contiguous Time*Height*Width block for one
// (batch, channel) pair as a view into the backing slice.
// Cell panics if b or c is out of range.
func (v *Volume) Cell(b, c int) []float64 {
	if b < 0 || b >= v.shape.Batch || c < 0 || c >= v.shape.Channels {
		panic("volume: cell index out of range")
	}

	n := v.shape.CellLen()
	off := (b*v.shape.Channels + c) * n

	return v.data[off : off+n]
}

// At returns the value at the given coordinates.
// At panics if any coordinate is out of range.
func (v *Volume) At(b, c, t, h, w int) float64 {
	return v.data[v.index(b, c, t, h, w)]
}

// Set stores a value at the given coordinates.
// Set panics if any coordinate is out of range.
func (v *Volume) Set(b, c, t, h, w int, value float64) {
	v.data[v.index(b, c, t, h, w)] = value
}

// Clone returns an independent copy of the volume.
func (v *Volume) Clone() *Volume {
	data := make([]float64, len(v.data))
	copy(data, v.data)

	return &Volume{shape: v.shape, data: data}
}

// Fill sets every value to the given constant.
func (v *Volume) Fill(value float64) {
	for i := range v.data {
		v.data[i] = value
	}
}

// Scale multiplies every value by factor in place.
func (v *Volume) Scale(factor float64) {
	vecmath.ScaleBlock(v.data, v.data, factor)
}

// Mul returns the elementwise product of v and o as a new volume.
func (v *Volume) Mul(o *Volume) (*Volume, error) {
	err := v.requireSameShape(o)
	if err != nil {
		return nil, err
	}

	out := &Volume{shape: v.shape, data: make([]float64, len(v.data))}
	vecmath.MulBlock(out.data, v.data, o.data)

	return out, nil
}

// MulInPlace multiplies v elementwise by o.
func (v *Volume) MulInPlace(o *Volume) error {
	err := v.requireSameShape(o)
	if err != nil {
		return err
	}

	vecmath.MulBlockInPlace(v.data, o.data)

	return nil
}

// AddInPlace adds o elementwise to v.
func (v *Volume) AddInPlace(o *Volume) error {
	err := v.requireSameShape(o)
	if err != nil {
		return err
	}

	vecmath.AddBlockInPlace(v.data, o.data)

	return nil
}

func (v *Volume) requireSameShape(o *Volume) error {
	if o == nil {
		return fmt.Errorf("%w: nil operand", ErrShapeMismatch)
	}

	if v.shape != o.shape {
		return fmt.Errorf("%w: %s vs %s", ErrShapeMismatch, v.shape, o.shape)
	}

	return nil
}

func (v *Volume) index(b, c, t, h, w int) int {
	s := v.shape
	if b < 0 || b >= s.Batch || c < 0 || c >= s.Channels ||
		t < 0 || t >= s.Time || h < 0 || h >= s.Height ||
		w < 0 || w >= s.Width {
		panic("volume: index out of range")
	}

	return (((b*s.Channels+c)*s.Time+t)*s.Height+h)*s.Width + w
}
