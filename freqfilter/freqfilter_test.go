package freqfilter

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-freeinit/volume"
)

func TestBuildAllMethods(t *testing.T) {
	shape := volume.Shape{Batch: 2, Channels: 3, Time: 4, Height: 4, Width: 4}
	methods := []Method{MethodGaussian, MethodIdeal, MethodBox, MethodButterworth}

	for _, m := range methods {
		t.Run(m.String(), func(t *testing.T) {
			mask, err := Build(shape, Params{Method: m, SpatialCutoff: 0.25, TemporalCutoff: 0.25})
			if err != nil {
				t.Fatalf("Build: %v", err)
			}

			want := volume.Shape{Batch: 1, Channels: 1, Time: 4, Height: 4, Width: 4}
			if mask.Shape() != want {
				t.Fatalf("mask shape=%v, want %v", mask.Shape(), want)
			}

			for i, v := range mask.Data() {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("value[%d] invalid: %v", i, v)
				}
				if v < 0 || v > 1 {
					t.Fatalf("value[%d]=%v outside [0, 1]", i, v)
				}
			}

			if got := mask.At(0, 0, 2, 2, 2); got != 1 {
				t.Fatalf("center value=%v, want 1", got)
			}
		})
	}
}

func TestZeroCutoffYieldsZeroMask(t *testing.T) {
	shape := volume.Shape{Batch: 1, Channels: 1, Time: 4, Height: 4, Width: 4}
	methods := []Method{MethodGaussian, MethodIdeal, MethodBox, MethodButterworth}

	for _, m := range methods {
		for _, p := range []Params{
			{Method: m, SpatialCutoff: 0, TemporalCutoff: 0.25},
			{Method: m, SpatialCutoff: 0.25, TemporalCutoff: 0},
		} {
			mask, err := Build(shape, p)
			if err != nil {
				t.Fatalf("%v ds=%v dt=%v: %v", m, p.SpatialCutoff, p.TemporalCutoff, err)
			}
			for i, v := range mask.Data() {
				if v != 0 {
					t.Fatalf("%v ds=%v dt=%v: value[%d]=%v, want 0", m, p.SpatialCutoff, p.TemporalCutoff, i, v)
				}
			}
		}
	}
}

func TestGaussianFormula(t *testing.T) {
	shape := volume.Shape{Batch: 1, Channels: 1, Time: 4, Height: 4, Width: 4}
	mask, err := Gaussian(shape, 0.25, 0.25)
	if err != nil {
		t.Fatalf("Gaussian: %v", err)
	}

	// (1,1,1) sits at centered coordinates (-0.5, -0.5, -0.5).
	dsq := 0.75
	want := math.Exp(-dsq / (2 * 0.25 * 0.25))
	if got := mask.At(0, 0, 1, 1, 1); !almostEqual(got, want, 1e-15) {
		t.Fatalf("At(1,1,1)=%v, want %v", got, want)
	}
}

func TestIdealThresholdIsTwiceCutoff(t *testing.T) {
	shape := volume.Shape{Batch: 1, Channels: 1, Time: 4, Height: 4, Width: 4}
	mask, err := Ideal(shape, 0.5, 0.5)
	if err != nil {
		t.Fatalf("Ideal: %v", err)
	}

	// (2,0,2) has d² = 1, exactly the 2·d_s limit, and must pass.
	if got := mask.At(0, 0, 2, 0, 2); got != 1 {
		t.Fatalf("boundary value=%v, want 1", got)
	}

	// (2,0,0) has d² = 2 and must not.
	if got := mask.At(0, 0, 2, 0, 0); got != 0 {
		t.Fatalf("outside value=%v, want 0", got)
	}

	for i, v := range mask.Data() {
		if v != 0 && v != 1 {
			t.Fatalf("value[%d]=%v, want 0 or 1", i, v)
		}
	}
}

func TestButterworthFormulaAndOrder(t *testing.T) {
	shape := volume.Shape{Batch: 1, Channels: 1, Time: 4, Height: 4, Width: 4}
	mask, err := Butterworth(shape, 4, 0.25, 0.25)
	if err != nil {
		t.Fatalf("Butterworth: %v", err)
	}

	dsq := 0.75
	want := 1 / (1 + math.Pow(dsq/(0.25*0.25), 4))
	if got := mask.At(0, 0, 1, 1, 1); !almostEqual(got, want, 1e-15) {
		t.Fatalf("At(1,1,1)=%v, want %v", got, want)
	}

	if _, err := Butterworth(shape, 0, 0.25, 0.25); err == nil {
		t.Fatal("expected error for order 0")
	}
}

func TestButterworthOrderSteepness(t *testing.T) {
	shape := volume.Shape{Batch: 1, Channels: 1, Time: 8, Height: 8, Width: 8}
	low, err := Butterworth(shape, 1, 0.5, 0.5)
	if err != nil {
		t.Fatalf("order 1: %v", err)
	}
	high, err := Butterworth(shape, 8, 0.5, 0.5)
	if err != nil {
		t.Fatalf("order 8: %v", err)
	}

	// Inside the cutoff the higher order passes more.
	if high.At(0, 0, 4, 4, 5) <= low.At(0, 0, 4, 4, 5) {
		t.Fatalf("inside cutoff: order 8 %v <= order 1 %v", high.At(0, 0, 4, 4, 5), low.At(0, 0, 4, 4, 5))
	}

	// Outside the cutoff it rejects more.
	if high.At(0, 0, 4, 4, 7) >= low.At(0, 0, 4, 4, 7) {
		t.Fatalf("outside cutoff: order 8 %v >= order 1 %v", high.At(0, 0, 4, 4, 7), low.At(0, 0, 4, 4, 7))
	}
}

func TestBuildDefaultsButterworthOrder(t *testing.T) {
	shape := volume.Shape{Batch: 1, Channels: 1, Time: 4, Height: 4, Width: 4}
	got, err := Build(shape, Params{Method: MethodButterworth, SpatialCutoff: 0.25, TemporalCutoff: 0.25})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want, err := Butterworth(shape, 4, 0.25, 0.25)
	if err != nil {
		t.Fatalf("Butterworth: %v", err)
	}

	for i := range got.Data() {
		if got.Data()[i] != want.Data()[i] {
			t.Fatalf("value[%d]: %v != %v", i, got.Data()[i], want.Data()[i])
		}
	}
}

func TestBoxCenteredBlock(t *testing.T) {
	shape := volume.Shape{Batch: 1, Channels: 1, Time: 4, Height: 4, Width: 4}
	mask, err := Box(shape, 0.25, 0.25)
	if err != nil {
		t.Fatalf("Box: %v", err)
	}

	// Half-widths round(2·0.25) = 1, so ones exactly on [1, 3) per axis.
	for tt := 0; tt < 4; tt++ {
		for h := 0; h < 4; h++ {
			for w := 0; w < 4; w++ {
				want := 0.0
				if tt >= 1 && tt < 3 && h >= 1 && h < 3 && w >= 1 && w < 3 {
					want = 1
				}
				if got := mask.At(0, 0, tt, h, w); got != want {
					t.Fatalf("At(%d,%d,%d)=%v, want %v", tt, h, w, got, want)
				}
			}
		}
	}
}

func TestBoxWidthUsesHeightThreshold(t *testing.T) {
	shape := volume.Shape{Batch: 1, Channels: 1, Time: 4, Height: 8, Width: 4}
	mask, err := Box(shape, 0.5, 0.5)
	if err != nil {
		t.Fatalf("Box: %v", err)
	}

	// halfS = round(4·0.5) = 2 from the height axis; on the narrower width
	// axis the block [0, 4) spans every index after clipping.
	for w := 0; w < 4; w++ {
		if got := mask.At(0, 0, 2, 4, w); got != 1 {
			t.Fatalf("At(2,4,%d)=%v, want 1", w, got)
		}
	}

	// Height keeps the [2, 6) block.
	if got := mask.At(0, 0, 2, 1, 2); got != 0 {
		t.Fatalf("At(2,1,2)=%v, want 0", got)
	}
	if got := mask.At(0, 0, 2, 6, 2); got != 0 {
		t.Fatalf("At(2,6,2)=%v, want 0", got)
	}

	// halfT = round(2·0.5) = 1 keeps time to [1, 3).
	if got := mask.At(0, 0, 0, 4, 2); got != 0 {
		t.Fatalf("At(0,4,2)=%v, want 0", got)
	}
	if got := mask.At(0, 0, 3, 4, 2); got != 0 {
		t.Fatalf("At(3,4,2)=%v, want 0", got)
	}
}

func TestMaskIgnoresBatchAndChannels(t *testing.T) {
	a, err := Build(volume.Shape{Batch: 1, Channels: 1, Time: 4, Height: 4, Width: 4}, DefaultParams())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := Build(volume.Shape{Batch: 3, Channels: 7, Time: 4, Height: 4, Width: 4}, DefaultParams())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if a.Shape() != b.Shape() {
		t.Fatalf("shapes differ: %v vs %v", a.Shape(), b.Shape())
	}
	for i := range a.Data() {
		if a.Data()[i] != b.Data()[i] {
			t.Fatalf("value[%d]: %v != %v", i, a.Data()[i], b.Data()[i])
		}
	}
}

func TestCutoffValidation(t *testing.T) {
	shape := volume.Shape{Batch: 1, Channels: 1, Time: 4, Height: 4, Width: 4}
	cases := []struct {
		name   string
		ds, dt float64
	}{
		{"negative spatial", -0.1, 0.25},
		{"spatial above one", 1.5, 0.25},
		{"negative temporal", 0.25, -1},
		{"temporal above one", 0.25, 2},
		{"nan spatial", math.NaN(), 0.25},
		{"nan temporal", 0.25, math.NaN()},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Gaussian(shape, c.ds, c.dt); err == nil {
				t.Fatal("expected error")
			}
			if _, err := Build(shape, Params{Method: MethodBox, SpatialCutoff: c.ds, TemporalCutoff: c.dt}); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestBuildInvalidShape(t *testing.T) {
	_, err := Build(volume.Shape{Batch: 1, Channels: 1, Time: 0, Height: 4, Width: 4}, DefaultParams())
	if err == nil {
		t.Fatal("expected error for zero time extent")
	}
}

func TestBuildUnknownMethod(t *testing.T) {
	shape := volume.Shape{Batch: 1, Channels: 1, Time: 4, Height: 4, Width: 4}
	_, err := Build(shape, Params{Method: Method(42), SpatialCutoff: 0.25, TemporalCutoff: 0.25})
	if !errors.Is(err, ErrUnsupportedMethod) {
		t.Fatalf("err=%v, want ErrUnsupportedMethod", err)
	}
}

func TestParseMethod(t *testing.T) {
	cases := []struct {
		in   string
		want Method
	}{
		{"gaussian", MethodGaussian},
		{"ideal", MethodIdeal},
		{"box", MethodBox},
		{"butterworth", MethodButterworth},
		{"Butterworth", MethodButterworth},
		{" BOX ", MethodBox},
	}

	for _, c := range cases {
		got, err := ParseMethod(c.in)
		if err != nil {
			t.Fatalf("ParseMethod(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseMethod(%q)=%v, want %v", c.in, got, c.want)
		}
	}

	if _, err := ParseMethod("sinc"); !errors.Is(err, ErrUnsupportedMethod) {
		t.Fatalf("err=%v, want ErrUnsupportedMethod", err)
	}
}

func TestMethodString(t *testing.T) {
	if got := MethodGaussian.String(); got != "gaussian" {
		t.Fatalf("got %q", got)
	}
	if got := Method(9).String(); got != "method(9)" {
		t.Fatalf("got %q", got)
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
