package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-freeinit/volume"
)

// RequireVolumeNearlyEqual fails t if got and want differ in shape or if
// any element pair exceeds eps (absolute tolerance).
func RequireVolumeNearlyEqual(t *testing.T, got, want *volume.Volume, eps float64) {
	t.Helper()
	if got.Shape() != want.Shape() {
		t.Fatalf("shape mismatch: got %v, want %v", got.Shape(), want.Shape())
	}
	g, w := got.Data(), want.Data()
	for i := range g {
		diff := math.Abs(g[i] - w[i])
		if diff > eps || math.IsNaN(diff) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, g[i], w[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element of v is NaN or Inf.
func RequireFinite(t *testing.T, v *volume.Volume) {
	t.Helper()
	for i, x := range v.Data() {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			t.Fatalf("index %d: non-finite value %v", i, x)
		}
	}
}

// MaxAbsDiff returns the maximum absolute element difference between two
// volumes. Returns an error if the shapes differ.
func MaxAbsDiff(a, b *volume.Volume) (float64, error) {
	if a.Shape() != b.Shape() {
		return 0, fmt.Errorf("shape mismatch: %v vs %v", a.Shape(), b.Shape())
	}
	ad, bd := a.Data(), b.Data()
	maxDiff := 0.0
	for i := range ad {
		d := math.Abs(ad[i] - bd[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
