package freqfilter

import (
	"testing"

	"github.com/cwbudde/algo-freeinit/volume"
)

func BenchmarkBuild(b *testing.B) {
	shapes := []struct {
		name  string
		shape volume.Shape
	}{
		{"16x32x32", volume.Shape{Batch: 1, Channels: 1, Time: 16, Height: 32, Width: 32}},
		{"16x64x64", volume.Shape{Batch: 1, Channels: 1, Time: 16, Height: 64, Width: 64}},
	}
	methods := []Method{MethodGaussian, MethodIdeal, MethodBox, MethodButterworth}

	for _, s := range shapes {
		for _, m := range methods {
			b.Run(m.String()+"/"+s.name, func(b *testing.B) {
				b.ReportAllocs()
				params := Params{Method: m, SpatialCutoff: 0.25, TemporalCutoff: 0.25}
				for i := 0; i < b.N; i++ {
					if _, err := Build(s.shape, params); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
