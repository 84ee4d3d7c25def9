package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-freeinit/volume"
)

// NoiseVolume fills a volume with standard normal noise drawn from a fixed
// seed for reproducibility.
func NoiseVolume(seed int64, shape volume.Shape) *volume.Volume {
	v := mustNew(shape)
	rng := rand.New(rand.NewSource(seed))
	data := v.Data()
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	return v
}

// RampVolume fills a volume with a linear ramp normalized to [0, 1), a
// deterministic non-constant pattern.
func RampVolume(shape volume.Shape) *volume.Volume {
	v := mustNew(shape)
	data := v.Data()
	n := float64(len(data))
	for i := range data {
		data[i] = float64(i) / n
	}
	return v
}

// ConstVolume fills a volume with a constant value.
func ConstVolume(value float64, shape volume.Shape) *volume.Volume {
	v := mustNew(shape)
	v.Fill(value)
	return v
}

// ImpulseVolume places a single unit sample at the center coordinate of
// every (batch, channel) cell.
func ImpulseVolume(shape volume.Shape) *volume.Volume {
	v := mustNew(shape)
	for b := 0; b < shape.Batch; b++ {
		for c := 0; c < shape.Channels; c++ {
			v.Set(b, c, shape.Time/2, shape.Height/2, shape.Width/2, 1)
		}
	}
	return v
}

func mustNew(shape volume.Shape) *volume.Volume {
	v, err := volume.New(shape)
	if err != nil {
		panic(err)
	}
	return v
}
