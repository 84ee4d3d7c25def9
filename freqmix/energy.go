package freqmix

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-freeinit/volume"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im, pow []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 3 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n : 2*n], buf.data[2*n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Energy reports how the spectral energy of a volume divides under a
// low-pass mask.
type Energy struct {
	// Low is the energy of the mask-weighted band, summed over all bins
	// and cells.
	Low float64
	// High is the energy of the complementary band.
	High float64
}

// LowShare returns Low / (Low + High), or 0 when the volume has no energy.
func (e Energy) LowShare() float64 {
	total := e.Low + e.High
	if total == 0 {
		return 0
	}
	return e.Low / total
}

// EnergySplit measures the spectral energy of x retained by mask and by
// its complement. Mask weights apply to amplitudes, so a bin with power p
// contributes p·m² to Low and p·(1-m)² to High.
//
// This is a diagnostic for choosing cutoffs: the low share of a white
// noise volume approximates the fraction of noise variance a mixing pass
// with this mask would keep.
func (m *Mixer) EnergySplit(x, mask *volume.Volume) (Energy, error) {
	if x == nil || mask == nil {
		return Energy{}, fmt.Errorf("freqmix: nil volume")
	}
	if x.Shape() != m.shape {
		return Energy{}, fmt.Errorf("%w: x is %s, mixer wants %s", volume.ErrShapeMismatch, x.Shape(), m.shape)
	}
	if mask.Shape() != m.maskShape() {
		return Energy{}, fmt.Errorf("%w: mask is %s, mixer wants %s", volume.ErrShapeMismatch, mask.Shape(), m.maskShape())
	}

	n := m.shape.CellLen()
	re, im, pow, buf := getScratch(n)
	defer putScratch(buf)

	var e Energy
	maskData := mask.Data()
	for b := 0; b < m.shape.Batch; b++ {
		for c := 0; c < m.shape.Channels; c++ {
			for i, v := range x.Cell(b, c) {
				m.scratch[i] = complex(v, 0)
			}
			if err := m.plans.forward(m.scratch); err != nil {
				return Energy{}, err
			}
			shift3(m.xSpec, m.scratch, m.shape.Time, m.shape.Height, m.shape.Width)

			for i, v := range m.xSpec {
				re[i] = real(v)
				im[i] = imag(v)
			}
			vecmath.Power(pow, re, im)

			for i, p := range pow {
				w := maskData[i]
				e.Low += p * w * w
				e.High += p * (1 - w) * (1 - w)
			}
		}
	}
	return e, nil
}

// EnergySplit is a convenience wrapper that creates a temporary [Mixer].
func EnergySplit(x, mask *volume.Volume) (Energy, error) {
	if x == nil {
		return Energy{}, fmt.Errorf("freqmix: nil input volume")
	}
	m, err := NewMixer(x.Shape())
	if err != nil {
		return Energy{}, err
	}
	return m.EnergySplit(x, mask)
}
