package indicator

import "math"

// VolumeRatio compares the current volume against its window SMA. An
// undefined or zero average yields NaN.
type VolumeRatio struct {
	sma *SMA
}

func NewVolumeRatio(window int) *VolumeRatio {
	return &VolumeRatio{sma: NewSMA(window)}
}

func (inc *VolumeRatio) Update(volume float64) float64 {
	sma := inc.sma.Update(volume)
	if math.IsNaN(sma) || sma == 0 {
		return math.NaN()
	}
	return volume / sma
}

func (inc *VolumeRatio) Reset() {
	inc.sma.Reset()
}
