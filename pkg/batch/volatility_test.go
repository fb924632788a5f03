package batch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestATRKernel(t *testing.T) {
	high := []float64{10, 12, 13}
	low := []float64{8, 9, 10}
	close := []float64{9, 11, 12}

	// true ranges [2, 3, 3] under Wilder smoothing with alpha 1/3
	out := ATR(high, low, close, 3)
	assertSeries(t, []float64{2, 7.0 / 3.0, 23.0 / 9.0}, out)
}

func TestBollingerBandsKernel(t *testing.T) {
	nan := math.NaN()
	upper, middle, lower := BollingerBands([]float64{1, 3}, 2, 2.0)

	assertSeries(t, []float64{nan, 4}, upper)
	assertSeries(t, []float64{nan, 2}, middle)
	assertSeries(t, []float64{nan, 0}, lower)
}

func TestKeltnerChannelKernel(t *testing.T) {
	n := 5
	high := make([]float64, n)
	low := make([]float64, n)
	close := make([]float64, n)
	for i := 0; i < n; i++ {
		high[i] = 12
		low[i] = 9
		close[i] = 10
	}

	upper, middle, lower := KeltnerChannel(high, low, close, 3)

	// envelopes average from the first bar, the middle band needs a full
	// window
	assert.InDelta(t, (4.0*12-2.0*9+10)/3.0, upper[0], 1e-9)
	assert.InDelta(t, (-2.0*12+4.0*9+10)/3.0, lower[0], 1e-9)
	assert.True(t, math.IsNaN(middle[1]))
	assert.InDelta(t, 31.0/3.0, middle[2], 1e-9)
}

func TestDonchianChannelKernel(t *testing.T) {
	high := []float64{3, 5, 4}
	low := []float64{1, 2, 3}

	upper, middle, lower := DonchianChannel(high, low, 2)

	assert.True(t, math.IsNaN(upper[0]))
	assert.InDelta(t, 5.0, upper[1], 1e-9)
	assert.InDelta(t, 1.0, lower[1], 1e-9)
	assert.InDelta(t, 3.0, middle[1], 1e-9)
}

func TestUlcerIndexKernel(t *testing.T) {
	out := UlcerIndex([]float64{10, 5, 10, 5}, 2)

	assert.True(t, math.IsNaN(out[0]))
	assert.InDelta(t, math.Sqrt(1250.0), out[1], 1e-9)
	assert.InDelta(t, math.Sqrt(1250.0), out[2], 1e-9)
	assert.InDelta(t, math.Sqrt(1250.0), out[3], 1e-9)
}

func TestUlcerIndexFlatSeries(t *testing.T) {
	flat := []float64{5, 5, 5, 5, 5}
	out := UlcerIndex(flat, 3)
	for i := 2; i < len(flat); i++ {
		assert.InDelta(t, 0.0, out[i], 1e-9, "index %d", i)
	}
}
