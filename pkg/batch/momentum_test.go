package batch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRSIKernel(t *testing.T) {
	nan := math.NaN()
	close := []float64{10, 11, 12, 11, 13}

	// the smoothed averages seed from an SMA of the first 3 gains/losses
	out := RSI(close, 3)
	assertSeries(t, []float64{nan, nan, nan, 100.0 * 2.0 / 3.0, 100.0 * 5.0 / 6.0}, out)
}

func TestRSIKernelMonotonicRally(t *testing.T) {
	close := make([]float64, 20)
	for i := range close {
		close[i] = float64(100 + i)
	}

	out := RSI(close, 14)
	for i := 14; i < len(close); i++ {
		assert.InDelta(t, 100.0, out[i], 1e-9, "index %d", i)
	}
	assert.True(t, math.IsNaN(out[13]))
}

func TestStochKernelFlatRange(t *testing.T) {
	n := 6
	flat := make([]float64, n)
	for i := range flat {
		flat[i] = 5
	}

	percentK, percentD := Stoch(flat, flat, flat, 3, 2)

	for i := 2; i < n; i++ {
		assert.InDelta(t, 50.0, percentK[i], 1e-9, "index %d", i)
		assert.InDelta(t, 50.0, percentD[i], 1e-9, "index %d", i)
	}
	assert.True(t, math.IsNaN(percentK[1]))
}

func TestROCKernelOffset(t *testing.T) {
	nan := math.NaN()
	close := []float64{10, 20, 25, 30}

	// window counts whole bars of distance, one less than the streaming
	// buffer form
	assertSeries(t, []float64{nan, nan, 150, 50}, ROC(close, 2))
	assertSeries(t, []float64{nan, nan, 15, 10}, Momentum(close, 2))
}

func TestKAMAKernelSeed(t *testing.T) {
	close := []float64{1, 2, 3, 4, 5, 6}
	out := KAMA(close, 3, 2, 30)

	assert.True(t, math.IsNaN(out[1]))

	// seeds with the raw close
	assert.InDelta(t, 3.0, out[2], 1e-9)

	// perfectly trending input keeps the efficiency ratio at 1, so the
	// smoothing constant is the fast one
	fastSC := 2.0 / 3.0
	sc := fastSC * fastSC
	expected := 3.0
	for i := 3; i < len(close); i++ {
		expected += sc * (close[i] - expected)
		assert.InDelta(t, expected, out[i], 1e-9, "index %d", i)
	}
}

func TestStochRSIKernelWarmup(t *testing.T) {
	n := 40
	close := make([]float64, n)
	for i := range close {
		close[i] = float64(i%7) + 100.0
	}

	stochRSI, percentK, percentD := StochRSI(close, 5, 3, 3)

	start := 2 * (5 - 1)
	for i := 0; i < start; i++ {
		assert.True(t, math.IsNaN(stochRSI[i]), "index %d", i)
	}
	assert.False(t, math.IsNaN(stochRSI[start]))
	assert.False(t, math.IsNaN(percentK[start]))
	assert.False(t, math.IsNaN(percentD[start]))

	for i := start; i < n; i++ {
		assert.GreaterOrEqual(t, stochRSI[i], 0.0, "index %d", i)
		assert.LessOrEqual(t, stochRSI[i], 1.0, "index %d", i)
	}
}
