package batch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOBVKernel(t *testing.T) {
	close := []float64{10, 11, 10, 10}
	volume := []float64{100, 50, 30, 20}

	// an unchanged close adds volume in the bulk form
	assertSeries(t, []float64{100, 150, 120, 140}, OBV(close, volume))
}

func TestADKernel(t *testing.T) {
	high := []float64{12, 12}
	low := []float64{8, 8}
	close := []float64{12, 10}
	volume := []float64{100, 100}

	// first bar closes at the high: clv 1; second bar mid-range: clv 0
	assertSeries(t, []float64{100, 100}, AD(high, low, close, volume))
}

func TestNVIKernel(t *testing.T) {
	close := []float64{100, 110, 121}
	volume := []float64{10, 5, 20}

	// only the falling-volume bar compounds
	assertSeries(t, []float64{1000, 1100, 1100}, NVI(close, volume))
}

func TestMFIKernelAllPositiveFlow(t *testing.T) {
	n := 6
	high := make([]float64, n)
	low := make([]float64, n)
	close := make([]float64, n)
	volume := make([]float64, n)
	for i := 0; i < n; i++ {
		high[i] = float64(10 + i)
		low[i] = float64(8 + i)
		close[i] = float64(9 + i)
		volume[i] = 100
	}

	out := MFI(high, low, close, volume, 3)
	assert.True(t, math.IsNaN(out[1]))
	for i := 2; i < n; i++ {
		assert.InDelta(t, 100.0, out[i], 1e-9, "index %d", i)
	}
}

func TestCMFKernel(t *testing.T) {
	high := []float64{12, 12}
	low := []float64{8, 8}
	close := []float64{12, 12}
	volume := []float64{100, 300}

	// both bars close at the high, so money flow volume equals volume
	out := CMF(high, low, close, volume, 2)
	assert.True(t, math.IsNaN(out[0]))
	assert.InDelta(t, 1.0, out[1], 1e-9)
}

func TestEOMKernelZeroVolume(t *testing.T) {
	high := []float64{10, 12}
	low := []float64{8, 9}
	volume := []float64{100, 0}

	out := EOM(high, low, volume)
	assert.True(t, math.IsNaN(out[0]))
	assert.True(t, math.IsNaN(out[1]))
}

func TestVWEMAKernelWarmup(t *testing.T) {
	n := 10
	high := make([]float64, n)
	low := make([]float64, n)
	close := make([]float64, n)
	volume := make([]float64, n)
	for i := 0; i < n; i++ {
		high[i] = 11
		low[i] = 9
		close[i] = 10
		volume[i] = 100
	}

	out := VWEMA(high, low, close, volume, 3, 4)

	// constant typical price flows straight through the EMA
	assert.True(t, math.IsNaN(out[1]))
	for i := 2; i < n; i++ {
		assert.InDelta(t, 10.0, out[i], 1e-9, "index %d", i)
	}
}

func TestVWEMAKernelZeroVolumeFallback(t *testing.T) {
	high := []float64{11, 11}
	low := []float64{9, 9}
	close := []float64{10, 10}
	volume := []float64{0, 0}

	out := VWEMA(high, low, close, volume, 2, 2)
	assert.InDelta(t, 10.0, out[1], 1e-9)
}
