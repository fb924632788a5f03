package batch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertSeries(t *testing.T, expected, actual []float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, len(expected), len(actual), msgAndArgs...)
	for i := range expected {
		if math.IsNaN(expected[i]) {
			assert.True(t, math.IsNaN(actual[i]), "index %d: expected NaN, got %v", i, actual[i])
		} else {
			assert.InDelta(t, expected[i], actual[i], 1e-9, "index %d", i)
		}
	}
}

func TestSMAKernel(t *testing.T) {
	nan := math.NaN()
	assertSeries(t, []float64{nan, nan, 2, 3, 4}, SMA([]float64{1, 2, 3, 4, 5}, 3))
}

func TestSMAKernelInvalidWindow(t *testing.T) {
	for _, window := range []int{0, 6} {
		out := SMA([]float64{1, 2, 3, 4, 5}, window)
		for i, v := range out {
			assert.True(t, math.IsNaN(v), "window %d index %d", window, i)
		}
	}
}

func TestSMANaNAware(t *testing.T) {
	nan := math.NaN()
	data := []float64{nan, nan, 2, 4}
	assertSeries(t, []float64{nan, nan, 2, 3}, smaNaNAware(data, 2))
}

func TestSMAMinPeriodsZero(t *testing.T) {
	assertSeries(t, []float64{2, 3, 5}, smaMinPeriodsZero([]float64{2, 4, 6}, 2))
}

func TestEMAUnadjusted(t *testing.T) {
	// window 3 gives alpha 0.5
	assertSeries(t, []float64{1, 1.5, 2.25}, EMA([]float64{1, 2, 3}, 3, false))
}

func TestEMAAdjusted(t *testing.T) {
	// weightedSum = 1*0.5 + 2 = 2.5, divisor = 1.5
	assertSeries(t, []float64{1, 2.5 / 1.5}, EMA([]float64{1, 2}, 3, true))
}

func TestWilderKernel(t *testing.T) {
	assertSeries(t, []float64{2, 3}, Wilder([]float64{2, 4}, 2))
}

func TestEMASkipNaNHead(t *testing.T) {
	nan := math.NaN()
	data := []float64{nan, nan, 1, 2}
	assertSeries(t, []float64{nan, nan, 1, 1.5}, emaAlphaSkipNaN(data, 0.5, false))
}

func TestTrueRangeKernel(t *testing.T) {
	high := []float64{10, 12}
	low := []float64{8, 9}
	close := []float64{9, 11}
	assertSeries(t, []float64{2, 3}, TrueRange(high, low, close))
}

func TestRollingKernels(t *testing.T) {
	nan := math.NaN()
	data := []float64{3, 1, 4, 1, 5}

	assertSeries(t, []float64{nan, 1, 1, 1, 1}, RollingMin(data, 2))
	assertSeries(t, []float64{nan, 3, 4, 4, 5}, RollingMax(data, 2))
	assertSeries(t, []float64{nan, 4, 5, 5, 6}, RollingSum(data, 2))
	assertSeries(t, []float64{nan, 1, 1.5, 1.5, 2}, RollingStd(data, 2))
}

func TestRollingSumSkipsNaN(t *testing.T) {
	nan := math.NaN()
	assertSeries(t, []float64{nan, 1, 3}, RollingSum([]float64{nan, 1, 2}, 2))
}
