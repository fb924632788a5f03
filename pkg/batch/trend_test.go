package batch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAroonKernel(t *testing.T) {
	nan := math.NaN()
	high := []float64{1, 2, 3, 2}
	low := []float64{3, 2, 1, 2}

	up, down := Aroon(high, low, 3)
	assertSeries(t, []float64{nan, nan, 0, 50}, up)
	assertSeries(t, []float64{nan, nan, 0, 50}, down)
}

func TestAroonKernelTieBreak(t *testing.T) {
	high := []float64{5, 5, 5}
	low := []float64{5, 5, 5}

	up, down := Aroon(high, low, 3)

	// equal highs count as the most recent bar, equal lows as the oldest
	assert.InDelta(t, 0.0, up[2], 1e-9)
	assert.InDelta(t, 100.0, down[2], 1e-9)
}

func TestAroonKernelInvalidWindow(t *testing.T) {
	up, down := Aroon([]float64{1, 2}, []float64{1, 2}, 1)
	for i := range up {
		assert.True(t, math.IsNaN(up[i]))
		assert.True(t, math.IsNaN(down[i]))
	}
}

func TestKSTGeometricGrowth(t *testing.T) {
	// close doubles every bar, so each ROC stream is the constant
	// (2^r - 1) * 100 once defined
	close := make([]float64, 10)
	for i := range close {
		close[i] = math.Pow(2, float64(i))
	}

	kst, signal := KST(close, 1, 2, 3, 4, 2, 2, 2, 2, 2)

	expected := 100.0 + 2.0*300.0 + 3.0*700.0 + 4.0*1500.0
	for i := 4; i < len(close); i++ {
		assert.InDelta(t, expected, kst[i], 1e-6, "index %d", i)
		assert.InDelta(t, expected, signal[i], 1e-6, "index %d", i)
	}
	assert.True(t, math.IsNaN(kst[3]))
}

func TestMassIndexConstantRange(t *testing.T) {
	n := 12
	high := make([]float64, n)
	low := make([]float64, n)
	for i := 0; i < n; i++ {
		high[i] = 10
		low[i] = 9
	}

	out := MassIndex(high, low, 3, 5)

	// constant bar range keeps the EMA ratio at 1, so the sum is the window
	assert.True(t, math.IsNaN(out[3]))
	for i := 4; i < n; i++ {
		assert.InDelta(t, 5.0, out[i], 1e-9, "index %d", i)
	}
}

func TestIchimoku(t *testing.T) {
	n := 6
	high := make([]float64, n)
	low := make([]float64, n)
	close := make([]float64, n)
	for i := 0; i < n; i++ {
		high[i] = float64(i + 2)
		low[i] = float64(i)
		close[i] = float64(i + 1)
	}

	tenkan, kijun, senkouA, senkouB, chikou := Ichimoku(high, low, close, 2, 3, 4)

	assert.True(t, math.IsNaN(tenkan[0]))
	assert.InDelta(t, 1.5, tenkan[1], 1e-9)
	assert.InDelta(t, 2.0, kijun[2], 1e-9)
	assert.InDelta(t, 2.25, senkouA[2], 1e-9)
	assert.InDelta(t, 2.5, senkouB[3], 1e-9)

	// chikou is the close shifted back by the kijun window
	assert.InDelta(t, 4.0, chikou[0], 1e-9)
	assert.InDelta(t, 6.0, chikou[2], 1e-9)
	assert.True(t, math.IsNaN(chikou[3]))
}

func TestSchaffTrendCycleFlatSeries(t *testing.T) {
	n := 30
	close := make([]float64, n)
	for i := range close {
		close[i] = 10
	}

	out := SchaffTrendCycle(close, 5, 10, 5, 3)

	assert.True(t, math.IsNaN(out[2]))
	for i := 4; i < n; i++ {
		assert.InDelta(t, 0.0, out[i], 1e-9, "index %d", i)
	}
}

func TestDPOKernel(t *testing.T) {
	// window 4 displaces by 4/2+1 = 3 bars
	close := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	out := DPO(close, 4)

	// out[i] = close[i] - sma4[i-2]; linear input keeps the gap constant
	for i := 5; i < len(close); i++ {
		assert.InDelta(t, 3.5, out[i], 1e-9, "index %d", i)
	}
	assert.True(t, math.IsNaN(out[4]))
}
