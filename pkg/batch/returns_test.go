package batch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyReturnKernel(t *testing.T) {
	nan := math.NaN()
	assertSeries(t, []float64{nan, 10, -10}, DailyReturn([]float64{100, 110, 99}))
}

func TestCumulativeReturnKernel(t *testing.T) {
	assertSeries(t, []float64{0, 50, -25}, CumulativeReturn([]float64{100, 150, 75}))
}

func TestCumulativeReturnKernelZeroBase(t *testing.T) {
	out := CumulativeReturn([]float64{0, 100})
	for i := range out {
		assert.True(t, math.IsNaN(out[i]), "index %d", i)
	}
}

func TestCompoundLogReturnKernel(t *testing.T) {
	nan := math.NaN()
	assertSeries(t, []float64{nan, 10, 21}, CompoundLogReturn([]float64{100, 110, 121}))
}

func TestRollingZScoreKernel(t *testing.T) {
	nan := math.NaN()
	assertSeries(t, []float64{nan, 1}, RollingZScore([]float64{1, 3}, 2))
}

func TestRollingZScoreKernelFlatWindow(t *testing.T) {
	out := RollingZScore([]float64{5, 5, 5}, 3)
	assert.InDelta(t, 0.0, out[2], 1e-9)
}

func TestLinRegSlopeKernel(t *testing.T) {
	nan := math.NaN()
	assertSeries(t, []float64{nan, nan, 1}, LinRegSlope([]float64{1, 2, 3}, 3))
}

func TestRollingPercentileKernel(t *testing.T) {
	out := RollingPercentile([]float64{1, 2, 3}, 3)
	assert.InDelta(t, 1.0, out[2], 1e-9)

	out = RollingPercentile([]float64{3, 2, 1}, 3)
	assert.InDelta(t, 1.0/3.0, out[2], 1e-9)
}
