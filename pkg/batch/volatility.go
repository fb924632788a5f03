package batch

import (
	"math"

	"github.com/c2quant/taflow/pkg/floats"
)

// ATR is Wilder's smoothing of the true range over the full series.
func ATR(high, low, close []float64, window int) floats.Slice {
	tr := TrueRange(high, low, close)
	return Wilder(tr, window)
}

// BollingerBands returns (upper, middle, lower): an SMA middle band with
// envelopes k population standard deviations away.
func BollingerBands(close []float64, window int, k float64) (floats.Slice, floats.Slice, floats.Slice) {
	n := len(close)

	middle := SMA(close, window)
	std := RollingStd(close, window)

	upper := nanSlice(n)
	lower := nanSlice(n)
	for i := 0; i < n; i++ {
		if !math.IsNaN(middle[i]) && !math.IsNaN(std[i]) {
			upper[i] = middle[i] + k*std[i]
			lower[i] = middle[i] - k*std[i]
		}
	}

	return upper, middle, lower
}

// KeltnerChannel returns (upper, middle, lower) in the original price
// blend form: the middle band is an SMA of the typical price over full
// windows while the envelopes average (4H-2L+C)/3 and (-2H+4L+C)/3 from
// the first bar on.
func KeltnerChannel(high, low, close []float64, window int) (floats.Slice, floats.Slice, floats.Slice) {
	n := len(high)

	tp := make(floats.Slice, n)
	highBlend := make(floats.Slice, n)
	lowBlend := make(floats.Slice, n)
	for i := 0; i < n; i++ {
		tp[i] = (high[i] + low[i] + close[i]) / 3.0
		highBlend[i] = (4.0*high[i] - 2.0*low[i] + close[i]) / 3.0
		lowBlend[i] = (-2.0*high[i] + 4.0*low[i] + close[i]) / 3.0
	}

	middle := SMA(tp, window)
	upper := smaMinPeriodsZero(highBlend, window)
	lower := smaMinPeriodsZero(lowBlend, window)

	return upper, middle, lower
}

// DonchianChannel returns (upper, middle, lower) from the rolling extreme
// highs and lows.
func DonchianChannel(high, low []float64, window int) (floats.Slice, floats.Slice, floats.Slice) {
	n := len(high)

	upper := RollingMax(high, window)
	lower := RollingMin(low, window)

	middle := nanSlice(n)
	for i := 0; i < n; i++ {
		if !math.IsNaN(upper[i]) && !math.IsNaN(lower[i]) {
			middle[i] = (upper[i] + lower[i]) / 2.0
		}
	}

	return upper, middle, lower
}

// UlcerIndex is the rolling RMS of percentage drawdowns from the window's
// running maximum; the very first bar contributes zero.
func UlcerIndex(close []float64, window int) floats.Slice {
	n := len(close)
	out := nanSlice(n)

	if window == 0 || window > n {
		return out
	}

	ddSq := make([]float64, n)
	for i := 1; i < n; i++ {
		start := 0
		if i >= window {
			start = i - window + 1
		}
		maxClose := math.Inf(-1)
		for j := start; j <= i; j++ {
			if close[j] > maxClose {
				maxClose = close[j]
			}
		}
		dd := (close[i] - maxClose) / maxClose * 100.0
		ddSq[i] = dd * dd
	}

	for i := window - 1; i < n; i++ {
		var sum float64
		for j := i + 1 - window; j <= i; j++ {
			sum += ddSq[j]
		}
		out[i] = math.Sqrt(sum / float64(window))
	}

	return out
}
