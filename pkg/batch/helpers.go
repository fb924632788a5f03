// Package batch provides whole-array indicator kernels over OHLCV series.
// Every kernel is a pure function: it allocates its output, pads the
// warm-up region with NaN and never mutates its inputs. An invalid window
// (zero or longer than the series) yields an all-NaN slice of the input
// length.
package batch

import (
	"math"

	"github.com/c2quant/taflow/pkg/floats"
)

func nanSlice(n int) floats.Slice {
	out := make(floats.Slice, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// SMA is the simple moving average with a running sum; the first window-1
// slots stay NaN.
func SMA(data []float64, window int) floats.Slice {
	n := len(data)
	out := nanSlice(n)

	if window == 0 || window > n {
		return out
	}

	var sum float64
	for i := 0; i < window; i++ {
		sum += data[i]
	}
	out[window-1] = sum / float64(window)

	for i := window; i < n; i++ {
		sum += data[i] - data[i-window]
		out[i] = sum / float64(window)
	}

	return out
}

// smaNaNAware averages the non-NaN samples inside each full window. NaN
// samples occupy their slot but are excluded from both the sum and the
// divisor; a window of only NaNs stays NaN.
func smaNaNAware(data []float64, window int) floats.Slice {
	n := len(data)
	out := nanSlice(n)

	if window == 0 || window > n {
		return out
	}

	for i := window - 1; i < n; i++ {
		var sum float64
		count := 0
		for j := i + 1 - window; j <= i; j++ {
			if !math.IsNaN(data[j]) {
				sum += data[j]
				count++
			}
		}
		if count > 0 {
			out[i] = sum / float64(count)
		}
	}

	return out
}

// smaMinPeriodsZero averages whatever samples are available, so the output
// is defined from the first element on (pandas min_periods=0).
func smaMinPeriodsZero(data []float64, window int) floats.Slice {
	n := len(data)
	out := nanSlice(n)

	if window == 0 {
		return out
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += data[i]
		if i >= window {
			sum -= data[i-window]
		}
		size := i + 1
		if size > window {
			size = window
		}
		out[i] = sum / float64(size)
	}

	return out
}

// emaAlpha runs an EMA recurrence with an explicit alpha. The adjusted
// form follows the pandas weighted-sum formulation; the unadjusted form
// seeds from the first sample.
func emaAlpha(data []float64, alpha float64, adjusted bool) floats.Slice {
	n := len(data)
	out := nanSlice(n)

	if n == 0 {
		return out
	}

	if adjusted {
		weightedSum := data[0]
		divisor := 1.0
		oneMinusAlpha := 1.0 - alpha
		out[0] = data[0]

		for i := 1; i < n; i++ {
			weightedSum = weightedSum*oneMinusAlpha + data[i]
			divisor = divisor*oneMinusAlpha + 1.0
			out[i] = weightedSum / divisor
		}
		return out
	}

	out[0] = data[0]
	for i := 1; i < n; i++ {
		out[i] = alpha*data[i] + (1.0-alpha)*out[i-1]
	}
	return out
}

// emaAlphaSkipNaN behaves like emaAlpha but starts the recurrence at the
// first non-NaN sample, leaving the NaN head untouched. Series with a
// warm-up region feed it directly.
func emaAlphaSkipNaN(data []float64, alpha float64, adjusted bool) floats.Slice {
	n := len(data)
	out := nanSlice(n)

	start := 0
	for start < n && math.IsNaN(data[start]) {
		start++
	}
	if start == n {
		return out
	}

	tail := emaAlpha(data[start:], alpha, adjusted)
	copy(out[start:], tail)
	return out
}

// EMA is the exponential moving average with alpha = 2/(window+1). The
// adjusted flag selects the pandas-style weighted form.
func EMA(data []float64, window int, adjusted bool) floats.Slice {
	return emaAlpha(data, 2.0/(float64(window)+1.0), adjusted)
}

// Wilder is the unadjusted EMA with alpha = 1/window.
func Wilder(data []float64, window int) floats.Slice {
	return emaAlpha(data, 1.0/float64(window), false)
}

// TrueRange computes the per-bar true range; the first bar, lacking a
// previous close, uses high-low.
func TrueRange(high, low, close []float64) floats.Slice {
	n := len(high)
	out := nanSlice(n)

	if n == 0 {
		return out
	}

	out[0] = high[0] - low[0]
	for i := 1; i < n; i++ {
		hl := high[i] - low[i]
		hc := math.Abs(high[i] - close[i-1])
		lc := math.Abs(low[i] - close[i-1])
		out[i] = math.Max(hl, math.Max(hc, lc))
	}

	return out
}

// RollingStd is the rolling population standard deviation.
func RollingStd(data []float64, window int) floats.Slice {
	n := len(data)
	out := nanSlice(n)

	if window == 0 || window > n {
		return out
	}

	for i := window - 1; i < n; i++ {
		var mean float64
		for j := i + 1 - window; j <= i; j++ {
			mean += data[j]
		}
		mean /= float64(window)

		var variance float64
		for j := i + 1 - window; j <= i; j++ {
			d := data[j] - mean
			variance += d * d
		}
		out[i] = math.Sqrt(variance / float64(window))
	}

	return out
}

// RollingMin is the rolling window minimum.
func RollingMin(data []float64, window int) floats.Slice {
	n := len(data)
	out := nanSlice(n)

	if window == 0 || window > n {
		return out
	}

	for i := window - 1; i < n; i++ {
		m := math.Inf(1)
		for j := i + 1 - window; j <= i; j++ {
			if data[j] < m {
				m = data[j]
			}
		}
		out[i] = m
	}

	return out
}

// RollingMax is the rolling window maximum.
func RollingMax(data []float64, window int) floats.Slice {
	n := len(data)
	out := nanSlice(n)

	if window == 0 || window > n {
		return out
	}

	for i := window - 1; i < n; i++ {
		m := math.Inf(-1)
		for j := i + 1 - window; j <= i; j++ {
			if data[j] > m {
				m = data[j]
			}
		}
		out[i] = m
	}

	return out
}

// RollingSum is the rolling window sum with a running accumulator; NaN
// samples are skipped rather than propagated.
func RollingSum(data []float64, window int) floats.Slice {
	n := len(data)
	out := nanSlice(n)

	if window == 0 || window > n {
		return out
	}

	var sum float64
	for i := 0; i < window; i++ {
		if !math.IsNaN(data[i]) {
			sum += data[i]
		}
	}
	out[window-1] = sum

	for i := window; i < n; i++ {
		if !math.IsNaN(data[i-window]) {
			sum -= data[i-window]
		}
		if !math.IsNaN(data[i]) {
			sum += data[i]
		}
		out[i] = sum
	}

	return out
}
