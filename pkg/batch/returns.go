package batch

import (
	"math"

	"github.com/c2quant/taflow/pkg/floats"
)

// DailyReturn is the one-bar percent change of the close.
func DailyReturn(close []float64) floats.Slice {
	n := len(close)
	out := nanSlice(n)

	for i := 1; i < n; i++ {
		out[i] = (close[i] - close[i-1]) / close[i-1] * 100.0
	}

	return out
}

// DailyLogReturn is the one-bar log return of the close in percent.
func DailyLogReturn(close []float64) floats.Slice {
	n := len(close)
	out := nanSlice(n)

	for i := 1; i < n; i++ {
		out[i] = math.Log(close[i]/close[i-1]) * 100.0
	}

	return out
}

// CumulativeReturn is the percent return against the first close; a zero
// first close leaves every slot NaN.
func CumulativeReturn(close []float64) floats.Slice {
	n := len(close)
	out := nanSlice(n)

	if n == 0 || close[0] == 0 {
		return out
	}

	for i := 0; i < n; i++ {
		out[i] = (close[i]/close[0] - 1.0) * 100.0
	}

	return out
}

// CompoundLogReturn compounds the one-bar log returns accumulated so far,
// skipping undefined ones, and reports the result in percent.
func CompoundLogReturn(close []float64) floats.Slice {
	n := len(close)
	out := nanSlice(n)

	var cumulative float64
	for i := 1; i < n; i++ {
		if r := math.Log(close[i] / close[i-1]); !math.IsNaN(r) {
			cumulative += r
		}
		out[i] = (math.Exp(cumulative) - 1.0) * 100.0
	}

	return out
}

// RollingZScore standardizes each value against its window's mean and
// population standard deviation; a zero deviation maps to 0.
func RollingZScore(data []float64, window int) floats.Slice {
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
		std := math.Sqrt(variance / float64(window))

		if std != 0 {
			out[i] = (data[i] - mean) / std
		} else {
			out[i] = 0.0
		}
	}

	return out
}

// LinRegSlope fits an ordinary least-squares line over each window with
// x = 0..window-1 and reports its slope.
func LinRegSlope(data []float64, window int) floats.Slice {
	n := len(data)
	out := nanSlice(n)

	if window == 0 || window > n {
		return out
	}

	w := float64(window)
	sumX := w * (w - 1.0) / 2.0
	sumX2 := w * (w - 1.0) * (2.0*w - 1.0) / 6.0
	denom := w*sumX2 - sumX*sumX

	if denom == 0 {
		return out
	}

	for i := window - 1; i < n; i++ {
		var sumY, sumXY float64
		for j := 0; j < window; j++ {
			y := data[i+1-window+j]
			sumY += y
			sumXY += float64(j) * y
		}
		out[i] = (w*sumXY - sumX*sumY) / denom
	}

	return out
}

// RollingPercentile reports the fraction of window samples at or below
// each value, on a 0..1 scale.
func RollingPercentile(data []float64, window int) floats.Slice {
	n := len(data)
	out := nanSlice(n)

	if window == 0 || window > n {
		return out
	}

	for i := window - 1; i < n; i++ {
		count := 0
		for j := i + 1 - window; j <= i; j++ {
			if data[j] <= data[i] {
				count++
			}
		}
		out[i] = float64(count) / float64(window)
	}

	return out
}
