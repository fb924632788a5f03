package batch

import (
	"math"

	"github.com/c2quant/taflow/pkg/floats"
)

// RSI is Wilder's relative strength index. The smoothed averages seed
// from an SMA of the first window gains and losses, so values start at
// index window.
func RSI(close []float64, window int) floats.Slice {
	n := len(close)
	out := nanSlice(n)

	if n < 2 || window == 0 || window >= n {
		return out
	}

	gains := make([]float64, n)
	losses := make([]float64, n)
	for i := 1; i < n; i++ {
		delta := close[i] - close[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	alpha := 1.0 / float64(window)
	avgGain := nanSlice(n)
	avgLoss := nanSlice(n)

	var sumGain, sumLoss float64
	for i := 1; i <= window; i++ {
		sumGain += gains[i]
		sumLoss += losses[i]
	}
	avgGain[window] = sumGain / float64(window)
	avgLoss[window] = sumLoss / float64(window)

	for i := window + 1; i < n; i++ {
		avgGain[i] = alpha*gains[i] + (1.0-alpha)*avgGain[i-1]
		avgLoss[i] = alpha*losses[i] + (1.0-alpha)*avgLoss[i-1]
	}

	for i := window; i < n; i++ {
		if avgLoss[i] == 0 {
			out[i] = 100.0
		} else {
			rs := avgGain[i] / avgLoss[i]
			out[i] = 100.0 - 100.0/(1.0+rs)
		}
	}

	return out
}

// Stoch returns (percentK, percentD). A flat window range yields the
// neutral %K of 50; %D averages the defined %K values.
func Stoch(high, low, close []float64, kWindow, dWindow int) (floats.Slice, floats.Slice) {
	n := len(high)
	percentK := nanSlice(n)

	lowest := RollingMin(low, kWindow)
	highest := RollingMax(high, kWindow)

	if kWindow == 0 || kWindow > n {
		return percentK, nanSlice(n)
	}

	for i := kWindow - 1; i < n; i++ {
		r := highest[i] - lowest[i]
		if r != 0 {
			percentK[i] = 100.0 * (close[i] - lowest[i]) / r
		} else {
			percentK[i] = 50.0
		}
	}

	percentD := smaNaNAware(percentK, dWindow)

	return percentK, percentD
}

// WilliamsR positions the close inside the rolling high/low range on the
// -100..0 scale; a flat range pins it at -100.
func WilliamsR(high, low, close []float64, window int) floats.Slice {
	n := len(high)
	out := nanSlice(n)

	if window == 0 || window > n {
		return out
	}

	lowest := RollingMin(low, window)
	highest := RollingMax(high, window)

	for i := window - 1; i < n; i++ {
		r := highest[i] - lowest[i]
		if r != 0 {
			out[i] = -100.0 * (highest[i] - close[i]) / r
		} else {
			out[i] = -100.0
		}
	}

	return out
}

// PPO returns (ppo, signal, histogram) using unadjusted EMAs throughout.
func PPO(close []float64, fastWindow, slowWindow, signalWindow int) (floats.Slice, floats.Slice, floats.Slice) {
	return percentageOscillator(close, fastWindow, slowWindow, signalWindow, false)
}

// PVO returns (pvo, signal, histogram) over volume; the signal line uses
// the adjusted EMA form.
func PVO(volume []float64, fastWindow, slowWindow, signalWindow int) (floats.Slice, floats.Slice, floats.Slice) {
	return percentageOscillator(volume, fastWindow, slowWindow, signalWindow, true)
}

func percentageOscillator(data []float64, fastWindow, slowWindow, signalWindow int, adjustedSignal bool) (floats.Slice, floats.Slice, floats.Slice) {
	n := len(data)

	emaFast := EMA(data, fastWindow, false)
	emaSlow := EMA(data, slowWindow, false)

	line := nanSlice(n)
	for i := 0; i < n; i++ {
		if emaSlow[i] != 0 && !math.IsNaN(emaSlow[i]) {
			line[i] = (emaFast[i] - emaSlow[i]) / emaSlow[i] * 100.0
		}
	}

	signal := emaAlphaSkipNaN(line, 2.0/(float64(signalWindow)+1.0), adjustedSignal)

	histogram := nanSlice(n)
	for i := 0; i < n; i++ {
		if !math.IsNaN(line[i]) && !math.IsNaN(signal[i]) {
			histogram[i] = line[i] - signal[i]
		}
	}

	return line, signal, histogram
}

// UO is the Ultimate Oscillator: buying pressure over true range averaged
// across three nested periods with weights 4:2:1. The first bar's buying
// pressure is 0 since it has no previous close.
func UO(high, low, close []float64, period1, period2, period3 int) floats.Slice {
	n := len(high)
	out := nanSlice(n)

	if n == 0 || period3 == 0 || period3 > n {
		return out
	}

	bp := nanSlice(n)
	bp[0] = 0.0
	for i := 1; i < n; i++ {
		bp[i] = close[i] - math.Min(low[i], close[i-1])
	}

	tr := TrueRange(high, low, close)

	sumBP1 := RollingSum(bp, period1)
	sumTR1 := RollingSum(tr, period1)
	sumBP2 := RollingSum(bp, period2)
	sumTR2 := RollingSum(tr, period2)
	sumBP3 := RollingSum(bp, period3)
	sumTR3 := RollingSum(tr, period3)

	for i := period3 - 1; i < n; i++ {
		if sumTR1[i] != 0 && sumTR2[i] != 0 && sumTR3[i] != 0 &&
			!math.IsNaN(sumTR1[i]) && !math.IsNaN(sumTR2[i]) && !math.IsNaN(sumTR3[i]) {
			avg1 := sumBP1[i] / sumTR1[i]
			avg2 := sumBP2[i] / sumTR2[i]
			avg3 := sumBP3[i] / sumTR3[i]
			out[i] = 100.0 * (4.0*avg1 + 2.0*avg2 + avg3) / 7.0
		}
	}

	return out
}

// StochRSI returns (stochRSI, percentK, percentD): the stochastic of an
// RSI stream on a 0..1 scale with NaN-aware SMA smoothing for %K and %D.
func StochRSI(close []float64, window, kWindow, dWindow int) (floats.Slice, floats.Slice, floats.Slice) {
	n := len(close)
	stochRSI := nanSlice(n)

	if n < 2 || window == 0 || window >= n {
		return stochRSI, nanSlice(n), nanSlice(n)
	}

	rsi := RSI(close, window)

	startIdx := 2 * (window - 1)
	for i := startIdx; i < n; i++ {
		lo := math.Inf(1)
		hi := math.Inf(-1)
		for j := i + 1 - window; j <= i; j++ {
			if math.IsNaN(rsi[j]) {
				continue
			}
			if rsi[j] < lo {
				lo = rsi[j]
			}
			if rsi[j] > hi {
				hi = rsi[j]
			}
		}

		if math.IsNaN(rsi[i]) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			continue
		}

		if hi > lo {
			stochRSI[i] = (rsi[i] - lo) / (hi - lo)
		} else {
			stochRSI[i] = 0.0
		}
	}

	percentK := smaNaNAware(stochRSI, kWindow)
	percentD := smaNaNAware(percentK, dWindow)

	return stochRSI, percentK, percentD
}

// TSI double-smooths one-bar momentum and its absolute value with
// adjusted EMAs and reports their ratio in percent.
func TSI(close []float64, longWindow, shortWindow int) floats.Slice {
	n := len(close)
	out := nanSlice(n)

	priceChange := make(floats.Slice, n)
	absPriceChange := make(floats.Slice, n)
	for i := 1; i < n; i++ {
		priceChange[i] = close[i] - close[i-1]
		absPriceChange[i] = math.Abs(priceChange[i])
	}

	alphaLong := 2.0 / (float64(longWindow) + 1.0)
	alphaShort := 2.0 / (float64(shortWindow) + 1.0)

	ema2PC := emaAlpha(emaAlpha(priceChange, alphaLong, true), alphaShort, true)
	ema2Abs := emaAlpha(emaAlpha(absPriceChange, alphaLong, true), alphaShort, true)

	for i := 0; i < n; i++ {
		if ema2Abs[i] != 0 && !math.IsNaN(ema2Abs[i]) {
			out[i] = 100.0 * ema2PC[i] / ema2Abs[i]
		}
	}

	return out
}

// AO is the spread between a fast and a slow SMA of the bar midpoint.
func AO(high, low []float64, fastWindow, slowWindow int) floats.Slice {
	n := len(high)

	midpoint := make(floats.Slice, n)
	for i := 0; i < n; i++ {
		midpoint[i] = (high[i] + low[i]) / 2.0
	}

	smaFast := SMA(midpoint, fastWindow)
	smaSlow := SMA(midpoint, slowWindow)

	out := nanSlice(n)
	for i := 0; i < n; i++ {
		if !math.IsNaN(smaFast[i]) && !math.IsNaN(smaSlow[i]) {
			out[i] = smaFast[i] - smaSlow[i]
		}
	}

	return out
}

// KAMA seeds with the raw close at index window-1 and adapts its
// smoothing constant to the efficiency ratio thereafter.
func KAMA(close []float64, window, fastWindow, slowWindow int) floats.Slice {
	n := len(close)
	out := nanSlice(n)

	if window == 0 || n <= window {
		return out
	}

	diffs := make([]float64, n)
	for i := 1; i < n; i++ {
		diffs[i] = math.Abs(close[i] - close[i-1])
	}

	fastSC := 2.0 / (float64(fastWindow) + 1.0)
	slowSC := 2.0 / (float64(slowWindow) + 1.0)

	out[window-1] = close[window-1]
	for i := window; i < n; i++ {
		direction := math.Abs(close[i] - close[i-window])

		var volatility float64
		for j := i + 1 - window; j <= i; j++ {
			volatility += diffs[j]
		}

		er := 0.0
		if volatility != 0 {
			er = direction / volatility
		}
		sc := math.Pow(er*(fastSC-slowSC)+slowSC, 2)

		out[i] = out[i-1] + sc*(close[i]-out[i-1])
	}

	return out
}

// ROC is the percent change against the close window bars earlier; a
// zero base leaves the slot NaN.
func ROC(close []float64, window int) floats.Slice {
	n := len(close)
	out := nanSlice(n)

	for i := window; i < n; i++ {
		if close[i-window] != 0 {
			out[i] = (close[i] - close[i-window]) / close[i-window] * 100.0
		}
	}

	return out
}

// Momentum is the raw difference against the close window bars earlier.
func Momentum(close []float64, window int) floats.Slice {
	n := len(close)
	out := nanSlice(n)

	for i := window; i < n; i++ {
		out[i] = close[i] - close[i-window]
	}

	return out
}
