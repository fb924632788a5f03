package batch

import (
	"math"

	"github.com/c2quant/taflow/pkg/floats"
)

// WMA is the linearly weighted moving average, newest sample weighted
// highest.
func WMA(data []float64, window int) floats.Slice {
	n := len(data)
	out := nanSlice(n)

	if window == 0 || window > n {
		return out
	}

	w := float64(window)
	weightSum := w * (w + 1.0) / 2.0

	for i := window - 1; i < n; i++ {
		start := i + 1 - window
		var weighted float64
		for j := 0; j < window; j++ {
			weighted += float64(j+1) * data[start+j]
		}
		out[i] = weighted / weightSum
	}

	return out
}

// MACD returns (line, signal, histogram). The line EMAs honor the
// adjusted flag; the signal line always uses the adjusted form over the
// MACD line.
func MACD(close []float64, fastWindow, slowWindow, signalWindow int, adjusted bool) (floats.Slice, floats.Slice, floats.Slice) {
	n := len(close)

	emaFast := EMA(close, fastWindow, adjusted)
	emaSlow := EMA(close, slowWindow, adjusted)

	line := nanSlice(n)
	for i := 0; i < n; i++ {
		if !math.IsNaN(emaFast[i]) && !math.IsNaN(emaSlow[i]) {
			line[i] = emaFast[i] - emaSlow[i]
		}
	}

	signal := emaAlphaSkipNaN(line, 2.0/(float64(signalWindow)+1.0), true)

	histogram := nanSlice(n)
	for i := 0; i < n; i++ {
		if !math.IsNaN(line[i]) && !math.IsNaN(signal[i]) {
			histogram[i] = line[i] - signal[i]
		}
	}

	return line, signal, histogram
}

// ADX returns (adx, plusDI, minusDI), all Wilder-smoothed over the full
// series.
func ADX(high, low, close []float64, window int) (floats.Slice, floats.Slice, floats.Slice) {
	n := len(high)

	plusDM := make(floats.Slice, n)
	minusDM := make(floats.Slice, n)

	for i := 1; i < n; i++ {
		highDiff := high[i] - high[i-1]
		lowDiff := low[i-1] - low[i]

		if highDiff > lowDiff && highDiff > 0 {
			plusDM[i] = highDiff
		}
		if lowDiff > highDiff && lowDiff > 0 {
			minusDM[i] = lowDiff
		}
	}

	tr := TrueRange(high, low, close)
	atr := Wilder(tr, window)
	smoothedPlusDM := Wilder(plusDM, window)
	smoothedMinusDM := Wilder(minusDM, window)

	plusDI := nanSlice(n)
	minusDI := nanSlice(n)
	for i := 0; i < n; i++ {
		if !math.IsNaN(atr[i]) && atr[i] != 0 {
			plusDI[i] = smoothedPlusDM[i] / atr[i] * 100.0
			minusDI[i] = smoothedMinusDM[i] / atr[i] * 100.0
		}
	}

	dx := nanSlice(n)
	for i := 0; i < n; i++ {
		if !math.IsNaN(plusDI[i]) && !math.IsNaN(minusDI[i]) {
			if diSum := plusDI[i] + minusDI[i]; diSum != 0 {
				dx[i] = math.Abs(plusDI[i]-minusDI[i]) / diSum * 100.0
			}
		}
	}

	adx := emaAlphaSkipNaN(dx, 1.0/float64(window), false)

	return adx, plusDI, minusDI
}

// CCI scales the typical price deviation by the window's mean absolute
// deviation; a zero deviation maps to 0.
func CCI(high, low, close []float64, window int, constant float64) floats.Slice {
	n := len(high)
	out := nanSlice(n)

	if window == 0 || window > n {
		return out
	}

	tp := make(floats.Slice, n)
	for i := 0; i < n; i++ {
		tp[i] = (high[i] + low[i] + close[i]) / 3.0
	}

	smaTP := SMA(tp, window)

	for i := window - 1; i < n; i++ {
		var mad float64
		for j := i + 1 - window; j <= i; j++ {
			mad += math.Abs(tp[j] - smaTP[i])
		}
		mad /= float64(window)

		if mad == 0 {
			out[i] = 0.0
		} else {
			out[i] = (tp[i] - smaTP[i]) / (constant * mad)
		}
	}

	return out
}

// DPO subtracts the moving average shifted back window/2+1 bars from the
// current close.
func DPO(close []float64, window int) floats.Slice {
	n := len(close)
	out := nanSlice(n)

	sma := SMA(close, window)
	shift := window/2 + 1

	for i := shift - 1; i < n; i++ {
		smaIdx := i + 1 - shift
		if !math.IsNaN(sma[smaIdx]) {
			out[i] = close[i] - sma[smaIdx]
		}
	}

	return out
}

// Vortex returns (viPlus, viMinus): window sums of vortex movement
// normalized by the true-range sum.
func Vortex(high, low, close []float64, window int) (floats.Slice, floats.Slice) {
	n := len(high)

	vmPlus := make(floats.Slice, n)
	vmMinus := make(floats.Slice, n)
	for i := 1; i < n; i++ {
		vmPlus[i] = math.Abs(high[i] - low[i-1])
		vmMinus[i] = math.Abs(low[i] - high[i-1])
	}

	tr := TrueRange(high, low, close)

	sumVMPlus := RollingSum(vmPlus, window)
	sumVMMinus := RollingSum(vmMinus, window)
	sumTR := RollingSum(tr, window)

	viPlus := nanSlice(n)
	viMinus := nanSlice(n)

	if window == 0 || window > n {
		return viPlus, viMinus
	}

	for i := window - 1; i < n; i++ {
		if sumTR[i] != 0 && !math.IsNaN(sumTR[i]) {
			viPlus[i] = sumVMPlus[i] / sumTR[i]
			viMinus[i] = sumVMMinus[i] / sumTR[i]
		}
	}

	return viPlus, viMinus
}

// PSAR is the parabolic stop-and-reverse over the whole series. The
// initial trend comes from the first two closes and the SAR is clamped
// against the prior two bars' extremes.
func PSAR(high, low, close []float64, afStart, afInc, afMax float64) floats.Slice {
	n := len(high)
	out := nanSlice(n)

	if n < 2 {
		return out
	}

	isLong := close[1] > close[0]
	af := afStart
	extreme := low[1]
	if isLong {
		extreme = high[1]
	}

	if isLong {
		out[0] = low[0]
	} else {
		out[0] = high[0]
	}
	out[1] = out[0]

	for i := 2; i < n; i++ {
		prevSAR := out[i-1]
		sar := prevSAR + af*(extreme-prevSAR)

		if isLong {
			sar = math.Min(sar, math.Min(low[i-1], low[i-2]))

			if low[i] < sar {
				isLong = false
				sar = extreme
				extreme = low[i]
				af = afStart
			} else if high[i] > extreme {
				extreme = high[i]
				af = math.Min(af+afInc, afMax)
			}
		} else {
			sar = math.Max(sar, math.Max(high[i-1], high[i-2]))

			if high[i] > sar {
				isLong = true
				sar = extreme
				extreme = high[i]
				af = afStart
			} else if low[i] < extreme {
				extreme = low[i]
				af = math.Min(af+afInc, afMax)
			}
		}

		out[i] = sar
	}

	return out
}

// TRIX is the one-bar percent change of a triple adjusted EMA.
func TRIX(close []float64, window int) floats.Slice {
	n := len(close)
	out := nanSlice(n)

	alpha := 2.0 / (float64(window) + 1.0)
	ema1 := emaAlpha(close, alpha, true)
	ema2 := emaAlpha(ema1, alpha, true)
	ema3 := emaAlpha(ema2, alpha, true)

	for i := 1; i < n; i++ {
		if !math.IsNaN(ema3[i]) && !math.IsNaN(ema3[i-1]) && ema3[i-1] != 0 {
			out[i] = (ema3[i] - ema3[i-1]) / ema3[i-1] * 100.0
		}
	}

	return out
}

// Aroon returns (aroonUp, aroonDown) over windows of exactly window bars;
// distances are scaled by window-1. Ties resolve toward the most recent
// high and the oldest low.
func Aroon(high, low []float64, window int) (floats.Slice, floats.Slice) {
	n := len(high)
	up := nanSlice(n)
	down := nanSlice(n)

	if window < 2 || window > n {
		return up, down
	}

	for i := window - 1; i < n; i++ {
		start := i + 1 - window

		maxIdx := 0
		minIdx := 0
		for j := 0; j < window; j++ {
			if high[start+j] >= high[start+maxIdx] {
				maxIdx = j
			}
			if low[start+j] < low[start+minIdx] {
				minIdx = j
			}
		}

		up[i] = float64(window-1-maxIdx) / float64(window-1) * 100.0
		down[i] = float64(window-1-minIdx) / float64(window-1) * 100.0
	}

	return up, down
}

// KST returns (kst, signal): four smoothed rate-of-change streams blended
// with weights 1..4 and an SMA signal line.
func KST(close []float64, r1, r2, r3, r4, s1, s2, s3, s4, signalWindow int) (floats.Slice, floats.Slice) {
	n := len(close)

	roc := func(window int) floats.Slice {
		out := nanSlice(n)
		for i := window; i < n; i++ {
			if close[i-window] != 0 {
				out[i] = (close[i] - close[i-window]) / close[i-window] * 100.0
			}
		}
		return out
	}

	rcma1 := smaNaNAware(roc(r1), s1)
	rcma2 := smaNaNAware(roc(r2), s2)
	rcma3 := smaNaNAware(roc(r3), s3)
	rcma4 := smaNaNAware(roc(r4), s4)

	kst := nanSlice(n)
	for i := 0; i < n; i++ {
		if !math.IsNaN(rcma1[i]) && !math.IsNaN(rcma2[i]) && !math.IsNaN(rcma3[i]) && !math.IsNaN(rcma4[i]) {
			kst[i] = rcma1[i] + 2.0*rcma2[i] + 3.0*rcma3[i] + 4.0*rcma4[i]
		}
	}

	signal := smaNaNAware(kst, signalWindow)

	return kst, signal
}

// MassIndex sums the EMA ratio of the bar range over sumWindow bars.
func MassIndex(high, low []float64, emaWindow, sumWindow int) floats.Slice {
	n := len(high)
	out := nanSlice(n)

	if sumWindow == 0 || sumWindow > n {
		return out
	}

	barRange := make(floats.Slice, n)
	for i := 0; i < n; i++ {
		barRange[i] = high[i] - low[i]
	}

	alpha := 2.0 / (float64(emaWindow) + 1.0)
	ema1 := emaAlpha(barRange, alpha, true)
	ema2 := emaAlpha(ema1, alpha, true)

	ratio := nanSlice(n)
	for i := 0; i < n; i++ {
		if !math.IsNaN(ema2[i]) && ema2[i] != 0 {
			ratio[i] = ema1[i] / ema2[i]
		}
	}

	for i := sumWindow - 1; i < n; i++ {
		var sum float64
		for j := i + 1 - sumWindow; j <= i; j++ {
			if !math.IsNaN(ratio[j]) {
				sum += ratio[j]
			}
		}
		out[i] = sum
	}

	return out
}

// Ichimoku returns (tenkan, kijun, senkouA, senkouB, chikou). Tenkan,
// kijun and senkou B are range midpoints over their windows; senkou A
// averages tenkan and kijun; chikou is the close shifted back kijunWindow
// bars.
func Ichimoku(high, low, close []float64, tenkanWindow, kijunWindow, senkouBWindow int) (floats.Slice, floats.Slice, floats.Slice, floats.Slice, floats.Slice) {
	n := len(high)

	midpoint := func(window int) floats.Slice {
		out := nanSlice(n)
		if window == 0 || window > n {
			return out
		}
		for i := window - 1; i < n; i++ {
			hi := math.Inf(-1)
			lo := math.Inf(1)
			for j := i + 1 - window; j <= i; j++ {
				if high[j] > hi {
					hi = high[j]
				}
				if low[j] < lo {
					lo = low[j]
				}
			}
			out[i] = (hi + lo) / 2.0
		}
		return out
	}

	tenkan := midpoint(tenkanWindow)
	kijun := midpoint(kijunWindow)

	senkouA := nanSlice(n)
	for i := 0; i < n; i++ {
		if !math.IsNaN(tenkan[i]) && !math.IsNaN(kijun[i]) {
			senkouA[i] = (tenkan[i] + kijun[i]) / 2.0
		}
	}

	senkouB := midpoint(senkouBWindow)

	chikou := nanSlice(n)
	for i := kijunWindow; i < n; i++ {
		chikou[i-kijunWindow] = close[i]
	}

	return tenkan, kijun, senkouA, senkouB, chikou
}

// SchaffTrendCycle runs a stochastic of an unadjusted-EMA MACD line,
// smooths it, applies a second stochastic pass and smooths again. Flat
// stochastic ranges map to 0.
func SchaffTrendCycle(close []float64, fastWindow, slowWindow, stochWindow, smoothWindow int) floats.Slice {
	n := len(close)

	emaFast := EMA(close, fastWindow, false)
	emaSlow := EMA(close, slowWindow, false)

	line := nanSlice(n)
	for i := 0; i < n; i++ {
		if !math.IsNaN(emaFast[i]) && !math.IsNaN(emaSlow[i]) {
			line[i] = emaFast[i] - emaSlow[i]
		}
	}

	stoch := func(data floats.Slice) floats.Slice {
		out := nanSlice(n)
		if stochWindow == 0 || stochWindow > n {
			return out
		}
		for i := stochWindow - 1; i < n; i++ {
			lo := math.Inf(1)
			hi := math.Inf(-1)
			for j := i + 1 - stochWindow; j <= i; j++ {
				if math.IsNaN(data[j]) {
					continue
				}
				if data[j] < lo {
					lo = data[j]
				}
				if data[j] > hi {
					hi = data[j]
				}
			}
			if hi > lo {
				out[i] = 100.0 * (data[i] - lo) / (hi - lo)
			} else {
				out[i] = 0.0
			}
		}
		return out
	}

	alphaSmooth := 2.0 / (float64(smoothWindow) + 1.0)

	pf := stoch(line)
	pfSmooth := emaAlphaSkipNaN(pf, alphaSmooth, false)
	pff := stoch(pfSmooth)

	return emaAlphaSkipNaN(pff, alphaSmooth, false)
}
