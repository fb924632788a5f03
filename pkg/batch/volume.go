package batch

import (
	"math"

	"github.com/c2quant/taflow/pkg/floats"
)

// MFI classifies raw money flow by typical-price direction and maps the
// window's flow ratio onto the 0..100 scale; a zero negative sum maps to
// 100.
func MFI(high, low, close, volume []float64, window int) floats.Slice {
	n := len(high)
	out := nanSlice(n)

	if window == 0 || window > n {
		return out
	}

	tp := make([]float64, n)
	for i := 0; i < n; i++ {
		tp[i] = (high[i] + low[i] + close[i]) / 3.0
	}

	positiveMF := make([]float64, n)
	negativeMF := make([]float64, n)
	for i := 1; i < n; i++ {
		rmf := tp[i] * volume[i]
		if tp[i] > tp[i-1] {
			positiveMF[i] = rmf
		} else if tp[i] < tp[i-1] {
			negativeMF[i] = rmf
		}
	}

	for i := window - 1; i < n; i++ {
		var posSum, negSum float64
		for j := i + 1 - window; j <= i; j++ {
			posSum += positiveMF[j]
			negSum += negativeMF[j]
		}

		if negSum == 0 {
			out[i] = 100.0
		} else {
			ratio := posSum / negSum
			out[i] = 100.0 - 100.0/(1.0+ratio)
		}
	}

	return out
}

// AD is the cumulative accumulation/distribution line.
func AD(high, low, close, volume []float64) floats.Slice {
	n := len(high)
	out := make(floats.Slice, n)

	if n == 0 {
		return out
	}

	var line float64
	for i := 0; i < n; i++ {
		var mfm float64
		if r := high[i] - low[i]; r != 0 {
			mfm = ((close[i] - low[i]) - (high[i] - close[i])) / r
		}
		line += mfm * volume[i]
		out[i] = line
	}

	return out
}

// OBV starts from the first bar's volume; later bars add volume unless
// the close fell, in which case they subtract it.
func OBV(close, volume []float64) floats.Slice {
	n := len(close)
	out := make(floats.Slice, n)

	if n == 0 {
		return out
	}

	out[0] = volume[0]
	for i := 1; i < n; i++ {
		if close[i] < close[i-1] {
			out[i] = out[i-1] - volume[i]
		} else {
			out[i] = out[i-1] + volume[i]
		}
	}

	return out
}

// CMF averages money flow volume against raw volume over the window.
func CMF(high, low, close, volume []float64, window int) floats.Slice {
	n := len(high)
	out := nanSlice(n)

	if window == 0 || window > n {
		return out
	}

	mfv := make(floats.Slice, n)
	for i := 0; i < n; i++ {
		var mfm float64
		if r := high[i] - low[i]; r != 0 {
			mfm = ((close[i] - low[i]) - (high[i] - close[i])) / r
		}
		mfv[i] = mfm * volume[i]
	}

	sumMFV := RollingSum(mfv, window)
	sumVolume := RollingSum(volume, window)

	for i := window - 1; i < n; i++ {
		if sumVolume[i] != 0 && !math.IsNaN(sumVolume[i]) {
			out[i] = sumMFV[i] / sumVolume[i]
		}
	}

	return out
}

// ForceIndex smooths (close change x volume) with an unadjusted EMA; the
// first bar's raw force is 0.
func ForceIndex(close, volume []float64, window int) floats.Slice {
	n := len(close)

	raw := nanSlice(n)
	if n == 0 {
		return raw
	}

	raw[0] = 0.0
	for i := 1; i < n; i++ {
		raw[i] = (close[i] - close[i-1]) * volume[i]
	}

	return emaAlpha(raw, 2.0/(float64(window)+1.0), false)
}

// EOM relates midpoint movement to the volume that produced it, scaled by
// 1e8; zero-volume bars stay NaN.
func EOM(high, low, volume []float64) floats.Slice {
	n := len(high)
	out := nanSlice(n)

	for i := 1; i < n; i++ {
		if volume[i] != 0 {
			distanceMoved := ((high[i] - high[i-1]) + (low[i] - low[i-1])) / 2.0
			boxHeight := high[i] - low[i]
			out[i] = distanceMoved * boxHeight / volume[i] * 100_000_000.0
		}
	}

	return out
}

// VPT accumulates volume scaled by the close's percent change.
func VPT(close, volume []float64) floats.Slice {
	n := len(close)
	out := make(floats.Slice, n)

	if n == 0 {
		return out
	}

	var line float64
	for i := 1; i < n; i++ {
		line += volume[i] * (close[i] - close[i-1]) / close[i-1]
		out[i] = line
	}

	return out
}

// NVI starts at 1000 and compounds the close's percent change only on
// falling-volume bars.
func NVI(close, volume []float64) floats.Slice {
	n := len(close)
	out := nanSlice(n)

	if n == 0 {
		return out
	}

	out[0] = 1000.0
	for i := 1; i < n; i++ {
		if volume[i] < volume[i-1] {
			out[i] = out[i-1] * (1.0 + (close[i]-close[i-1])/close[i-1])
		} else {
			out[i] = out[i-1]
		}
	}

	return out
}

// VWAP averages the typical price weighted by volume over the window.
func VWAP(high, low, close, volume []float64, window int) floats.Slice {
	n := len(high)
	out := nanSlice(n)

	if window == 0 || window > n {
		return out
	}

	tp := make([]float64, n)
	for i := 0; i < n; i++ {
		tp[i] = (high[i] + low[i] + close[i]) / 3.0
	}

	for i := window - 1; i < n; i++ {
		var sumTPV, sumVol float64
		for j := i + 1 - window; j <= i; j++ {
			sumTPV += tp[j] * volume[j]
			sumVol += volume[j]
		}
		if sumVol != 0 {
			out[i] = sumTPV / sumVol
		}
	}

	return out
}

// VWEMA smooths a rolling VWAP with an adjusted EMA that starts at the
// first defined VWAP value. Zero-volume windows fall back to the plain
// typical price average.
func VWEMA(high, low, close, volume []float64, vwapWindow, emaWindow int) floats.Slice {
	n := len(high)

	if vwapWindow == 0 || vwapWindow > n {
		return nanSlice(n)
	}

	tp := make([]float64, n)
	for i := 0; i < n; i++ {
		tp[i] = (high[i] + low[i] + close[i]) / 3.0
	}

	vwap := nanSlice(n)
	for i := vwapWindow - 1; i < n; i++ {
		var sumTPV, sumVol float64
		start := i + 1 - vwapWindow
		for j := start; j <= i; j++ {
			sumTPV += tp[j] * volume[j]
			sumVol += volume[j]
		}
		if sumVol != 0 {
			vwap[i] = sumTPV / sumVol
		} else {
			var sumTP float64
			for j := start; j <= i; j++ {
				sumTP += tp[j]
			}
			vwap[i] = sumTP / float64(vwapWindow)
		}
	}

	return emaAlphaSkipNaN(vwap, 2.0/(float64(emaWindow)+1.0), true)
}

// VolumeRatio compares each volume sample against its window SMA.
func VolumeRatio(volume []float64, window int) floats.Slice {
	n := len(volume)
	out := nanSlice(n)

	sma := SMA(volume, window)

	for i := 0; i < n; i++ {
		if !math.IsNaN(sma[i]) && sma[i] != 0 {
			out[i] = volume[i] / sma[i]
		}
	}

	return out
}
