package indicator

import "math"

// ADX measures trend strength from Wilder-smoothed directional movement.
// The first bar only records the previous high/low/close; smoothing seeds
// from the first directional deltas and the ADX value itself is withheld
// until window bars have been consumed.
//
// Refer: https://www.investopedia.com/terms/a/adx.asp
type ADX struct {
	window int
	alpha  float64

	prevHigh  float64
	prevLow   float64
	prevClose float64

	smoothedPlusDM  float64
	smoothedMinusDM float64
	smoothedTR      float64
	smoothedDX      float64

	count int
}

func NewADX(window int) *ADX {
	if window < 1 {
		panic("indicator: ADX window must be at least 1")
	}
	inc := &ADX{
		window: window,
		alpha:  1.0 / float64(window),
	}
	inc.Reset()
	return inc
}

// Update consumes a bar and returns (adx, plusDI, minusDI).
func (inc *ADX) Update(high, low, close float64) (float64, float64, float64) {
	inc.count++

	if inc.count == 1 {
		inc.prevHigh = high
		inc.prevLow = low
		inc.prevClose = close
		return math.NaN(), math.NaN(), math.NaN()
	}

	highDiff := high - inc.prevHigh
	lowDiff := inc.prevLow - low

	var plusDM, minusDM float64
	if highDiff > lowDiff && highDiff > 0 {
		plusDM = highDiff
	}
	if lowDiff > highDiff && lowDiff > 0 {
		minusDM = lowDiff
	}

	tr := trueRange(high, low, inc.prevClose)

	if math.IsNaN(inc.smoothedTR) {
		inc.smoothedPlusDM = plusDM
		inc.smoothedMinusDM = minusDM
		inc.smoothedTR = tr
	} else {
		inc.smoothedPlusDM = (1.0-inc.alpha)*inc.smoothedPlusDM + inc.alpha*plusDM
		inc.smoothedMinusDM = (1.0-inc.alpha)*inc.smoothedMinusDM + inc.alpha*minusDM
		inc.smoothedTR = (1.0-inc.alpha)*inc.smoothedTR + inc.alpha*tr
	}

	adx := math.NaN()
	plusDI := math.NaN()
	minusDI := math.NaN()

	if inc.smoothedTR > 0 {
		plusDI = 100.0 * inc.smoothedPlusDM / inc.smoothedTR
		minusDI = 100.0 * inc.smoothedMinusDM / inc.smoothedTR

		if diSum := plusDI + minusDI; diSum > 0 {
			dx := 100.0 * math.Abs(plusDI-minusDI) / diSum

			if math.IsNaN(inc.smoothedDX) {
				inc.smoothedDX = dx
			} else {
				inc.smoothedDX = (1.0-inc.alpha)*inc.smoothedDX + inc.alpha*dx
			}

			if inc.count >= inc.window {
				adx = inc.smoothedDX
			}
		}
	}

	inc.prevHigh = high
	inc.prevLow = low
	inc.prevClose = close

	return adx, plusDI, minusDI
}

func (inc *ADX) Reset() {
	inc.prevHigh = math.NaN()
	inc.prevLow = math.NaN()
	inc.prevClose = math.NaN()
	inc.smoothedPlusDM = math.NaN()
	inc.smoothedMinusDM = math.NaN()
	inc.smoothedTR = math.NaN()
	inc.smoothedDX = math.NaN()
	inc.count = 0
}
