package indicator

import "math"

// EOM relates midpoint movement to the volume needed to produce it,
// scaled by 1e8 to keep typical values readable. A zero-volume bar yields
// NaN.
//
// Refer: https://www.investopedia.com/terms/e/easeofmovement.asp
type EOM struct {
	prevHigh float64
	prevLow  float64
	count    int
}

func NewEOM() *EOM {
	return &EOM{
		prevHigh: math.NaN(),
		prevLow:  math.NaN(),
	}
}

func (inc *EOM) Update(high, low, volume float64) float64 {
	inc.count++

	if inc.count == 1 {
		inc.prevHigh = high
		inc.prevLow = low
		return math.NaN()
	}

	result := math.NaN()
	if volume != 0 {
		distanceMoved := ((high - inc.prevHigh) + (low - inc.prevLow)) / 2.0
		boxHeight := high - low
		result = distanceMoved * boxHeight / volume * 100_000_000.0
	}

	inc.prevHigh = high
	inc.prevLow = low

	return result
}

func (inc *EOM) Reset() {
	inc.prevHigh = math.NaN()
	inc.prevLow = math.NaN()
	inc.count = 0
}
