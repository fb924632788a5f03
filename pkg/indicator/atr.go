package indicator

import "math"

// ATR applies Wilder smoothing (alpha = 1/window) to the true range,
// seeding from the first bar's range. Values are withheld until window
// bars have been consumed.
//
// Refer: https://www.investopedia.com/terms/a/atr.asp
type ATR struct {
	window int
	alpha  float64

	prevClose float64
	current   float64
	count     int
}

func NewATR(window int) *ATR {
	if window < 1 {
		panic("indicator: ATR window must be at least 1")
	}
	inc := &ATR{
		window: window,
		alpha:  1.0 / float64(window),
	}
	inc.Reset()
	return inc
}

func (inc *ATR) Update(high, low, close float64) float64 {
	inc.count++

	tr := high - low
	if !math.IsNaN(inc.prevClose) {
		tr = trueRange(high, low, inc.prevClose)
	}

	if math.IsNaN(inc.current) {
		inc.current = tr
	} else {
		inc.current = (1.0-inc.alpha)*inc.current + inc.alpha*tr
	}

	inc.prevClose = close

	if inc.count < inc.window {
		return math.NaN()
	}
	return inc.current
}

func (inc *ATR) Reset() {
	inc.prevClose = math.NaN()
	inc.current = math.NaN()
	inc.count = 0
}
