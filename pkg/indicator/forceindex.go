package indicator

import "math"

// ForceIndex smooths (close change x volume) with an EWMA seeded from the
// first real force value. Values are withheld until window updates have
// been consumed.
//
// Refer: https://www.investopedia.com/terms/f/force-index.asp
type ForceIndex struct {
	window int
	alpha  float64

	prevClose float64
	current   float64
	count     int
}

func NewForceIndex(window int) *ForceIndex {
	if window < 1 {
		panic("indicator: ForceIndex window must be at least 1")
	}
	inc := &ForceIndex{
		window: window,
		alpha:  2.0 / (float64(window) + 1.0),
	}
	inc.Reset()
	return inc
}

func (inc *ForceIndex) Update(close, volume float64) float64 {
	inc.count++

	if inc.count == 1 {
		inc.prevClose = close
		return math.NaN()
	}

	force := (close - inc.prevClose) * volume

	if math.IsNaN(inc.current) {
		inc.current = force
	} else {
		inc.current = inc.alpha*force + (1.0-inc.alpha)*inc.current
	}

	inc.prevClose = close

	if inc.count < inc.window {
		return math.NaN()
	}
	return inc.current
}

func (inc *ForceIndex) Reset() {
	inc.prevClose = math.NaN()
	inc.current = math.NaN()
	inc.count = 0
}
