package indicator

import "math"

// trueRange is the per-bar true range given the previous close:
// max(high-low, |high-prevClose|, |low-prevClose|).
func trueRange(high, low, prevClose float64) float64 {
	hl := high - low
	hc := math.Abs(high - prevClose)
	lc := math.Abs(low - prevClose)
	return math.Max(hl, math.Max(hc, lc))
}

// TR emits the raw true range of each bar. The very first bar has no
// previous close, so its true range is simply high-low.
type TR struct {
	prevClose float64
	count     int
}

func NewTR() *TR {
	return &TR{prevClose: math.NaN()}
}

func (inc *TR) Update(high, low, close float64) float64 {
	inc.count++

	tr := high - low
	if !math.IsNaN(inc.prevClose) {
		tr = trueRange(high, low, inc.prevClose)
	}
	inc.prevClose = close
	return tr
}

func (inc *TR) Reset() {
	inc.prevClose = math.NaN()
	inc.count = 0
}
