package indicator

import "math"

// MaxDrawdown reports the deepest percent decline from a running maximum
// inside the window. It needs at least two closes and its output is never
// positive.
//
// Refer: https://www.investopedia.com/terms/m/maximum-drawdown-mdd.asp
type MaxDrawdown struct {
	window int
	closes *Window
}

func NewMaxDrawdown(window int) *MaxDrawdown {
	if window < 1 {
		panic("indicator: MaxDrawdown window must be at least 1")
	}
	return &MaxDrawdown{
		window: window,
		closes: NewWindow(window),
	}
}

func (inc *MaxDrawdown) Update(close float64) float64 {
	inc.closes.Push(close)

	if inc.closes.Len() < 2 {
		return math.NaN()
	}

	runningMax := inc.closes.At(0)
	maxDrawdown := 0.0
	for i := 1; i < inc.closes.Len(); i++ {
		price := inc.closes.At(i)
		if price > runningMax {
			runningMax = price
		}
		if dd := (price - runningMax) / runningMax; dd < maxDrawdown {
			maxDrawdown = dd
		}
	}

	return maxDrawdown * 100.0
}

func (inc *MaxDrawdown) Reset() {
	inc.closes.Reset()
}
