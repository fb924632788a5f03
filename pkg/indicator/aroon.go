package indicator

import "math"

// Aroon measures how recently the window extremes occurred, scaled to
// 0..100. The lookback spans window+1 bars so that "window bars ago" is a
// reachable distance; ties resolve toward the most recent extreme.
//
// Refer: https://www.investopedia.com/terms/a/aroon.asp
type Aroon struct {
	window int
	highs  *Window
	lows   *Window
}

func NewAroon(window int) *Aroon {
	if window < 1 {
		panic("indicator: Aroon window must be at least 1")
	}
	return &Aroon{
		window: window,
		highs:  NewWindow(window + 1),
		lows:   NewWindow(window + 1),
	}
}

// Update consumes a bar's high and low and returns (aroonUp, aroonDown).
func (inc *Aroon) Update(high, low float64) (float64, float64) {
	inc.highs.Push(high)
	inc.lows.Push(low)

	if !inc.highs.Full() {
		return math.NaN(), math.NaN()
	}

	sinceHigh := inc.highs.Len() - 1 - inc.highs.MaxIndex()
	sinceLow := inc.lows.Len() - 1 - inc.lows.MinIndex()

	w := float64(inc.window)
	up := (w - float64(sinceHigh)) / w * 100.0
	down := (w - float64(sinceLow)) / w * 100.0

	return up, down
}

func (inc *Aroon) Reset() {
	inc.highs.Reset()
	inc.lows.Reset()
}
