package indicator

import "math"

// Ulcer is the root-mean-square of percentage drawdowns from the running
// maximum inside the window. The oldest slot contributes zero since it
// has no prior maximum to draw down from.
//
// Refer: https://www.investopedia.com/terms/u/ulcerindex.asp
type Ulcer struct {
	window int
	closes *Window
}

func NewUlcer(window int) *Ulcer {
	if window < 1 {
		panic("indicator: Ulcer window must be at least 1")
	}
	return &Ulcer{
		window: window,
		closes: NewWindow(window),
	}
}

func (inc *Ulcer) Update(value float64) float64 {
	inc.closes.Push(value)

	if !inc.closes.Full() {
		return math.NaN()
	}

	maxClose := inc.closes.At(0)
	var sumSq float64
	for i := 1; i < inc.closes.Len(); i++ {
		c := inc.closes.At(i)
		if c > maxClose {
			maxClose = c
		}
		if maxClose > 0 {
			dd := (c - maxClose) / maxClose * 100.0
			sumSq += dd * dd
		}
	}

	return math.Sqrt(sumSq / float64(inc.closes.Len()))
}

func (inc *Ulcer) Reset() {
	inc.closes.Reset()
}
