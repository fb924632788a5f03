package indicator

import "math"

// ROC is the percent change of the current value against the value
// window-1 bars earlier (the oldest of window buffered samples). A zero
// base maps to 0 rather than dividing by zero.
//
// Refer: https://www.investopedia.com/terms/p/pricerateofchange.asp
type ROC struct {
	window int
	buf    *Window
}

func NewROC(window int) *ROC {
	if window < 1 {
		panic("indicator: ROC window must be at least 1")
	}
	return &ROC{
		window: window,
		buf:    NewWindow(window),
	}
}

func (inc *ROC) Update(value float64) float64 {
	inc.buf.Push(value)

	if !inc.buf.Full() {
		return math.NaN()
	}

	old := inc.buf.First()
	if old == 0 {
		return 0.0
	}
	return (value - old) / old * 100.0
}

func (inc *ROC) Reset() {
	inc.buf.Reset()
}
