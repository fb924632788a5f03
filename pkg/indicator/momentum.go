package indicator

import "math"

// Momentum is the raw difference between the current value and the value
// window-1 bars earlier.
type Momentum struct {
	window int
	buf    *Window
}

func NewMomentum(window int) *Momentum {
	if window < 1 {
		panic("indicator: Momentum window must be at least 1")
	}
	return &Momentum{
		window: window,
		buf:    NewWindow(window),
	}
}

func (inc *Momentum) Update(value float64) float64 {
	inc.buf.Push(value)

	if !inc.buf.Full() {
		return math.NaN()
	}
	return value - inc.buf.First()
}

func (inc *Momentum) Reset() {
	inc.buf.Reset()
}
