package indicator

import "math"

// SMA is the simple moving average over a fixed window, maintained with a
// running sum.
type SMA struct {
	window int
	buf    *Window
}

func NewSMA(window int) *SMA {
	if window < 1 {
		panic("indicator: SMA window must be at least 1")
	}
	return &SMA{
		window: window,
		buf:    NewWindow(window),
	}
}

func (inc *SMA) Update(value float64) float64 {
	inc.buf.Push(value)
	if !inc.buf.Full() {
		return math.NaN()
	}
	return inc.buf.Mean()
}

func (inc *SMA) Reset() {
	inc.buf.Reset()
}
