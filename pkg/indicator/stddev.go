package indicator

import "math"

// StdDev is the rolling population standard deviation over a fixed
// window.
type StdDev struct {
	window int
	buf    *Window
}

func NewStdDev(window int) *StdDev {
	if window < 1 {
		panic("indicator: StdDev window must be at least 1")
	}
	return &StdDev{
		window: window,
		buf:    NewWindow(window),
	}
}

func (inc *StdDev) Update(value float64) float64 {
	inc.buf.Push(value)

	if !inc.buf.Full() {
		return math.NaN()
	}

	mean := inc.buf.Sum() / float64(inc.window)
	var variance float64
	for i := 0; i < inc.window; i++ {
		d := inc.buf.At(i) - mean
		variance += d * d
	}
	return math.Sqrt(variance / float64(inc.window))
}

func (inc *StdDev) Reset() {
	inc.buf.Reset()
}
