package indicator

import "math"

// ZScore standardizes the latest value against the window's mean and
// population standard deviation. A zero deviation maps to 0.
type ZScore struct {
	window int
	buf    *Window
}

func NewZScore(window int) *ZScore {
	if window < 1 {
		panic("indicator: ZScore window must be at least 1")
	}
	return &ZScore{
		window: window,
		buf:    NewWindow(window),
	}
}

func (inc *ZScore) Update(value float64) float64 {
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
	std := math.Sqrt(variance / float64(inc.window))

	if std == 0 {
		return 0.0
	}
	return (value - mean) / std
}

func (inc *ZScore) Reset() {
	inc.buf.Reset()
}
