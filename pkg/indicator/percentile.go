package indicator

import "math"

// Percentile reports the fraction of window samples at or below the
// latest value, on a 0..1 scale.
type Percentile struct {
	window int
	buf    *Window
}

func NewPercentile(window int) *Percentile {
	if window < 1 {
		panic("indicator: Percentile window must be at least 1")
	}
	return &Percentile{
		window: window,
		buf:    NewWindow(window),
	}
}

func (inc *Percentile) Update(value float64) float64 {
	inc.buf.Push(value)

	if !inc.buf.Full() {
		return math.NaN()
	}

	count := 0
	for i := 0; i < inc.window; i++ {
		if inc.buf.At(i) <= value {
			count++
		}
	}
	return float64(count) / float64(inc.window)
}

func (inc *Percentile) Reset() {
	inc.buf.Reset()
}
