package indicator

import "math"

// Boll is the Bollinger band triple: an SMA middle band with upper and
// lower bands offset by a multiple of the population standard deviation
// over the same window.
//
// Refer: https://www.investopedia.com/terms/b/bollingerbands.asp
type Boll struct {
	window int
	k      float64
	buf    *Window
}

func NewBoll(window int, k float64) *Boll {
	if window < 1 {
		panic("indicator: Boll window must be at least 1")
	}
	return &Boll{
		window: window,
		k:      k,
		buf:    NewWindow(window),
	}
}

// Update consumes a close price and returns (upper, middle, lower).
func (inc *Boll) Update(value float64) (float64, float64, float64) {
	inc.buf.Push(value)

	if !inc.buf.Full() {
		return math.NaN(), math.NaN(), math.NaN()
	}

	mean := inc.buf.Sum() / float64(inc.window)
	var variance float64
	for i := 0; i < inc.window; i++ {
		d := inc.buf.At(i) - mean
		variance += d * d
	}
	variance /= float64(inc.window)
	std := math.Sqrt(variance)

	return mean + inc.k*std, mean, mean - inc.k*std
}

func (inc *Boll) Reset() {
	inc.buf.Reset()
}
