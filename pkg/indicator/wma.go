package indicator

import "math"

// WMA is the linearly weighted moving average: the newest of the W buffered
// samples carries weight W, the oldest weight 1.
type WMA struct {
	window    int
	buf       *Window
	weightSum float64
}

func NewWMA(window int) *WMA {
	if window < 1 {
		panic("indicator: WMA window must be at least 1")
	}
	w := float64(window)
	return &WMA{
		window:    window,
		buf:       NewWindow(window),
		weightSum: w * (w + 1.0) / 2.0,
	}
}

func (inc *WMA) Update(value float64) float64 {
	inc.buf.Push(value)
	if !inc.buf.Full() {
		return math.NaN()
	}

	var weighted float64
	for i := 0; i < inc.window; i++ {
		weighted += float64(i+1) * inc.buf.At(i)
	}
	return weighted / inc.weightSum
}

func (inc *WMA) Reset() {
	inc.buf.Reset()
}
