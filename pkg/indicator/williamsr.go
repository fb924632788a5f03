package indicator

import "math"

// WilliamsR positions the close inside the window's high/low range on the
// -100..0 scale. A flat range pins the value to -100.
//
// Refer: https://www.investopedia.com/terms/w/williamsr.asp
type WilliamsR struct {
	window int
	highs  *Window
	lows   *Window
}

func NewWilliamsR(window int) *WilliamsR {
	if window < 1 {
		panic("indicator: WilliamsR window must be at least 1")
	}
	return &WilliamsR{
		window: window,
		highs:  NewWindow(window),
		lows:   NewWindow(window),
	}
}

func (inc *WilliamsR) Update(high, low, close float64) float64 {
	inc.highs.Push(high)
	inc.lows.Push(low)

	if !inc.highs.Full() {
		return math.NaN()
	}

	highest := inc.highs.Max()
	lowest := inc.lows.Min()

	if highest == lowest {
		return -100.0
	}
	return -100.0 * (highest - close) / (highest - lowest)
}

func (inc *WilliamsR) Reset() {
	inc.highs.Reset()
	inc.lows.Reset()
}
