package indicator

import "math"

// Donchian tracks the highest high and lowest low over a rolling window;
// the middle band is their midpoint.
//
// Refer: https://www.investopedia.com/terms/d/donchianchannels.asp
type Donchian struct {
	window int
	highs  *Window
	lows   *Window
}

func NewDonchian(window int) *Donchian {
	if window < 1 {
		panic("indicator: Donchian window must be at least 1")
	}
	return &Donchian{
		window: window,
		highs:  NewWindow(window),
		lows:   NewWindow(window),
	}
}

// Update consumes a bar's high and low and returns (upper, middle, lower).
func (inc *Donchian) Update(high, low float64) (float64, float64, float64) {
	inc.highs.Push(high)
	inc.lows.Push(low)

	if !inc.highs.Full() {
		return math.NaN(), math.NaN(), math.NaN()
	}

	upper := inc.highs.Max()
	lower := inc.lows.Min()
	return upper, (upper + lower) / 2.0, lower
}

func (inc *Donchian) Reset() {
	inc.highs.Reset()
	inc.lows.Reset()
}
