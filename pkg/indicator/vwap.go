package indicator

import "math"

// VWAP averages the typical price weighted by volume over a rolling
// window. A zero volume sum maps to 0.
//
// Refer: https://www.investopedia.com/terms/v/vwap.asp
type VWAP struct {
	window  int
	tpv     *Window
	volumes *Window
}

func NewVWAP(window int) *VWAP {
	if window < 1 {
		panic("indicator: VWAP window must be at least 1")
	}
	return &VWAP{
		window:  window,
		tpv:     NewWindow(window),
		volumes: NewWindow(window),
	}
}

func (inc *VWAP) Update(high, low, close, volume float64) float64 {
	typicalPrice := (high + low + close) / 3.0

	inc.tpv.Push(typicalPrice * volume)
	inc.volumes.Push(volume)

	if !inc.tpv.Full() {
		return math.NaN()
	}

	sumVolume := inc.volumes.Sum()
	if sumVolume == 0 {
		return 0.0
	}
	return inc.tpv.Sum() / sumVolume
}

func (inc *VWAP) Reset() {
	inc.tpv.Reset()
	inc.volumes.Reset()
}
