package indicator

import "math"

// MFI is a volume-weighted RSI over the typical price: raw money flow is
// classified as positive or negative by the typical-price direction, and
// the window's flow ratio maps onto the 0..100 scale. The first bar and
// unchanged bars contribute zero flow; a zero negative sum maps to 100.
//
// Refer: https://www.investopedia.com/terms/m/mfi.asp
type MFI struct {
	window     int
	positiveMF *Window
	negativeMF *Window
	prevTP     float64
}

func NewMFI(window int) *MFI {
	if window < 1 {
		panic("indicator: MFI window must be at least 1")
	}
	return &MFI{
		window:     window,
		positiveMF: NewWindow(window),
		negativeMF: NewWindow(window),
		prevTP:     math.NaN(),
	}
}

func (inc *MFI) Update(high, low, close, volume float64) float64 {
	typicalPrice := (high + low + close) / 3.0
	rawMoneyFlow := typicalPrice * volume

	var positive, negative float64
	if !math.IsNaN(inc.prevTP) {
		if typicalPrice > inc.prevTP {
			positive = rawMoneyFlow
		} else if typicalPrice < inc.prevTP {
			negative = rawMoneyFlow
		}
	}

	inc.positiveMF.Push(positive)
	inc.negativeMF.Push(negative)
	inc.prevTP = typicalPrice

	if !inc.positiveMF.Full() {
		return math.NaN()
	}

	negSum := inc.negativeMF.Sum()
	if negSum == 0 {
		return 100.0
	}

	ratio := inc.positiveMF.Sum() / negSum
	return 100.0 - 100.0/(1.0+ratio)
}

func (inc *MFI) Reset() {
	inc.positiveMF.Reset()
	inc.negativeMF.Reset()
	inc.prevTP = math.NaN()
}
