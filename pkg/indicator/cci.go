package indicator

import "math"

// CCI scales the deviation of the typical price from its moving average by
// the mean absolute deviation. A zero deviation (flat window) maps to 0
// rather than dividing by zero.
//
// Refer: https://www.investopedia.com/terms/c/commoditychannelindex.asp
type CCI struct {
	window   int
	constant float64
	tp       *Window
}

func NewCCI(window int, constant float64) *CCI {
	if window < 1 {
		panic("indicator: CCI window must be at least 1")
	}
	return &CCI{
		window:   window,
		constant: constant,
		tp:       NewWindow(window),
	}
}

func (inc *CCI) Update(high, low, close float64) float64 {
	typicalPrice := (high + low + close) / 3.0
	inc.tp.Push(typicalPrice)

	if !inc.tp.Full() {
		return math.NaN()
	}

	sma := inc.tp.Sum() / float64(inc.window)
	var mad float64
	for i := 0; i < inc.window; i++ {
		mad += math.Abs(inc.tp.At(i) - sma)
	}
	mad /= float64(inc.window)

	if mad == 0 {
		return 0.0
	}
	return (typicalPrice - sma) / (inc.constant * mad)
}

func (inc *CCI) Reset() {
	inc.tp.Reset()
}
