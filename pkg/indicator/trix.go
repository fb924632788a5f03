package indicator

import "math"

// TRIX is the one-bar rate of change of a triple-smoothed EWMA, in percent.
//
// Refer: https://www.investopedia.com/terms/t/trix.asp
type TRIX struct {
	ema1     *EWMA
	ema2     *EWMA
	ema3     *EWMA
	prevEMA3 float64
}

func NewTRIX(window int) *TRIX {
	return &TRIX{
		ema1:     NewEWMA(window),
		ema2:     NewEWMA(window),
		ema3:     NewEWMA(window),
		prevEMA3: math.NaN(),
	}
}

func (inc *TRIX) Update(value float64) float64 {
	ema3 := inc.ema3.Update(inc.ema2.Update(inc.ema1.Update(value)))

	result := math.NaN()
	if !math.IsNaN(inc.prevEMA3) && !math.IsNaN(ema3) && inc.prevEMA3 != 0 {
		result = 100.0 * (ema3 - inc.prevEMA3) / inc.prevEMA3
	}

	inc.prevEMA3 = ema3
	return result
}

func (inc *TRIX) Reset() {
	inc.ema1.Reset()
	inc.ema2.Reset()
	inc.ema3.Reset()
	inc.prevEMA3 = math.NaN()
}
