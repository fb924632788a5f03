package indicator

import "math"

// Keltner is the EWMA-centered Keltner channel: the middle band is an
// EWMA of the close and the envelope is a multiple of the ATR.
//
// Refer: https://www.investopedia.com/terms/k/keltnerchannel.asp
type Keltner struct {
	multiplier float64
	ema        *EWMA
	atr        *ATR
}

func NewKeltner(window, atrPeriod int, multiplier float64) *Keltner {
	return &Keltner{
		multiplier: multiplier,
		ema:        NewEWMA(window),
		atr:        NewATR(atrPeriod),
	}
}

// Update consumes a bar and returns (upper, middle, lower).
func (inc *Keltner) Update(high, low, close float64) (float64, float64, float64) {
	ema := inc.ema.Update(close)
	atr := inc.atr.Update(high, low, close)

	if math.IsNaN(ema) || math.IsNaN(atr) {
		return math.NaN(), math.NaN(), math.NaN()
	}

	return ema + inc.multiplier*atr, ema, ema - inc.multiplier*atr
}

func (inc *Keltner) Reset() {
	inc.ema.Reset()
	inc.atr.Reset()
}
