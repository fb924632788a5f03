package indicator

import "math"

// VWEMA smooths a rolling VWAP with an EWMA. The EWMA is only fed once
// the VWAP window is full, so it seeds from the first defined VWAP value.
type VWEMA struct {
	vwap *VWAP
	ema  *EWMA
}

func NewVWEMA(vwapPeriod, emaPeriod int) *VWEMA {
	return &VWEMA{
		vwap: NewVWAP(vwapPeriod),
		ema:  NewEWMA(emaPeriod),
	}
}

func (inc *VWEMA) Update(high, low, close, volume float64) float64 {
	vwap := inc.vwap.Update(high, low, close, volume)
	if math.IsNaN(vwap) {
		return math.NaN()
	}
	return inc.ema.Update(vwap)
}

func (inc *VWEMA) Reset() {
	inc.vwap.Reset()
	inc.ema.Reset()
}
