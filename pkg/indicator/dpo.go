package indicator

import "math"

// DPO detrends price by comparing a displaced close against the current
// moving average. The displacement is window/2 + 1 bars.
//
// Refer: https://www.investopedia.com/terms/d/detrended-price-oscillator-dpo.asp
type DPO struct {
	window       int
	displacement int
	sma          *SMA
	prices       *Window
}

func NewDPO(window int) *DPO {
	if window < 1 {
		panic("indicator: DPO window must be at least 1")
	}
	return &DPO{
		window:       window,
		displacement: window/2 + 1,
		sma:          NewSMA(window),
		prices:       NewWindow(window),
	}
}

func (inc *DPO) Update(value float64) float64 {
	inc.prices.Push(value)
	sma := inc.sma.Update(value)

	if inc.prices.Len() < inc.displacement || math.IsNaN(sma) {
		return math.NaN()
	}

	displaced := inc.prices.At(inc.prices.Len() - inc.displacement)
	return displaced - sma
}

func (inc *DPO) Reset() {
	inc.sma.Reset()
	inc.prices.Reset()
}
