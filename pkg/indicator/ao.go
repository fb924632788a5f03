package indicator

import "math"

// AO is the Awesome Oscillator: the spread between a fast and a slow SMA
// of the bar midpoint (high+low)/2.
//
// Refer: https://www.investopedia.com/articles/technical/100801.asp
type AO struct {
	fast *SMA
	slow *SMA
}

func NewAO(fastWindow, slowWindow int) *AO {
	return &AO{
		fast: NewSMA(fastWindow),
		slow: NewSMA(slowWindow),
	}
}

func (inc *AO) Update(high, low float64) float64 {
	midpoint := (high + low) / 2.0
	fast := inc.fast.Update(midpoint)
	slow := inc.slow.Update(midpoint)

	if math.IsNaN(fast) || math.IsNaN(slow) {
		return math.NaN()
	}
	return fast - slow
}

func (inc *AO) Reset() {
	inc.fast.Reset()
	inc.slow.Reset()
}
