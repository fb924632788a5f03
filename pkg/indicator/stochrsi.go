package indicator

import "math"

// StochRSI applies the stochastic construction to an RSI stream: the raw
// value positions the latest RSI inside its own stochPeriod range on a
// 0..1 scale, %K smooths the raw value and %D smooths %K. While %K is
// still warming up, %D's window absorbs the NaN placeholders without
// poisoning its average.
//
// Refer: https://www.investopedia.com/terms/s/stochrsi.asp
type StochRSI struct {
	rsi         *RSI
	rsiBuf      *Window
	kSMA        *SMA
	dSMA        *SMA
	stochPeriod int
}

func NewStochRSI(rsiPeriod, stochPeriod, kPeriod, dPeriod int) *StochRSI {
	if stochPeriod < 1 {
		panic("indicator: StochRSI stoch period must be at least 1")
	}
	return &StochRSI{
		rsi:         NewRSI(rsiPeriod),
		rsiBuf:      NewWindow(stochPeriod),
		kSMA:        NewSMA(kPeriod),
		dSMA:        NewSMA(dPeriod),
		stochPeriod: stochPeriod,
	}
}

// Update consumes a close price and returns (stochRSI, percentK, percentD).
func (inc *StochRSI) Update(value float64) (float64, float64, float64) {
	rsi := inc.rsi.Update(value)
	if math.IsNaN(rsi) {
		return math.NaN(), math.NaN(), math.NaN()
	}

	inc.rsiBuf.Push(rsi)
	if !inc.rsiBuf.Full() {
		return math.NaN(), math.NaN(), math.NaN()
	}

	lowRSI := inc.rsiBuf.Min()
	highRSI := inc.rsiBuf.Max()

	stochRSI := 0.0
	if highRSI > lowRSI {
		stochRSI = (rsi - lowRSI) / (highRSI - lowRSI)
	}

	k := inc.kSMA.Update(stochRSI)
	d := inc.dSMA.Update(k)

	return stochRSI, k, d
}

func (inc *StochRSI) Reset() {
	inc.rsi.Reset()
	inc.rsiBuf.Reset()
	inc.kSMA.Reset()
	inc.dSMA.Reset()
}
