package indicator

import "math"

// KAMA adapts its smoothing constant to the efficiency ratio: net price
// movement over window bars divided by the summed absolute bar-to-bar
// movement. The lookback spans window+1 samples; the first defined output
// seeds with the raw price.
//
// Refer: https://www.investopedia.com/terms/k/kaufmansadaptivemovingaverage.asp
type KAMA struct {
	window int
	fastSC float64
	slowSC float64

	prices   *Window
	prevKAMA float64
}

func NewKAMA(window, fastPeriod, slowPeriod int) *KAMA {
	if window < 1 {
		panic("indicator: KAMA window must be at least 1")
	}
	return &KAMA{
		window:   window,
		fastSC:   2.0 / (float64(fastPeriod) + 1.0),
		slowSC:   2.0 / (float64(slowPeriod) + 1.0),
		prices:   NewWindow(window + 1),
		prevKAMA: math.NaN(),
	}
}

func (inc *KAMA) Update(value float64) float64 {
	inc.prices.Push(value)

	if !inc.prices.Full() {
		return math.NaN()
	}

	direction := math.Abs(inc.prices.Last() - inc.prices.First())
	var volatility float64
	for i := 1; i < inc.prices.Len(); i++ {
		volatility += math.Abs(inc.prices.At(i) - inc.prices.At(i-1))
	}

	er := 0.0
	if volatility > 0 {
		er = direction / volatility
	}

	sc := math.Pow(er*(inc.fastSC-inc.slowSC)+inc.slowSC, 2)

	if math.IsNaN(inc.prevKAMA) {
		inc.prevKAMA = value
	} else {
		inc.prevKAMA += sc * (value - inc.prevKAMA)
	}
	return inc.prevKAMA
}

func (inc *KAMA) Reset() {
	inc.prices.Reset()
	inc.prevKAMA = math.NaN()
}
