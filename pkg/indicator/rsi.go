package indicator

import "math"

// RSI smooths gains and losses with Wilder's method (alpha = 1/window),
// seeding the averages from the first gain/loss pair. Values are withheld
// until window updates have been consumed. A zero average loss maps to 100.
//
// Refer: https://www.investopedia.com/terms/r/rsi.asp
type RSI struct {
	window int
	alpha  float64

	prevClose float64
	avgGain   float64
	avgLoss   float64
	count     int
}

func NewRSI(window int) *RSI {
	if window < 1 {
		panic("indicator: RSI window must be at least 1")
	}
	inc := &RSI{
		window: window,
		alpha:  1.0 / float64(window),
	}
	inc.Reset()
	return inc
}

func (inc *RSI) Update(value float64) float64 {
	inc.count++

	if inc.count == 1 {
		inc.prevClose = value
		return math.NaN()
	}

	change := value - inc.prevClose
	var gain, loss float64
	if change > 0 {
		gain = change
	} else {
		loss = -change
	}

	if math.IsNaN(inc.avgGain) {
		inc.avgGain = gain
		inc.avgLoss = loss
	} else {
		inc.avgGain = inc.alpha*gain + (1.0-inc.alpha)*inc.avgGain
		inc.avgLoss = inc.alpha*loss + (1.0-inc.alpha)*inc.avgLoss
	}

	rsi := 100.0
	if inc.avgLoss != 0 {
		rs := inc.avgGain / inc.avgLoss
		rsi = 100.0 - 100.0/(1.0+rs)
	}

	inc.prevClose = value

	if inc.count < inc.window {
		return math.NaN()
	}
	return rsi
}

func (inc *RSI) Reset() {
	inc.prevClose = math.NaN()
	inc.avgGain = math.NaN()
	inc.avgLoss = math.NaN()
	inc.count = 0
}
