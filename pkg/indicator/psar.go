package indicator

import "math"

// PSAR is the parabolic stop-and-reverse. The first two bars only seed
// state and echo the close. In an uptrend the SAR accelerates toward the
// extreme high and is clamped below the previous low; a breach flips the
// trend, resets the acceleration factor and restarts the SAR at the old
// extreme. The downtrend branch mirrors this.
//
// Refer: https://www.investopedia.com/terms/p/parabolicindicator.asp
type PSAR struct {
	afStart float64
	afInc   float64
	afMax   float64

	upTrend      bool
	af           float64
	upTrendHigh  float64
	downTrendLow float64
	prevSAR      float64
	prevHigh     float64
	prevLow      float64
	count        int
}

func NewPSAR(afStart, afInc, afMax float64) *PSAR {
	inc := &PSAR{
		afStart: afStart,
		afInc:   afInc,
		afMax:   afMax,
	}
	inc.Reset()
	return inc
}

func (inc *PSAR) Update(high, low, close float64) float64 {
	inc.count++

	if inc.count == 1 {
		inc.prevSAR = close
		inc.upTrendHigh = high
		inc.downTrendLow = low
		inc.prevHigh = high
		inc.prevLow = low
		return close
	}

	if inc.count == 2 {
		inc.prevHigh = high
		inc.prevLow = low
		return close
	}

	var sar float64
	reversal := false

	if inc.upTrend {
		sar = inc.prevSAR + inc.af*(inc.upTrendHigh-inc.prevSAR)

		if low < sar {
			reversal = true
			sar = inc.upTrendHigh
			inc.downTrendLow = low
			inc.af = inc.afStart
		} else {
			if high > inc.upTrendHigh {
				inc.upTrendHigh = high
				inc.af = math.Min(inc.af+inc.afInc, inc.afMax)
			}
			if inc.prevLow < sar {
				sar = inc.prevLow
			}
		}
	} else {
		sar = inc.prevSAR - inc.af*(inc.prevSAR-inc.downTrendLow)

		if high > sar {
			reversal = true
			sar = inc.downTrendLow
			inc.upTrendHigh = high
			inc.af = inc.afStart
		} else {
			if low < inc.downTrendLow {
				inc.downTrendLow = low
				inc.af = math.Min(inc.af+inc.afInc, inc.afMax)
			}
			if inc.prevHigh > sar {
				sar = inc.prevHigh
			}
		}
	}

	inc.upTrend = inc.upTrend != reversal
	inc.prevSAR = sar
	inc.prevHigh = high
	inc.prevLow = low

	return sar
}

func (inc *PSAR) Reset() {
	inc.upTrend = true
	inc.af = inc.afStart
	inc.upTrendHigh = math.NaN()
	inc.downTrendLow = math.NaN()
	inc.prevSAR = math.NaN()
	inc.prevHigh = math.NaN()
	inc.prevLow = math.NaN()
	inc.count = 0
}
