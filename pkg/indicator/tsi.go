package indicator

import "math"

// TSI double-smooths one-bar momentum and its absolute value with two EWMA
// stages each, then reports their ratio in percent. A zero smoothed
// absolute momentum yields NaN.
//
// Refer: https://www.investopedia.com/terms/t/tsi.asp
type TSI struct {
	momentum1    *EWMA
	momentum2    *EWMA
	absMomentum1 *EWMA
	absMomentum2 *EWMA

	prevClose float64
	count     int
}

func NewTSI(firstSmooth, secondSmooth int) *TSI {
	return &TSI{
		momentum1:    NewEWMA(firstSmooth),
		momentum2:    NewEWMA(secondSmooth),
		absMomentum1: NewEWMA(firstSmooth),
		absMomentum2: NewEWMA(secondSmooth),
		prevClose:    math.NaN(),
	}
}

func (inc *TSI) Update(value float64) float64 {
	inc.count++

	if inc.count == 1 {
		inc.prevClose = value
		return math.NaN()
	}

	momentum := value - inc.prevClose
	inc.prevClose = value

	smoothMomentum := inc.momentum2.Update(inc.momentum1.Update(momentum))
	smoothAbs := inc.absMomentum2.Update(inc.absMomentum1.Update(math.Abs(momentum)))

	if math.IsNaN(smoothMomentum) || math.IsNaN(smoothAbs) || smoothAbs == 0 {
		return math.NaN()
	}
	return 100.0 * smoothMomentum / smoothAbs
}

func (inc *TSI) Reset() {
	inc.momentum1.Reset()
	inc.momentum2.Reset()
	inc.absMomentum1.Reset()
	inc.absMomentum2.Reset()
	inc.prevClose = math.NaN()
	inc.count = 0
}
