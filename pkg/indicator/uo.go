package indicator

import "math"

// UO is the Ultimate Oscillator: buying pressure relative to true range
// averaged over three nested periods and blended with weights 4:2:1. The
// first bar, lacking a previous close, uses close-low and high-low.
//
// Refer: https://www.investopedia.com/terms/u/ultimateoscillator.asp
type UO struct {
	period1 int
	period2 int
	period3 int

	bp *Window
	tr *Window

	prevClose float64
}

func NewUO(period1, period2, period3 int) *UO {
	if period1 < 1 || period2 < period1 || period3 < period2 {
		panic("indicator: UO periods must satisfy 1 <= period1 <= period2 <= period3")
	}
	return &UO{
		period1:   period1,
		period2:   period2,
		period3:   period3,
		bp:        NewWindow(period3),
		tr:        NewWindow(period3),
		prevClose: math.NaN(),
	}
}

func (inc *UO) Update(high, low, close float64) float64 {
	var bp, tr float64
	if math.IsNaN(inc.prevClose) {
		bp = close - low
		tr = high - low
	} else {
		bp = close - math.Min(low, inc.prevClose)
		tr = trueRange(high, low, inc.prevClose)
	}

	inc.bp.Push(bp)
	inc.tr.Push(tr)
	inc.prevClose = close

	if !inc.bp.Full() {
		return math.NaN()
	}

	avg := func(period int) float64 {
		var sumBP, sumTR float64
		start := inc.bp.Len() - period
		for i := start; i < inc.bp.Len(); i++ {
			sumBP += inc.bp.At(i)
			sumTR += inc.tr.At(i)
		}
		return sumBP / sumTR
	}

	avg1 := avg(inc.period1)
	avg2 := avg(inc.period2)
	avg3 := avg(inc.period3)

	return 100.0 * (4.0*avg1 + 2.0*avg2 + avg3) / 7.0
}

func (inc *UO) Reset() {
	inc.bp.Reset()
	inc.tr.Reset()
	inc.prevClose = math.NaN()
}
