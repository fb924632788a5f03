package indicator

import "math"

// DailyReturn is the one-bar percent change of the close. A zero previous
// close yields NaN.
type DailyReturn struct {
	prevClose float64
	count     int
}

func NewDailyReturn() *DailyReturn {
	return &DailyReturn{prevClose: math.NaN()}
}

func (inc *DailyReturn) Update(close float64) float64 {
	inc.count++

	if inc.count == 1 {
		inc.prevClose = close
		return math.NaN()
	}

	result := math.NaN()
	if inc.prevClose != 0 {
		result = (close - inc.prevClose) / inc.prevClose * 100.0
	}

	inc.prevClose = close
	return result
}

func (inc *DailyReturn) Reset() {
	inc.prevClose = math.NaN()
	inc.count = 0
}

// DailyLogReturn is the one-bar log return of the close in percent. It is
// only defined when both closes are positive.
type DailyLogReturn struct {
	prevClose float64
	count     int
}

func NewDailyLogReturn() *DailyLogReturn {
	return &DailyLogReturn{prevClose: math.NaN()}
}

func (inc *DailyLogReturn) Update(close float64) float64 {
	inc.count++

	if inc.count == 1 {
		inc.prevClose = close
		return math.NaN()
	}

	result := math.NaN()
	if inc.prevClose > 0 && close > 0 {
		result = math.Log(close/inc.prevClose) * 100.0
	}

	inc.prevClose = close
	return result
}

func (inc *DailyLogReturn) Reset() {
	inc.prevClose = math.NaN()
	inc.count = 0
}

// CumulativeReturn is the percent return against the first close seen,
// which defines the baseline and reports 0.
type CumulativeReturn struct {
	initialPrice float64
	count        int
}

func NewCumulativeReturn() *CumulativeReturn {
	return &CumulativeReturn{initialPrice: math.NaN()}
}

func (inc *CumulativeReturn) Update(close float64) float64 {
	inc.count++

	if inc.count == 1 {
		inc.initialPrice = close
		return 0.0
	}

	if inc.initialPrice == 0 {
		return math.NaN()
	}
	return (close/inc.initialPrice - 1.0) * 100.0
}

func (inc *CumulativeReturn) Reset() {
	inc.initialPrice = math.NaN()
	inc.count = 0
}

// CompoundLogReturn accumulates one-bar log returns and reports the
// compounded percent return. Bars with a non-positive close on either
// side leave the accumulator untouched.
type CompoundLogReturn struct {
	cumulative float64
	prevClose  float64
	count      int
}

func NewCompoundLogReturn() *CompoundLogReturn {
	return &CompoundLogReturn{prevClose: math.NaN()}
}

func (inc *CompoundLogReturn) Update(close float64) float64 {
	inc.count++

	if inc.count == 1 {
		inc.prevClose = close
		return 0.0
	}

	if inc.prevClose > 0 && close > 0 {
		inc.cumulative += math.Log(close / inc.prevClose)
	}

	inc.prevClose = close
	return (math.Exp(inc.cumulative) - 1.0) * 100.0
}

func (inc *CompoundLogReturn) Reset() {
	inc.cumulative = 0
	inc.prevClose = math.NaN()
	inc.count = 0
}

// RollingReturn is the percent change across the whole window, oldest to
// newest. A zero starting price maps to 0.
type RollingReturn struct {
	window int
	closes *Window
}

func NewRollingReturn(window int) *RollingReturn {
	if window < 1 {
		panic("indicator: RollingReturn window must be at least 1")
	}
	return &RollingReturn{
		window: window,
		closes: NewWindow(window),
	}
}

func (inc *RollingReturn) Update(close float64) float64 {
	inc.closes.Push(close)

	if !inc.closes.Full() {
		return math.NaN()
	}

	start := inc.closes.First()
	if start == 0 {
		return 0.0
	}
	return (inc.closes.Last() - start) / start * 100.0
}

func (inc *RollingReturn) Reset() {
	inc.closes.Reset()
}
