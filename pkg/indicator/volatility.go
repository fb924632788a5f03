package indicator

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Volatility is the rolling sample standard deviation of one-bar log
// returns in percent, optionally annualized by sqrt(252). Bars with a
// non-positive close on either side are skipped.
type Volatility struct {
	window    int
	annualize bool

	prevClose float64
	returns   *Window
	count     int
}

func NewVolatility(window int, annualize bool) *Volatility {
	if window < 1 {
		panic("indicator: Volatility window must be at least 1")
	}
	return &Volatility{
		window:    window,
		annualize: annualize,
		prevClose: math.NaN(),
		returns:   NewWindow(window),
	}
}

func (inc *Volatility) Update(close float64) float64 {
	inc.count++

	if inc.count == 1 {
		inc.prevClose = close
		return math.NaN()
	}

	if inc.prevClose > 0 && close > 0 {
		inc.returns.Push(math.Log(close / inc.prevClose))
	}
	inc.prevClose = close

	if !inc.returns.Full() {
		return math.NaN()
	}

	vol := stat.StdDev(inc.returns.Values(), nil)
	if inc.annualize {
		vol *= math.Sqrt(252.0)
	}
	return vol * 100.0
}

func (inc *Volatility) Reset() {
	inc.prevClose = math.NaN()
	inc.returns.Reset()
	inc.count = 0
}
