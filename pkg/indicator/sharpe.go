package indicator

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Sharpe is the annualized risk-adjusted return over a rolling window of
// one-bar log returns. Volatility uses the sample standard deviation;
// zero volatility maps to 0. Bars with a non-positive close on either
// side are skipped and do not enter the window.
//
// Refer: https://www.investopedia.com/terms/s/sharperatio.asp
type Sharpe struct {
	window        int
	riskFreeRate  float64
	annualization float64

	prevClose float64
	returns   *Window
	count     int
}

func NewSharpe(window int, riskFreeRate, annualizationFactor float64) *Sharpe {
	if window < 1 {
		panic("indicator: Sharpe window must be at least 1")
	}
	return &Sharpe{
		window:        window,
		riskFreeRate:  riskFreeRate,
		annualization: annualizationFactor,
		prevClose:     math.NaN(),
		returns:       NewWindow(window),
	}
}

func (inc *Sharpe) Update(close float64) float64 {
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

	values := inc.returns.Values()
	avgReturn := stat.Mean(values, nil)
	annualizedReturn := avgReturn * inc.annualization
	volatility := stat.StdDev(values, nil) * math.Sqrt(inc.annualization)

	if volatility <= 0 {
		return 0.0
	}
	return (annualizedReturn - inc.riskFreeRate) / volatility
}

func (inc *Sharpe) Reset() {
	inc.prevClose = math.NaN()
	inc.returns.Reset()
	inc.count = 0
}
