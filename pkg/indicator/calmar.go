package indicator

import "math"

// Calmar divides the annualized window return (scaled by 252/window bars)
// by the absolute maximum drawdown inside the window. A zero drawdown
// maps to 0.
//
// Refer: https://www.investopedia.com/terms/c/calmarratio.asp
type Calmar struct {
	window int
	closes *Window
}

func NewCalmar(window int) *Calmar {
	if window < 1 {
		panic("indicator: Calmar window must be at least 1")
	}
	return &Calmar{
		window: window,
		closes: NewWindow(window),
	}
}

func (inc *Calmar) Update(close float64) float64 {
	inc.closes.Push(close)

	if !inc.closes.Full() {
		return math.NaN()
	}

	n := inc.closes.Len()
	totalReturn := inc.closes.Last()/inc.closes.First() - 1.0
	annualReturn := totalReturn * (252.0 / float64(n))

	runningMax := inc.closes.At(0)
	maxDrawdown := 0.0
	for i := 1; i < n; i++ {
		price := inc.closes.At(i)
		if price > runningMax {
			runningMax = price
		}
		if dd := (price - runningMax) / runningMax; dd < maxDrawdown {
			maxDrawdown = dd
		}
	}
	maxDrawdown = math.Abs(maxDrawdown)

	if maxDrawdown == 0 {
		return 0.0
	}
	return annualReturn / maxDrawdown
}

func (inc *Calmar) Reset() {
	inc.closes.Reset()
}
