package indicator

import "math"

// MACD tracks the convergence and divergence of a fast and a slow EWMA.
// The signal line smooths the MACD line itself and is only fed once the
// line is defined, so its seed is the first real MACD value.
//
// Refer: https://www.investopedia.com/terms/m/macd.asp
type MACD struct {
	fast   *EWMA
	slow   *EWMA
	signal *EWMA
}

func NewMACD(fastWindow, slowWindow, signalWindow int) *MACD {
	return &MACD{
		fast:   NewEWMA(fastWindow),
		slow:   NewEWMA(slowWindow),
		signal: NewEWMA(signalWindow),
	}
}

// Update consumes a close price and returns (line, signal, histogram).
func (inc *MACD) Update(value float64) (float64, float64, float64) {
	fast := inc.fast.Update(value)
	slow := inc.slow.Update(value)

	if math.IsNaN(fast) || math.IsNaN(slow) {
		return math.NaN(), math.NaN(), math.NaN()
	}

	line := fast - slow
	signal := inc.signal.Update(line)
	histogram := math.NaN()
	if !math.IsNaN(signal) {
		histogram = line - signal
	}

	return line, signal, histogram
}

func (inc *MACD) Reset() {
	inc.fast.Reset()
	inc.slow.Reset()
	inc.signal.Reset()
}
