package indicator

import "math"

// PPO is the MACD line expressed as a percentage of the slow EWMA, with
// its own EWMA signal line. A zero slow average yields NaN.
//
// Refer: https://www.investopedia.com/terms/p/ppo.asp
type PPO struct {
	fast   *EWMA
	slow   *EWMA
	signal *EWMA
}

func NewPPO(fastWindow, slowWindow, signalWindow int) *PPO {
	return &PPO{
		fast:   NewEWMA(fastWindow),
		slow:   NewEWMA(slowWindow),
		signal: NewEWMA(signalWindow),
	}
}

// Update consumes a close price and returns (ppo, signal, histogram).
func (inc *PPO) Update(value float64) (float64, float64, float64) {
	fast := inc.fast.Update(value)
	slow := inc.slow.Update(value)

	if math.IsNaN(fast) || math.IsNaN(slow) || slow == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}

	line := (fast - slow) / slow * 100.0
	signal := inc.signal.Update(line)
	histogram := math.NaN()
	if !math.IsNaN(signal) {
		histogram = line - signal
	}

	return line, signal, histogram
}

func (inc *PPO) Reset() {
	inc.fast.Reset()
	inc.slow.Reset()
	inc.signal.Reset()
}
