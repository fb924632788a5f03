package indicator

import "math"

// PVO applies the percentage-oscillator construction to volume instead of
// price.
//
// Refer: https://www.investopedia.com/terms/p/pvo.asp
type PVO struct {
	fast   *EWMA
	slow   *EWMA
	signal *EWMA
}

func NewPVO(fastWindow, slowWindow, signalWindow int) *PVO {
	return &PVO{
		fast:   NewEWMA(fastWindow),
		slow:   NewEWMA(slowWindow),
		signal: NewEWMA(signalWindow),
	}
}

// Update consumes a volume sample and returns (pvo, signal, histogram).
func (inc *PVO) Update(volume float64) (float64, float64, float64) {
	fast := inc.fast.Update(volume)
	slow := inc.slow.Update(volume)

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

func (inc *PVO) Reset() {
	inc.fast.Reset()
	inc.slow.Reset()
	inc.signal.Reset()
}
