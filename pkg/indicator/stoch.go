package indicator

import "math"

// Stoch is the stochastic oscillator: %K positions the close inside the
// high/low range of the last kPeriod bars, %D smooths %K over dPeriod. A
// flat range yields the neutral %K of 50.
//
// Refer: https://www.investopedia.com/terms/s/stochasticoscillator.asp
type Stoch struct {
	kPeriod int
	dPeriod int

	highs *Window
	lows  *Window
	ks    *Window
}

func NewStoch(kPeriod, dPeriod int) *Stoch {
	if kPeriod < 1 || dPeriod < 1 {
		panic("indicator: Stoch periods must be at least 1")
	}
	return &Stoch{
		kPeriod: kPeriod,
		dPeriod: dPeriod,
		highs:   NewWindow(kPeriod),
		lows:    NewWindow(kPeriod),
		ks:      NewWindow(dPeriod),
	}
}

// Update consumes a bar and returns (percentK, percentD).
func (inc *Stoch) Update(high, low, close float64) (float64, float64) {
	inc.highs.Push(high)
	inc.lows.Push(low)

	if !inc.highs.Full() {
		return math.NaN(), math.NaN()
	}

	highest := inc.highs.Max()
	lowest := inc.lows.Min()

	k := 50.0
	if highest != lowest {
		k = 100.0 * (close - lowest) / (highest - lowest)
	}

	inc.ks.Push(k)

	d := math.NaN()
	if inc.ks.Full() {
		d = inc.ks.Mean()
	}

	return k, d
}

func (inc *Stoch) Reset() {
	inc.highs.Reset()
	inc.lows.Reset()
	inc.ks.Reset()
}
