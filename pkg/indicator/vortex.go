package indicator

import "math"

// Vortex accumulates upward and downward vortex movement over a rolling
// window and normalizes each by the window's true-range sum.
//
// Refer: https://www.investopedia.com/terms/v/vortex-indicator-vi.asp
type Vortex struct {
	window int

	vmPlus  *Window
	vmMinus *Window
	tr      *Window

	prevHigh  float64
	prevLow   float64
	prevClose float64
	count     int
}

func NewVortex(window int) *Vortex {
	if window < 1 {
		panic("indicator: Vortex window must be at least 1")
	}
	inc := &Vortex{
		window:  window,
		vmPlus:  NewWindow(window),
		vmMinus: NewWindow(window),
		tr:      NewWindow(window),
	}
	inc.Reset()
	return inc
}

// Update consumes a bar and returns (viPlus, viMinus).
func (inc *Vortex) Update(high, low, close float64) (float64, float64) {
	inc.count++

	if inc.count == 1 {
		inc.prevHigh = high
		inc.prevLow = low
		inc.prevClose = close
		return math.NaN(), math.NaN()
	}

	inc.vmPlus.Push(math.Abs(high - inc.prevLow))
	inc.vmMinus.Push(math.Abs(low - inc.prevHigh))
	inc.tr.Push(trueRange(high, low, inc.prevClose))

	inc.prevHigh = high
	inc.prevLow = low
	inc.prevClose = close

	if !inc.tr.Full() {
		return math.NaN(), math.NaN()
	}

	sumTR := inc.tr.Sum()
	if sumTR <= 0 {
		return math.NaN(), math.NaN()
	}

	return inc.vmPlus.Sum() / sumTR, inc.vmMinus.Sum() / sumTR
}

func (inc *Vortex) Reset() {
	inc.vmPlus.Reset()
	inc.vmMinus.Reset()
	inc.tr.Reset()
	inc.prevHigh = math.NaN()
	inc.prevLow = math.NaN()
	inc.prevClose = math.NaN()
	inc.count = 0
}
