package indicator

import "math"

// EWMA is the exponentially weighted moving average in its unadjusted form:
// the first sample seeds the value directly and every later sample applies
// current = alpha*x + (1-alpha)*current. State is a single scalar.
//
// NewEWMA derives alpha = 2/(window+1); NewEWMAWithAlpha takes alpha
// directly, which callers use for Wilder-style smoothing (alpha = 1/window).
type EWMA struct {
	alpha   float64
	current float64
}

func NewEWMA(window int) *EWMA {
	if window < 1 {
		panic("indicator: EWMA window must be at least 1")
	}
	return NewEWMAWithAlpha(2.0 / (float64(window) + 1.0))
}

func NewEWMAWithAlpha(alpha float64) *EWMA {
	if alpha <= 0 || alpha > 1 {
		panic("indicator: EWMA alpha must be in (0, 1]")
	}
	return &EWMA{
		alpha:   alpha,
		current: math.NaN(),
	}
}

func (inc *EWMA) Update(value float64) float64 {
	if math.IsNaN(inc.current) {
		inc.current = value
	} else {
		inc.current = inc.alpha*value + (1.0-inc.alpha)*inc.current
	}
	return inc.current
}

// Last returns the current smoothed value without consuming a sample.
func (inc *EWMA) Last() float64 {
	return inc.current
}

func (inc *EWMA) Reset() {
	inc.current = math.NaN()
}
