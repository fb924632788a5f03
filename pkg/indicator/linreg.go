package indicator

import "math"

// LinRegSlope fits an ordinary least-squares line over the window with
// x = 0..window-1 and reports its slope. The x-axis sums are fixed by the
// window size, so only the y sums are recomputed per update.
type LinRegSlope struct {
	window int
	sumX   float64
	denom  float64
	buf    *Window
}

func NewLinRegSlope(window int) *LinRegSlope {
	if window < 1 {
		panic("indicator: LinRegSlope window must be at least 1")
	}
	w := float64(window)
	sumX := w * (w - 1.0) / 2.0
	sumX2 := w * (w - 1.0) * (2.0*w - 1.0) / 6.0
	return &LinRegSlope{
		window: window,
		sumX:   sumX,
		denom:  w*sumX2 - sumX*sumX,
		buf:    NewWindow(window),
	}
}

func (inc *LinRegSlope) Update(value float64) float64 {
	inc.buf.Push(value)

	if !inc.buf.Full() || inc.denom == 0 {
		return math.NaN()
	}

	var sumY, sumXY float64
	for i := 0; i < inc.window; i++ {
		y := inc.buf.At(i)
		sumY += y
		sumXY += float64(i) * y
	}

	return (float64(inc.window)*sumXY - inc.sumX*sumY) / inc.denom
}

func (inc *LinRegSlope) Reset() {
	inc.buf.Reset()
}
