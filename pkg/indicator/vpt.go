package indicator

import "math"

// VPT accumulates volume scaled by the close's percent change. The line
// starts at zero on the first bar; a zero previous close contributes
// nothing.
//
// Refer: https://www.investopedia.com/terms/v/vptindicator.asp
type VPT struct {
	line      float64
	prevClose float64
	count     int
}

func NewVPT() *VPT {
	return &VPT{prevClose: math.NaN()}
}

func (inc *VPT) Update(close, volume float64) float64 {
	inc.count++

	if inc.count == 1 {
		inc.line = 0
	} else if inc.prevClose != 0 {
		inc.line += volume * (close - inc.prevClose) / inc.prevClose
	}

	inc.prevClose = close
	return inc.line
}

func (inc *VPT) Reset() {
	inc.line = 0
	inc.prevClose = math.NaN()
	inc.count = 0
}
