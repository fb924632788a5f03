package indicator

import "math"

// NVI starts at 1000 and compounds the close's percent change only on
// bars whose volume fell from the previous bar.
//
// Refer: https://www.investopedia.com/terms/n/nvi.asp
type NVI struct {
	line       float64
	prevClose  float64
	prevVolume float64
	count      int
}

func NewNVI() *NVI {
	inc := &NVI{}
	inc.Reset()
	return inc
}

func (inc *NVI) Update(close, volume float64) float64 {
	inc.count++

	if inc.count == 1 {
		inc.line = 1000.0
	} else if volume < inc.prevVolume && inc.prevClose != 0 {
		inc.line *= 1.0 + (close-inc.prevClose)/inc.prevClose
	}

	inc.prevClose = close
	inc.prevVolume = volume

	return inc.line
}

func (inc *NVI) Reset() {
	inc.line = 1000.0
	inc.prevClose = math.NaN()
	inc.prevVolume = math.NaN()
	inc.count = 0
}
