package indicator

import "math"

// OBV starts from the first bar's volume and adds or subtracts each later
// bar's volume by close direction; an unchanged close leaves the line as
// is.
//
// Refer: https://www.investopedia.com/terms/o/onbalancevolume.asp
type OBV struct {
	line      float64
	prevClose float64
	count     int
}

func NewOBV() *OBV {
	return &OBV{prevClose: math.NaN()}
}

func (inc *OBV) Update(close, volume float64) float64 {
	inc.count++

	if inc.count == 1 {
		inc.line = volume
	} else if close > inc.prevClose {
		inc.line += volume
	} else if close < inc.prevClose {
		inc.line -= volume
	}

	inc.prevClose = close
	return inc.line
}

func (inc *OBV) Reset() {
	inc.line = 0
	inc.prevClose = math.NaN()
	inc.count = 0
}
