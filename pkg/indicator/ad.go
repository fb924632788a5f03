package indicator

// AD is the accumulation/distribution line: the running sum of money flow
// volume, where the multiplier positions the close inside the bar's range.
// A zero-range bar contributes nothing.
//
// Refer: https://www.investopedia.com/terms/a/accumulationdistribution.asp
type AD struct {
	line float64
}

func NewAD() *AD {
	return &AD{}
}

func (inc *AD) Update(high, low, close, volume float64) float64 {
	var mfm float64
	if high != low {
		mfm = ((close - low) - (high - close)) / (high - low)
	}
	inc.line += mfm * volume
	return inc.line
}

func (inc *AD) Reset() {
	inc.line = 0
}
