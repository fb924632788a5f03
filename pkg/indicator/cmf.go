package indicator

import "math"

// CMF averages money flow volume against raw volume over a rolling
// window. A zero volume sum maps to 0.
//
// Refer: https://www.investopedia.com/terms/c/chaikinmoneyflow.asp
type CMF struct {
	window  int
	mfv     *Window
	volumes *Window
}

func NewCMF(window int) *CMF {
	if window < 1 {
		panic("indicator: CMF window must be at least 1")
	}
	return &CMF{
		window:  window,
		mfv:     NewWindow(window),
		volumes: NewWindow(window),
	}
}

func (inc *CMF) Update(high, low, close, volume float64) float64 {
	var mfm float64
	if high != low {
		mfm = ((close - low) - (high - close)) / (high - low)
	}

	inc.mfv.Push(mfm * volume)
	inc.volumes.Push(volume)

	if !inc.mfv.Full() {
		return math.NaN()
	}

	sumVolume := inc.volumes.Sum()
	if sumVolume == 0 {
		return 0.0
	}
	return inc.mfv.Sum() / sumVolume
}

func (inc *CMF) Reset() {
	inc.mfv.Reset()
	inc.volumes.Reset()
}
