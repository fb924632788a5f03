package indicator

import "math"

// Window is a fixed-capacity FIFO over float64 samples with an O(1) running
// sum. Once full, pushing a new sample evicts the oldest one. Min, max and
// index-of-extremum rescan the buffer, an O(W) bound accepted because W is
// small and fixed.
//
// NaN samples are tolerated: they occupy a slot but are excluded from the
// running sum and from Mean's divisor, so indicator series that begin with a
// warm-up NaN region can be smoothed without poisoning the aggregate.
type Window struct {
	raw  []float64
	head int
	size int
	sum  float64
	nans int
}

func NewWindow(capacity int) *Window {
	if capacity < 1 {
		panic("indicator: window capacity must be at least 1")
	}
	return &Window{raw: make([]float64, capacity)}
}

func (w *Window) Push(v float64) {
	if w.size < len(w.raw) {
		w.raw[w.size] = v
		w.size++
	} else {
		evicted := w.raw[w.head]
		if math.IsNaN(evicted) {
			w.nans--
		} else {
			w.sum -= evicted
		}
		w.raw[w.head] = v
		w.head = (w.head + 1) % len(w.raw)
	}

	if math.IsNaN(v) {
		w.nans++
	} else {
		w.sum += v
	}
}

func (w *Window) Len() int {
	return w.size
}

func (w *Window) Cap() int {
	return len(w.raw)
}

func (w *Window) Full() bool {
	return w.size == len(w.raw)
}

// At returns the i-th sample in arrival order; At(0) is the oldest.
func (w *Window) At(i int) float64 {
	return w.raw[(w.head+i)%len(w.raw)]
}

// First returns the oldest buffered sample.
func (w *Window) First() float64 {
	return w.At(0)
}

// Last returns the newest buffered sample.
func (w *Window) Last() float64 {
	return w.At(w.size - 1)
}

func (w *Window) Sum() float64 {
	return w.sum
}

// Mean averages the non-NaN samples currently buffered. It returns NaN when
// every slot is NaN or the window is empty.
func (w *Window) Mean() float64 {
	n := w.size - w.nans
	if n == 0 {
		return math.NaN()
	}
	return w.sum / float64(n)
}

func (w *Window) Max() float64 {
	m := math.Inf(-1)
	for i := 0; i < w.size; i++ {
		if v := w.At(i); !math.IsNaN(v) && v > m {
			m = v
		}
	}
	return m
}

func (w *Window) Min() float64 {
	m := math.Inf(1)
	for i := 0; i < w.size; i++ {
		if v := w.At(i); !math.IsNaN(v) && v < m {
			m = v
		}
	}
	return m
}

// MaxIndex returns the arrival-order index of the window maximum; ties break
// toward the most recent occurrence.
func (w *Window) MaxIndex() int {
	idx := -1
	m := math.Inf(-1)
	for i := 0; i < w.size; i++ {
		if v := w.At(i); !math.IsNaN(v) && v >= m {
			m = v
			idx = i
		}
	}
	return idx
}

// MinIndex returns the arrival-order index of the window minimum; ties break
// toward the most recent occurrence.
func (w *Window) MinIndex() int {
	idx := -1
	m := math.Inf(1)
	for i := 0; i < w.size; i++ {
		if v := w.At(i); !math.IsNaN(v) && v <= m {
			m = v
			idx = i
		}
	}
	return idx
}

// Values copies the buffered samples out in arrival order.
func (w *Window) Values() []float64 {
	out := make([]float64, w.size)
	for i := 0; i < w.size; i++ {
		out[i] = w.At(i)
	}
	return out
}

func (w *Window) Reset() {
	w.head = 0
	w.size = 0
	w.sum = 0
	w.nans = 0
}
