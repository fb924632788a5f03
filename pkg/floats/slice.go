package floats

import "math"

type Slice []float64

func New(a ...float64) Slice {
	return Slice(a)
}

func (s *Slice) Push(v float64) {
	*s = append(*s, v)
}

func (s Slice) Length() int {
	return len(s)
}

// Last returns the i-th value counting backwards from the newest element.
// Last(0) is the most recent value.
func (s Slice) Last(i int) float64 {
	length := len(s)
	if length == 0 || length-i-1 < 0 {
		return 0.0
	}
	return s[length-i-1]
}

func (s Slice) Sum() (sum float64) {
	for _, v := range s {
		sum += v
	}
	return sum
}

func (s Slice) Mean() (mean float64) {
	length := len(s)
	if length == 0 {
		return 0.0
	}
	return s.Sum() / float64(length)
}

func (s Slice) Max() float64 {
	m := math.Inf(-1)
	for _, v := range s {
		m = math.Max(m, v)
	}
	return m
}

func (s Slice) Min() float64 {
	m := math.Inf(1)
	for _, v := range s {
		m = math.Min(m, v)
	}
	return m
}

func (s Slice) Tail(size int) Slice {
	length := len(s)
	if length <= size {
		win := make(Slice, length)
		copy(win, s)
		return win
	}

	win := make(Slice, size)
	copy(win, s[length-size:])
	return win
}

func (s Slice) Truncate(size int) Slice {
	if size < 0 || len(s) <= size {
		return s
	}
	return s[len(s)-size:]
}

func (s Slice) Add(b Slice) (c Slice) {
	c = make(Slice, len(s))
	for i, v := range s {
		c[i] = v + b[i]
	}
	return c
}

func (s Slice) Sub(b Slice) (c Slice) {
	c = make(Slice, len(s))
	for i, v := range s {
		c[i] = v - b[i]
	}
	return c
}
