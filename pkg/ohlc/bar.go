// Package ohlc holds bar data in column form so indicator kernels can
// consume whole price arrays without per-bar conversion.
package ohlc

import (
	"github.com/pkg/errors"

	"github.com/c2quant/taflow/pkg/floats"
)

// Bar is a single OHLCV sample.
type Bar struct {
	Open   float64 `json:"open" yaml:"open"`
	High   float64 `json:"high" yaml:"high"`
	Low    float64 `json:"low" yaml:"low"`
	Close  float64 `json:"close" yaml:"close"`
	Volume float64 `json:"volume" yaml:"volume"`
}

// Series stores bars as parallel columns.
type Series struct {
	Open   floats.Slice
	High   floats.Slice
	Low    floats.Slice
	Close  floats.Slice
	Volume floats.Slice
}

// NewSeries preallocates columns for n bars.
func NewSeries(n int) *Series {
	return &Series{
		Open:   make(floats.Slice, 0, n),
		High:   make(floats.Slice, 0, n),
		Low:    make(floats.Slice, 0, n),
		Close:  make(floats.Slice, 0, n),
		Volume: make(floats.Slice, 0, n),
	}
}

// Append adds one bar to every column.
func (s *Series) Append(bar Bar) {
	s.Open = append(s.Open, bar.Open)
	s.High = append(s.High, bar.High)
	s.Low = append(s.Low, bar.Low)
	s.Close = append(s.Close, bar.Close)
	s.Volume = append(s.Volume, bar.Volume)
}

// Len reports the number of bars.
func (s *Series) Len() int {
	return len(s.Close)
}

// Bar reassembles the i-th bar from the columns.
func (s *Series) Bar(i int) Bar {
	return Bar{
		Open:   s.Open[i],
		High:   s.High[i],
		Low:    s.Low[i],
		Close:  s.Close[i],
		Volume: s.Volume[i],
	}
}

// Validate checks that every column carries the same number of samples.
func (s *Series) Validate() error {
	n := len(s.Close)
	if len(s.Open) != n || len(s.High) != n || len(s.Low) != n || len(s.Volume) != n {
		return errors.Errorf("column length mismatch: open=%d high=%d low=%d close=%d volume=%d",
			len(s.Open), len(s.High), len(s.Low), len(s.Close), len(s.Volume))
	}
	return nil
}
