package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSMA(t *testing.T) {
	inc := NewSMA(3)

	input := []float64{1, 2, 3, 4, 5}
	expected := []float64{math.NaN(), math.NaN(), 2, 3, 4}

	for i, v := range input {
		got := inc.Update(v)
		if math.IsNaN(expected[i]) {
			assert.True(t, math.IsNaN(got), "index %d", i)
		} else {
			assert.InDelta(t, expected[i], got, 1e-9, "index %d", i)
		}
	}
}

func TestSMAReset(t *testing.T) {
	inc := NewSMA(2)
	inc.Update(10)
	inc.Update(20)
	inc.Reset()

	assert.True(t, math.IsNaN(inc.Update(1)))
	assert.InDelta(t, 1.5, inc.Update(2), 1e-9)
}

func TestSMAInvalidWindow(t *testing.T) {
	assert.Panics(t, func() {
		NewSMA(0)
	})
}
