package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKAMA(t *testing.T) {
	inc := NewKAMA(3, 2, 30)

	assert.True(t, math.IsNaN(inc.Update(1)))
	assert.True(t, math.IsNaN(inc.Update(2)))
	assert.True(t, math.IsNaN(inc.Update(3)))

	// the first defined output seeds with the raw price
	assert.InDelta(t, 4.0, inc.Update(4), 1e-9)

	// a perfect trend keeps the efficiency ratio at 1, so the smoothing
	// constant is the squared fast one: (2/3)^2
	assert.InDelta(t, 4.0+4.0/9.0, inc.Update(5), 1e-9)
}

func TestKAMAFlatSeries(t *testing.T) {
	inc := NewKAMA(3, 2, 30)

	var last float64
	for i := 0; i < 6; i++ {
		last = inc.Update(10)
	}
	assert.InDelta(t, 10.0, last, 1e-9)
}
