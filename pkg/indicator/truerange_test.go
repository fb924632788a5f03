package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTR(t *testing.T) {
	inc := NewTR()

	// first bar has no previous close
	assert.InDelta(t, 2.0, inc.Update(10, 8, 9), 1e-9)

	// max(12-9, |12-9|, |9-9|) = 3
	assert.InDelta(t, 3.0, inc.Update(12, 9, 11), 1e-9)

	// gap down: |10-11| and |7-11| dominate the bar range
	assert.InDelta(t, 4.0, inc.Update(10, 7, 8), 1e-9)
}

func TestATRWarmup(t *testing.T) {
	inc := NewATR(3)

	assert.True(t, math.IsNaN(inc.Update(10, 8, 9)))
	assert.True(t, math.IsNaN(inc.Update(12, 9, 11)))

	// Wilder smoothing seeded from the first true range:
	// tr = [2, 3, 3] -> 2, then 2+(3-2)/3 = 7/3, then 7/3+(3-7/3)/3 = 23/9
	v := inc.Update(13, 10, 12)
	assert.InDelta(t, 23.0/9.0, v, 1e-9)
}

func TestATRFlatSeries(t *testing.T) {
	inc := NewATR(3)

	var last float64
	for i := 0; i < 10; i++ {
		last = inc.Update(5, 5, 5)
	}
	assert.InDelta(t, 0.0, last, 1e-9)
}
