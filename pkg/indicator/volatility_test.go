package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolatility(t *testing.T) {
	inc := NewVolatility(3, false)

	assert.True(t, math.IsNaN(inc.Update(100)))
	assert.True(t, math.IsNaN(inc.Update(110)))
	assert.True(t, math.IsNaN(inc.Update(100)))

	// log returns [a, -a, a] with a = ln(1.1); sample std = 2a/sqrt(3)
	a := math.Log(1.1)
	assert.InDelta(t, 2.0*a/math.Sqrt(3.0)*100.0, inc.Update(110), 1e-9)
}

func TestVolatilityFlatSeries(t *testing.T) {
	inc := NewVolatility(3, true)

	var last float64
	for i := 0; i < 6; i++ {
		last = inc.Update(100)
	}
	assert.InDelta(t, 0.0, last, 1e-9)
}
