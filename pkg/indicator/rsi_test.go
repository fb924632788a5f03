package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRSI(t *testing.T) {
	inc := NewRSI(3)

	assert.True(t, math.IsNaN(inc.Update(10)))
	assert.True(t, math.IsNaN(inc.Update(11)))

	// seeded from the first gain/loss pair, all gains so far
	assert.InDelta(t, 100.0, inc.Update(12), 1e-9)

	// avgGain = 2/3, avgLoss = 1/3, rs = 2
	assert.InDelta(t, 100.0*2.0/3.0, inc.Update(11), 1e-9)

	// avgGain = 10/9, avgLoss = 2/9, rs = 5
	assert.InDelta(t, 100.0*5.0/6.0, inc.Update(13), 1e-9)
}

func TestRSIMonotonicRally(t *testing.T) {
	inc := NewRSI(14)

	var last float64
	for i := 1; i <= 15; i++ {
		last = inc.Update(float64(100 + i))
	}
	assert.InDelta(t, 100.0, last, 1e-9)
}

func TestRSIReset(t *testing.T) {
	inc := NewRSI(3)
	inc.Update(10)
	inc.Update(12)
	inc.Reset()

	assert.True(t, math.IsNaN(inc.Update(10)))
	assert.True(t, math.IsNaN(inc.Update(11)))
	assert.InDelta(t, 100.0, inc.Update(12), 1e-9)
}
