package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDPO(t *testing.T) {
	inc := NewDPO(4)

	// window 4 displaces by 3 bars
	assert.True(t, math.IsNaN(inc.Update(1)))
	assert.True(t, math.IsNaN(inc.Update(2)))
	assert.True(t, math.IsNaN(inc.Update(3)))

	// linear input keeps the displaced gap constant
	for v := 4; v <= 8; v++ {
		assert.InDelta(t, -0.5, inc.Update(float64(v)), 1e-9, "value %d", v)
	}
}
