package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoch(t *testing.T) {
	inc := NewStoch(3, 2)

	k, d := inc.Update(10, 8, 9)
	assert.True(t, math.IsNaN(k))
	assert.True(t, math.IsNaN(d))

	k, d = inc.Update(11, 9, 10)
	assert.True(t, math.IsNaN(k))
	assert.True(t, math.IsNaN(d))

	k, d = inc.Update(12, 10, 11)
	assert.InDelta(t, 75.0, k, 1e-9)
	assert.True(t, math.IsNaN(d))

	k, d = inc.Update(12, 10, 11)
	assert.InDelta(t, 200.0/3.0, k, 1e-9)
	assert.InDelta(t, (75.0+200.0/3.0)/2.0, d, 1e-9)
}

func TestStochFlatRange(t *testing.T) {
	inc := NewStoch(3, 2)

	var k, d float64
	for i := 0; i < 4; i++ {
		k, d = inc.Update(5, 5, 5)
	}
	assert.InDelta(t, 50.0, k, 1e-9)
	assert.InDelta(t, 50.0, d, 1e-9)
}
