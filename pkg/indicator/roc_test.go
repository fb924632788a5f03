package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestROC(t *testing.T) {
	inc := NewROC(3)

	assert.True(t, math.IsNaN(inc.Update(10)))
	assert.True(t, math.IsNaN(inc.Update(20)))
	assert.InDelta(t, 150.0, inc.Update(25), 1e-9)
	assert.InDelta(t, 50.0, inc.Update(30), 1e-9)
}

func TestROCZeroBase(t *testing.T) {
	inc := NewROC(3)
	inc.Update(0)
	inc.Update(5)
	assert.InDelta(t, 0.0, inc.Update(10), 1e-9)
}

func TestMomentum(t *testing.T) {
	inc := NewMomentum(3)

	assert.True(t, math.IsNaN(inc.Update(1)))
	assert.True(t, math.IsNaN(inc.Update(4)))
	assert.InDelta(t, 8.0, inc.Update(9), 1e-9)
	assert.InDelta(t, 12.0, inc.Update(16), 1e-9)
}
