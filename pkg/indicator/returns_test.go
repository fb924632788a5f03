package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyReturn(t *testing.T) {
	inc := NewDailyReturn()

	assert.True(t, math.IsNaN(inc.Update(100)))
	assert.InDelta(t, 10.0, inc.Update(110), 1e-9)
	assert.InDelta(t, -10.0, inc.Update(99), 1e-9)
}

func TestDailyLogReturn(t *testing.T) {
	inc := NewDailyLogReturn()

	assert.True(t, math.IsNaN(inc.Update(100)))
	assert.InDelta(t, math.Log(1.1)*100.0, inc.Update(110), 1e-9)
}

func TestCumulativeReturn(t *testing.T) {
	inc := NewCumulativeReturn()

	assert.InDelta(t, 0.0, inc.Update(100), 1e-9)
	assert.InDelta(t, 50.0, inc.Update(150), 1e-9)
	assert.InDelta(t, -25.0, inc.Update(75), 1e-9)
}

func TestCompoundLogReturn(t *testing.T) {
	inc := NewCompoundLogReturn()

	assert.InDelta(t, 0.0, inc.Update(100), 1e-9)
	assert.InDelta(t, 10.0, inc.Update(110), 1e-9)
	assert.InDelta(t, 21.0, inc.Update(121), 1e-9)
}

func TestRollingReturn(t *testing.T) {
	inc := NewRollingReturn(3)

	assert.True(t, math.IsNaN(inc.Update(100)))
	assert.True(t, math.IsNaN(inc.Update(90)))
	assert.InDelta(t, 20.0, inc.Update(120), 1e-9)
}
