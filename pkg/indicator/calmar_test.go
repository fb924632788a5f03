package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalmar(t *testing.T) {
	inc := NewCalmar(3)

	assert.True(t, math.IsNaN(inc.Update(100)))
	assert.True(t, math.IsNaN(inc.Update(90)))

	// total return 20% annualized by 252/3 against a 10% drawdown
	assert.InDelta(t, 168.0, inc.Update(120), 1e-9)
}

func TestCalmarZeroDrawdown(t *testing.T) {
	inc := NewCalmar(3)

	var last float64
	for i := 1; i <= 4; i++ {
		last = inc.Update(float64(100 + i))
	}
	assert.InDelta(t, 0.0, last, 1e-9)
}
