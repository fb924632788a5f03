package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCCI(t *testing.T) {
	inc := NewCCI(3, 0.015)

	assert.True(t, math.IsNaN(inc.Update(10, 8, 9)))
	assert.True(t, math.IsNaN(inc.Update(11, 9, 10)))

	// typical prices 9, 10, 11: mean 10, mean deviation 2/3
	assert.InDelta(t, 100.0, inc.Update(12, 10, 11), 1e-9)
}

func TestCCIFlatSeries(t *testing.T) {
	inc := NewCCI(3, 0.015)

	var last float64
	for i := 0; i < 5; i++ {
		last = inc.Update(5, 5, 5)
	}
	assert.InDelta(t, 0.0, last, 1e-9)
}
