package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTSI(t *testing.T) {
	inc := NewTSI(3, 3)

	assert.True(t, math.IsNaN(inc.Update(10)))

	// pure gains keep the ratio pinned at 100
	assert.InDelta(t, 100.0, inc.Update(11), 1e-9)

	// momentum flips: smoothed momentum 0.5 against smoothed abs 1
	assert.InDelta(t, 50.0, inc.Update(10), 1e-9)
}
