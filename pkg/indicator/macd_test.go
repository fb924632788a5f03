package indicator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMACD(t *testing.T) {
	inc := NewMACD(3, 5, 3)

	// both EWMAs seed on the first sample, so the line starts at zero
	line, signal, histogram := inc.Update(10)
	assert.InDelta(t, 0.0, line, 1e-9)
	assert.InDelta(t, 0.0, signal, 1e-9)
	assert.InDelta(t, 0.0, histogram, 1e-9)

	// fast = 11.5, slow = 11, signal = 0.5*0.5 + 0.5*0 = 0.25
	line, signal, histogram = inc.Update(13)
	assert.InDelta(t, 0.5, line, 1e-9)
	assert.InDelta(t, 0.25, signal, 1e-9)
	assert.InDelta(t, 0.25, histogram, 1e-9)
}

func TestMACDReset(t *testing.T) {
	inc := NewMACD(3, 5, 3)
	inc.Update(10)
	inc.Update(13)
	inc.Reset()

	line, signal, histogram := inc.Update(10)
	assert.InDelta(t, 0.0, line, 1e-9)
	assert.InDelta(t, 0.0, signal, 1e-9)
	assert.InDelta(t, 0.0, histogram, 1e-9)
	assert.False(t, math.IsNaN(line))
}
