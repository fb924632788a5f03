package cmd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/c2quant/taflow/pkg/ohlc"
)

func testSeries(n int) *ohlc.Series {
	series := ohlc.NewSeries(n)
	for i := 0; i < n; i++ {
		c := 100.0 + float64(i)
		series.Append(ohlc.Bar{
			Open:   c - 0.5,
			High:   c + 1.0,
			Low:    c - 1.0,
			Close:  c,
			Volume: 1000.0,
		})
	}
	return series
}

func TestPipelineConfigDecode(t *testing.T) {
	input := `
indicators:
  - name: sma
    window: 5
  - name: macd
    fast: 10
    slow: 20
    signal: 5
`
	var config PipelineConfig
	require.NoError(t, yaml.Unmarshal([]byte(input), &config))
	require.Len(t, config.Indicators, 2)

	assert.Equal(t, "sma", config.Indicators[0].Name)
	assert.Equal(t, 5, config.Indicators[0].Params.Window("window", 20))
	assert.Equal(t, 10, config.Indicators[1].Params.Window("fast", 12))

	// missing keys fall back to their defaults
	assert.Equal(t, 9, config.Indicators[0].Params.Window("signal", 9))
}

func TestRegistryComputeSMA(t *testing.T) {
	entry, err := lookup("sma")
	require.NoError(t, err)

	columns := entry.compute(testSeries(10), Params{"window": 3})
	require.Len(t, columns, 1)
	assert.Equal(t, "sma", columns[0].Name)
	assert.True(t, math.IsNaN(columns[0].Values[1]))
	assert.InDelta(t, 101.0, columns[0].Values[2], 1e-9)
}

func TestRegistryMultiOutput(t *testing.T) {
	entry, err := lookup("boll")
	require.NoError(t, err)

	columns := entry.compute(testSeries(30), nil)
	require.Len(t, columns, 3)
	assert.Equal(t, "boll_upper", columns[0].Name)
	assert.Equal(t, "boll_middle", columns[1].Name)
	assert.Equal(t, "boll_lower", columns[2].Name)
}

func TestRegistryUnknownIndicator(t *testing.T) {
	_, err := lookup("nope")
	assert.Error(t, err)
}

func TestRegistryCoversAllEntries(t *testing.T) {
	series := testSeries(120)

	// every registered indicator should run with its defaults
	for _, name := range indicatorNames() {
		columns := registry[name].compute(series, nil)
		require.NotEmpty(t, columns, name)
		for _, col := range columns {
			assert.Equal(t, series.Len(), len(col.Values), "%s column %s", name, col.Name)
		}
	}
}
