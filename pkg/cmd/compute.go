package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/c2quant/taflow/pkg/ohlc"
)

// PipelineConfig is the yaml layout of a compute run: a list of
// indicators, each with its settings inline.
type PipelineConfig struct {
	Indicators []IndicatorConfig `yaml:"indicators"`
}

type IndicatorConfig struct {
	Name   string `yaml:"name"`
	Params Params `yaml:",inline"`
}

func init() {
	computeCmd.Flags().String("data", "", "OHLCV csv file")
	computeCmd.Flags().String("config", "", "pipeline yaml file")
	computeCmd.Flags().Int("tail", 10, "number of trailing rows to print")
	RootCmd.AddCommand(computeCmd)
}

var computeCmd = &cobra.Command{
	Use:   "compute",
	Short: "run an indicator pipeline over a csv of bars",

	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		dataFile, err := cmd.Flags().GetString("data")
		if err != nil {
			return err
		}
		if dataFile == "" {
			return errors.New("--data is required")
		}

		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		if configFile == "" {
			return errors.New("--config is required")
		}

		tail, err := cmd.Flags().GetInt("tail")
		if err != nil {
			return err
		}

		series, err := ohlc.ReadCSVFile(dataFile)
		if err != nil {
			return err
		}
		if err := series.Validate(); err != nil {
			return err
		}

		log.Infof("loaded %d bars from %s", series.Len(), dataFile)

		config, err := loadPipelineConfig(configFile)
		if err != nil {
			return err
		}

		var columns []Column
		for _, indicator := range config.Indicators {
			entry, err := lookup(indicator.Name)
			if err != nil {
				return err
			}

			log.Debugf("computing %s with params %v", indicator.Name, indicator.Params)
			columns = append(columns, entry.compute(series, indicator.Params)...)
		}

		renderColumns(series, columns, tail)
		return nil
	},
}

func loadPipelineConfig(path string) (*PipelineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	var config PipelineConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	if len(config.Indicators) == 0 {
		return nil, errors.Errorf("%s defines no indicators", path)
	}

	return &config, nil
}

func renderColumns(series *ohlc.Series, columns []Column, tail int) {
	n := series.Len()
	start := 0
	if tail > 0 && n > tail {
		start = n - tail
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	header := table.Row{"#", "close"}
	for _, col := range columns {
		header = append(header, col.Name)
	}
	t.AppendHeader(header)

	for i := start; i < n; i++ {
		row := table.Row{i, formatValue(series.Close[i])}
		for _, col := range columns {
			row = append(row, formatValue(col.Values[i]))
		}
		t.AppendRow(row)
	}

	t.Render()
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.4f", v)
}
