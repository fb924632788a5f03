package ohlc

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var columnAliases = map[string]string{
	"open":   "open",
	"o":      "open",
	"high":   "high",
	"h":      "high",
	"low":    "low",
	"l":      "low",
	"close":  "close",
	"c":      "close",
	"volume": "volume",
	"vol":    "volume",
	"v":      "volume",
}

// ReadCSV loads bars from a CSV stream. The header row names the columns
// (case-insensitive, common aliases accepted); extra columns such as
// timestamps are skipped.
func ReadCSV(r io.Reader) (*Series, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read csv header")
	}

	fields := map[string]int{}
	for i, name := range header {
		if canonical, ok := columnAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
			fields[canonical] = i
		}
	}

	for _, required := range []string{"open", "high", "low", "close", "volume"} {
		if _, ok := fields[required]; !ok {
			return nil, errors.Errorf("csv header is missing the %s column", required)
		}
	}

	series := NewSeries(0)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read csv record at line %d", line+1)
		}
		line++

		var bar Bar
		for name, idx := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
			if err != nil {
				return nil, errors.Wrapf(err, "parse %s at line %d", name, line)
			}
			switch name {
			case "open":
				bar.Open = v
			case "high":
				bar.High = v
			case "low":
				bar.Low = v
			case "close":
				bar.Close = v
			case "volume":
				bar.Volume = v
			}
		}
		series.Append(bar)
	}

	return series, nil
}

// ReadCSVFile loads bars from a CSV file on disk.
func ReadCSVFile(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	return ReadCSV(f)
}
