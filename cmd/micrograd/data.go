package main

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// loadCSV reads one sample per row: the input features followed by the target.
//
// CSV Format:
//
//	2.0,3.0,-1.0,1.0
//	3.0,-1.0,0.5,-1.0
//
// Every row must have the same number of columns, at least two. Lines
// starting with '#' are skipped.
func loadCSV(filename string) (xs [][]float64, ys []float64, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open dataset")
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read CSV")
	}
	if len(records) == 0 {
		return nil, nil, errors.Errorf("%s: no samples", filename)
	}

	width := len(records[0])
	if width < 2 {
		return nil, nil, errors.Errorf("%s: need at least one feature and a target, got %d columns", filename, width)
	}

	xs = make([][]float64, len(records))
	ys = make([]float64, len(records))
	for i, record := range records {
		row := make([]float64, width)
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "row %d column %d", i+1, j+1)
			}
			row[j] = v
		}
		xs[i] = row[:width-1]
		ys[i] = row[width-1]
	}
	return xs, ys, nil
}
