package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/scorechart"
	"github.com/samber/lo"
)

type InputError struct {
	File   string
	Line   int
	Column int
	Value  string
}

func (e InputError) Error() string {
	return fmt.Sprintf("%s:%d: column %d: %q is not a number", e.File, e.Line, e.Column, e.Value)
}

func (e InputError) Unwrap() error {
	return scorechart.ErrInvalidInput
}

func readSeriesFile(file string, column int, header bool) ([]float64, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return readSeries(r, file, column, header)
}

func readSeries(r io.Reader, file string, column int, header bool) ([]float64, error) {
	if column < 0 {
		return nil, fmt.Errorf("%w: invalid column index %d", scorechart.ErrInvalidInput, column)
	}
	rs := csv.NewReader(r)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true

	rows, err := rs.ReadAll()
	if err != nil {
		return nil, err
	}
	skip := 0
	if header {
		skip = 1
	}
	var series []float64
	for i, row := range lo.Drop(rows, skip) {
		line := i + skip + 1
		if column >= len(row) {
			return nil, fmt.Errorf("%w: %s:%d: no column %d", scorechart.ErrInvalidInput, file, line, column)
		}
		str := strings.TrimSpace(row[column])
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return nil, InputError{
				File:   file,
				Line:   line,
				Column: column,
				Value:  str,
			}
		}
		series = append(series, v)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("%w: %s: no scores found", scorechart.ErrInvalidInput, file)
	}
	return series, nil
}

func getIdent(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}
