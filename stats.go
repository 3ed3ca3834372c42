package scorechart

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Stats are derived from a series each time it is replaced.
type Stats struct {
	Min     float64
	Max     float64
	Average float64
	Count   int
}

// Domain returns the value domain covered by the series.
func (s Stats) Domain() Domain {
	return NumberDomain(s.Min, s.Max)
}

func computeStats(values []float64) (Stats, error) {
	if err := checkSeries(values); err != nil {
		return Stats{}, err
	}
	st := Stats{
		Min:     floats.Min(values),
		Max:     floats.Max(values),
		Average: Floor(floats.Sum(values) / float64(len(values))),
		Count:   len(values),
	}
	return st, nil
}

func checkSeries(values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("%w: empty series", ErrInvalidInput)
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: value at index %d is not finite (%v)", ErrInvalidInput, i, v)
		}
	}
	return nil
}

// Floor rounds v down to two decimals: 2.005 gives 2.0 and -1.001 gives -1.01.
func Floor(v float64) float64 {
	return math.Floor(v*100) / 100
}

// Truncate drops everything after the second decimal, rounding toward zero.
func Truncate(v float64) float64 {
	return math.Trunc(v*100) / 100
}
