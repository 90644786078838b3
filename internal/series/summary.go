package series

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// YearSummary describes one year of a generated series.
type YearSummary struct {
	Year int
	Days int
	Mean float64
	Min  float64
	Max  float64
}

// Summarize groups records by year, in the order the years first appear.
func Summarize(records []Record) []YearSummary {
	var (
		out    []YearSummary
		values []float64
	)
	flush := func(year int) {
		if len(values) == 0 {
			return
		}
		out = append(out, YearSummary{
			Year: year,
			Days: len(values),
			Mean: stat.Mean(values, nil),
			Min:  floats.Min(values),
			Max:  floats.Max(values),
		})
		values = values[:0]
	}

	year := 0
	for _, r := range records {
		if y := r.Date.Year(); y != year {
			flush(year)
			year = y
		}
		values = append(values, r.Value)
	}
	flush(year)
	return out
}
