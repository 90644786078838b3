package series

import (
	"math"
	"math/rand/v2"
	"time"

	"home_energy_coach/platform/decimal"

	"gonum.org/v1/gonum/stat/distuv"
)

// DateLayout is the date format used in every sink.
const DateLayout = time.DateOnly

// pcgStream is the second PCG seed word; only the first comes from the caller.
const pcgStream = 0x9e3779b97f4a7c15

// Record is one day of the series.
type Record struct {
	Date  time.Time
	Value float64
}

// DateString returns the record date as YYYY-MM-DD.
func (r Record) DateString() string {
	return r.Date.Format(DateLayout)
}

// Generator draws a daily series. The same seed and year range always
// produce the same records.
type Generator struct {
	seed     uint64
	fromYear int
	toYear   int
}

// NewGenerator returns a generator over StartYear..EndYear.
func NewGenerator(seed uint64) *Generator {
	return &Generator{seed: seed, fromYear: StartYear, toYear: EndYear}
}

// WithYears narrows or widens the generated range, inclusive.
func (g *Generator) WithYears(from, to int) *Generator {
	g.fromYear, g.toYear = from, to
	return g
}

// Generate returns one record per calendar day, oldest first. Each value
// is drawn from the month's normal distribution shifted by the year's
// trend, clipped to the month's bounds and rounded to one decimal.
func (g *Generator) Generate() []Record {
	src := rand.NewPCG(g.seed, pcgStream)

	var records []Record
	for year := g.fromYear; year <= g.toYear; year++ {
		for month := time.January; month <= time.December; month++ {
			climate := Climate(month)
			dist := distuv.Normal{
				Mu:    climate.Mean + YearTrend(year),
				Sigma: climate.StdDev,
				Src:   src,
			}
			for day := 1; day <= daysIn(year, month); day++ {
				records = append(records, Record{
					Date:  time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
					Value: dailyValue(dist.Rand(), climate),
				})
			}
		}
	}
	return records
}

// dailyValue clips a raw draw to the month's bounds and rounds it to one
// decimal.
func dailyValue(raw float64, climate MonthClimate) float64 {
	return decimal.Round(clip(raw, climate.Min, climate.Max), 1)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func clip(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
