// Package series synthesizes a daily outdoor temperature series from a
// monthly climate table with a linear warming trend, and exports it to one
// or more sinks.
package series

import "time"

// Default range of generated years, inclusive.
const (
	StartYear = 2015
	EndYear   = 2025
)

// trendPerYear is the warming added per year after StartYear, in °F.
const trendPerYear = 0.5

// MonthClimate is the distribution of daily temperatures in one month.
// Samples are clipped to [Min, Max].
type MonthClimate struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// Clip bounds by season.
const (
	winterMin   = 10
	winterMax   = 60
	shoulderMin = 25
	shoulderMax = 85
	summerMin   = 50
	summerMax   = 100
)

// monthlyClimate is indexed by time.Month.
var monthlyClimate = [13]MonthClimate{
	time.January:   {Mean: 32, StdDev: 8, Min: winterMin, Max: winterMax},
	time.February:  {Mean: 35, StdDev: 7.5, Min: winterMin, Max: winterMax},
	time.March:     {Mean: 43, StdDev: 8, Min: shoulderMin, Max: shoulderMax},
	time.April:     {Mean: 53, StdDev: 7, Min: shoulderMin, Max: shoulderMax},
	time.May:       {Mean: 63, StdDev: 6, Min: summerMin, Max: summerMax},
	time.June:      {Mean: 72, StdDev: 5.5, Min: summerMin, Max: summerMax},
	time.July:      {Mean: 77, StdDev: 5, Min: summerMin, Max: summerMax},
	time.August:    {Mean: 76, StdDev: 5.5, Min: summerMin, Max: summerMax},
	time.September: {Mean: 68, StdDev: 6, Min: summerMin, Max: summerMax},
	time.October:   {Mean: 57, StdDev: 7, Min: shoulderMin, Max: shoulderMax},
	time.November:  {Mean: 47, StdDev: 7.5, Min: shoulderMin, Max: shoulderMax},
	time.December:  {Mean: 37, StdDev: 8, Min: winterMin, Max: winterMax},
}

// Climate returns the climate table entry for m.
func Climate(m time.Month) MonthClimate {
	return monthlyClimate[m]
}

// YearTrend returns the warming offset for year relative to StartYear.
func YearTrend(year int) float64 {
	return float64(year-StartYear) * trendPerYear
}
