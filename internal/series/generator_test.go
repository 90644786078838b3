package series

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCoversEveryDay(t *testing.T) {
	records := NewGenerator(2015).Generate()

	require.Len(t, records, 11*365+3)
	assert.Equal(t, "2015-01-01", records[0].DateString())
	assert.Equal(t, "2025-12-31", records[len(records)-1].DateString())

	type yearMonth struct {
		year  int
		month time.Month
	}
	counts := make(map[yearMonth]int)
	for i, r := range records {
		counts[yearMonth{r.Date.Year(), r.Date.Month()}]++
		if i > 0 {
			assert.Equal(t, records[i-1].Date.AddDate(0, 0, 1), r.Date)
		}
	}

	require.Len(t, counts, 11*12)
	for ym, n := range counts {
		want := time.Date(ym.year, ym.month+1, 0, 0, 0, 0, 0, time.UTC).Day()
		assert.Equal(t, want, n, "%d-%02d", ym.year, ym.month)
	}
	for _, leap := range []int{2016, 2020, 2024} {
		assert.Equal(t, 29, counts[yearMonth{leap, time.February}])
	}
	assert.Equal(t, 28, counts[yearMonth{2023, time.February}])
}

var oneDecimal = regexp.MustCompile(`^\d+(\.\d)?$`)

func TestGenerateStaysWithinClipBounds(t *testing.T) {
	for _, seed := range []uint64{1, 2015, 42} {
		for _, r := range NewGenerator(seed).Generate() {
			c := Climate(r.Date.Month())
			assert.GreaterOrEqual(t, r.Value, c.Min, r.DateString())
			assert.LessOrEqual(t, r.Value, c.Max, r.DateString())
			assert.Regexp(t, oneDecimal, strconv.FormatFloat(r.Value, 'f', -1, 64), r.DateString())
		}
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a := NewGenerator(7).WithYears(2020, 2020).Generate()
	b := NewGenerator(7).WithYears(2020, 2020).Generate()
	c := NewGenerator(8).WithYears(2020, 2020).Generate()

	require.Len(t, a, 366)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestWarmingTrendShowsInYearlyMeans(t *testing.T) {
	summaries := Summarize(NewGenerator(2015).Generate())

	require.Len(t, summaries, 11)
	assert.Equal(t, 2015, summaries[0].Year)
	assert.Equal(t, 365, summaries[0].Days)
	assert.Equal(t, 366, summaries[1].Days)
	assert.Equal(t, 2025, summaries[10].Year)
	assert.Greater(t, summaries[10].Mean, summaries[0].Mean)
	for _, s := range summaries {
		assert.LessOrEqual(t, s.Min, s.Mean)
		assert.GreaterOrEqual(t, s.Max, s.Mean)
	}
}

func TestDailyValueClipsThenRounds(t *testing.T) {
	march := Climate(time.March)

	assert.Equal(t, 59.8, dailyValue(59.849999999999994, march))
	assert.Equal(t, 46.5, dailyValue(46.55, march))
	assert.Equal(t, 30.2, dailyValue(30.25, march))
	assert.Equal(t, 25.0, dailyValue(-4, march))
	assert.Equal(t, 85.0, dailyValue(120.31, march))
}

func TestClimateTable(t *testing.T) {
	assert.Equal(t, MonthClimate{Mean: 32, StdDev: 8, Min: 10, Max: 60}, Climate(time.January))
	assert.Equal(t, MonthClimate{Mean: 53, StdDev: 7, Min: 25, Max: 85}, Climate(time.April))
	assert.Equal(t, MonthClimate{Mean: 77, StdDev: 5, Min: 50, Max: 100}, Climate(time.July))
	assert.Equal(t, MonthClimate{Mean: 37, StdDev: 8, Min: 10, Max: 60}, Climate(time.December))
	assert.Equal(t, 0.0, YearTrend(2015))
	assert.Equal(t, 5.0, YearTrend(2025))
}

func TestWriteCSV(t *testing.T) {
	records := []Record{
		{Date: time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC), Value: 32},
		{Date: time.Date(2015, 1, 2, 0, 0, 0, 0, time.UTC), Value: 28.4},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	assert.Equal(t, "date,value\n2015-01-01,32.0\n2015-01-02,28.4\n", buf.String())
}

func TestWriteCSVGeneratedRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, NewGenerator(3).WithYears(2024, 2024).Generate()))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 367)
	assert.Equal(t, "date,value", lines[0])
	row := regexp.MustCompile(`^2024-\d{2}-\d{2},\d{2,3}\.\d$`)
	for _, line := range lines[1:] {
		assert.Regexp(t, row, line)
	}
}
