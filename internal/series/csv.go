package series

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// CSVHeader is the first row of every CSV export.
var CSVHeader = []string{"date", "value"}

// WriteCSV writes records as "date,value" rows under CSVHeader. Values keep
// one decimal, so 32 is written as 32.0.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write([]string{r.DateString(), strconv.FormatFloat(r.Value, 'f', 1, 64)}); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.DateString(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}
