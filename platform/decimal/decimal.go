// Package decimal rounds floats to a fixed number of decimal places.
package decimal

import "strconv"

// Round rounds x to places decimal digits. The exact binary value of x is
// rounded, halves to even, so 59.849999999999994 gives 59.8 and 20.25
// gives 20.2.
func Round(x float64, places int) float64 {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return v
}
