// Package domain holds the pure household energy model: the usage
// estimator, the recommendation rules and the temperature profile.
// Nothing in this package performs I/O once the tables are loaded.
package domain

import "home_energy_coach/platform/decimal"

// Category is an energy usage category.
type Category string

const (
	Heating     Category = "heating"
	Cooling     Category = "cooling"
	Lighting    Category = "lighting"
	Appliances  Category = "appliances"
	Electronics Category = "electronics"
)

// Categories lists every category in display order.
var Categories = []Category{Heating, Cooling, Lighting, Appliances, Electronics}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case Heating, Cooling, Lighting, Appliances, Electronics:
		return true
	}
	return false
}

// UsageEstimate is the estimated daily usage per category in kWh.
// Every category is always present.
type UsageEstimate struct {
	Heating     float64 `json:"heating"`
	Cooling     float64 `json:"cooling"`
	Lighting    float64 `json:"lighting"`
	Appliances  float64 `json:"appliances"`
	Electronics float64 `json:"electronics"`
}

// Get returns the value for c, or zero for an unknown category.
func (u UsageEstimate) Get(c Category) float64 {
	switch c {
	case Heating:
		return u.Heating
	case Cooling:
		return u.Cooling
	case Lighting:
		return u.Lighting
	case Appliances:
		return u.Appliances
	case Electronics:
		return u.Electronics
	}
	return 0
}

func (u *UsageEstimate) set(c Category, v float64) {
	switch c {
	case Heating:
		u.Heating = v
	case Cooling:
		u.Cooling = v
	case Lighting:
		u.Lighting = v
	case Appliances:
		u.Appliances = v
	case Electronics:
		u.Electronics = v
	}
}

// Values returns the category values in Categories order.
func (u UsageEstimate) Values() []float64 {
	values := make([]float64, len(Categories))
	for i, c := range Categories {
		values[i] = u.Get(c)
	}
	return values
}

// Total sums all categories left to right in Categories order.
func (u UsageEstimate) Total() float64 {
	total := 0.0
	for _, v := range u.Values() {
		total += v
	}
	return total
}

// Scale multiplies every category by factor and rounds to one decimal.
func (u UsageEstimate) Scale(factor float64) UsageEstimate {
	var out UsageEstimate
	for _, c := range Categories {
		out.set(c, Round1(u.Get(c)*factor))
	}
	return out
}

// Round1 rounds x to one decimal place. Exact halves go to even.
func Round1(x float64) float64 {
	return decimal.Round(x, 1)
}
