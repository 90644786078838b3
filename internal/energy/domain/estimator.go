package domain

import (
	"fmt"

	"home_energy_coach/platform/apperr"
)

const (
	roomFactorBase      = 0.9
	roomFactorPerRoom   = 0.1
	windowFactorPerPane = 0.15
)

// Estimator turns a home description into a daily usage estimate.
type Estimator struct {
	tables *Tables
}

// NewEstimator creates an estimator over the given tables.
func NewEstimator(tables *Tables) *Estimator {
	return &Estimator{tables: tables}
}

// Estimate computes per-category kWh/day for home.
//
// Heating and cooling are scaled by the building's insulation factor, a
// room factor and an exterior window factor. Every category is then scaled
// by the multipliers of each enabled habit, in table order. A home without
// a building type is treated as an apartment; a building type missing from
// the table is a configuration error.
func (e *Estimator) Estimate(home HomeProfile) (UsageEstimate, error) {
	bt := home.BuildingType
	if bt == "" {
		bt = DefaultBuildingType
	}
	profile, ok := e.tables.BuildingType(bt)
	if !ok {
		return UsageEstimate{}, apperr.Configuration(fmt.Sprintf("unknown building type: %s", bt)).WithOp("estimate")
	}

	// float64 conversions keep each product rounded on its own, so the
	// compiler never fuses them into an FMA and results match on every arch.
	roomFactor := float64(float64(len(home.Rooms))*roomFactorPerRoom) + roomFactorBase
	windowFactor := 1 + float64(float64(home.ExteriorWindowCount())*windowFactorPerPane)
	envelope := profile.InsulationFactor * roomFactor * windowFactor

	var usage UsageEstimate
	for _, c := range Categories {
		adjustment := 1.0
		if c == Heating || c == Cooling {
			adjustment *= envelope
		}
		for _, rule := range e.tables.Habits {
			if !home.HasHabit(rule.Habit) {
				continue
			}
			if m, ok := rule.Multipliers[c]; ok {
				adjustment *= m
			}
		}
		usage.set(c, Round1(e.tables.BaseUsage[c]*adjustment))
	}
	return usage, nil
}
