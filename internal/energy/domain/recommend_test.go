package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(recs []Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func TestRecommendApartmentExample(t *testing.T) {
	recs := Recommend(HomeProfile{
		BuildingType: Apartment,
		Rooms:        rooms(2),
		Windows:      windows(3, 0),
		Habits:       map[string]bool{HabitACHigh: true},
	})

	assert.Equal(t, []string{
		"Thermal Curtains for South-Facing Windows",
		"Window Film Installation",
		"Smart AC Scheduling",
		"Smart Thermostat Installation",
	}, titles(recs))
	assert.Equal(t, "Your home has 3 exterior windows. Low-E window film can reduce heat transfer by 30-50%.", recs[1].Description)
}

func TestRecommendOnlyThermostatWhenNothingTriggers(t *testing.T) {
	recs := Recommend(HomeProfile{BuildingType: House, Windows: windows(2, 5)})

	require.Len(t, recs, 1)
	assert.Equal(t, Recommendation{
		Title:            "Smart Thermostat Installation",
		Description:      "Consider installing a smart thermostat to automatically adjust temperature based on your schedule and preferences.",
		Impact:           ImpactHigh,
		Cost:             CostMedium,
		EstimatedSavings: "10-15% total energy costs",
	}, recs[0])
}

func TestRecommendAllRulesInOrder(t *testing.T) {
	recs := Recommend(HomeProfile{
		BuildingType: Apartment,
		Windows:      windows(4, 0),
		Habits: map[string]bool{
			HabitWorkFromHome: true,
			HabitACHigh:       true,
			HabitWindowsOpen:  true,
		},
	})

	require.Len(t, recs, 5)
	assert.Equal(t, []string{
		"Thermal Curtains for South-Facing Windows",
		"Window Film Installation",
		"Smart AC Scheduling",
		"Zone Heating for Home Office",
		"Smart Thermostat Installation",
	}, titles(recs))

	assert.Equal(t, ImpactHigh, recs[0].Impact)
	assert.Equal(t, CostLow, recs[0].Cost)
	assert.Equal(t, "15-25% cooling costs", recs[0].EstimatedSavings)
	assert.Equal(t, ImpactMedium, recs[1].Impact)
	assert.Equal(t, CostMedium, recs[1].Cost)
	assert.Equal(t, "10-20% heating/cooling costs", recs[1].EstimatedSavings)
	assert.Equal(t, ImpactHigh, recs[2].Impact)
	assert.Equal(t, CostFree, recs[2].Cost)
	assert.Equal(t, "20-30% cooling costs", recs[2].EstimatedSavings)
	assert.Equal(t, ImpactMedium, recs[3].Impact)
	assert.Equal(t, CostLow, recs[3].Cost)
	assert.Equal(t, "15-25% heating costs", recs[3].EstimatedSavings)
}

func TestRecommendWindowFilmNeedsMoreThanTwoExterior(t *testing.T) {
	assert.NotContains(t, titles(Recommend(HomeProfile{BuildingType: Loft, Windows: windows(2, 3)})), "Window Film Installation")

	recs := Recommend(HomeProfile{BuildingType: Loft, Windows: windows(5, 0)})
	require.Len(t, recs, 2)
	assert.Contains(t, recs[0].Description, "5 exterior windows")
}

func TestRecommendZoneHeatingWithoutApartment(t *testing.T) {
	recs := Recommend(HomeProfile{BuildingType: House, Habits: map[string]bool{HabitWorkFromHome: true}})

	assert.Equal(t, []string{"Zone Heating for Home Office", "Smart Thermostat Installation"}, titles(recs))
}
