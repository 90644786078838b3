package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTables(t *testing.T) {
	tables := mustTables(t)

	assert.Equal(t, map[Category]float64{
		Heating: 45, Cooling: 38, Lighting: 12, Appliances: 18, Electronics: 8,
	}, tables.BaseUsage)
	assert.Equal(t, BuildingTypeProfile{InsulationFactor: 0.7, ThermalMass: 0.8}, tables.BuildingTypes[Apartment])
	assert.Equal(t, BuildingTypeProfile{InsulationFactor: 0.9, ThermalMass: 1.0}, tables.BuildingTypes[House])
	assert.Equal(t, BuildingTypeProfile{InsulationFactor: 0.6, ThermalMass: 0.6}, tables.BuildingTypes[Studio])
	assert.Equal(t, BuildingTypeProfile{InsulationFactor: 0.5, ThermalMass: 0.7}, tables.BuildingTypes[Loft])
	assert.Equal(t, []string{"apartment", "house", "loft", "studio"}, tables.BuildingTypeNames())

	require.Len(t, tables.Habits, 4)
	assert.Equal(t, HabitWorkFromHome, tables.Habits[0].Habit)
	assert.Equal(t, map[Category]float64{Heating: 1.2, Cooling: 1.1, Lighting: 1.3}, tables.Habits[0].Multipliers)
	assert.Equal(t, map[Category]float64{Heating: 0.8, Cooling: 0.9}, tables.Habits[1].Multipliers)
	assert.Equal(t, map[Category]float64{Cooling: 1.4}, tables.Habits[2].Multipliers)
	assert.Equal(t, map[Category]float64{Appliances: 1.3, Cooling: 1.1}, tables.Habits[3].Multipliers)
}

const validBase = `
base_usage: {heating: 45, cooling: 38, lighting: 12, appliances: 18, electronics: 8}
`

func TestParseTablesRejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"missing category": `
base_usage: {heating: 45, cooling: 38}
building_types: {house: {insulation_factor: 0.9, thermal_mass: 1.0}}
`,
		"no building types": validBase,
		"insulation out of range": validBase + `
building_types: {house: {insulation_factor: 1.5, thermal_mass: 1.0}}
`,
		"zero thermal mass": validBase + `
building_types: {house: {insulation_factor: 0.5, thermal_mass: 0}}
`,
		"unknown habit category": validBase + `
building_types: {house: {insulation_factor: 0.9, thermal_mass: 1.0}}
habits: [{habit: sauna, multipliers: {sauna_heat: 2}}]
`,
		"duplicate habit": validBase + `
building_types: {house: {insulation_factor: 0.9, thermal_mass: 1.0}}
habits: [{habit: ac_high, multipliers: {cooling: 1.4}}, {habit: ac_high, multipliers: {cooling: 1.2}}]
`,
		"not yaml": "base_usage: [",
	}

	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTables([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadTablesOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	doc := validBase + `
building_types:
  cabin: {insulation_factor: 0.4, thermal_mass: 0.9}
habits:
  - habit: ac_high
    multipliers: {cooling: 2}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	tables, err := LoadTables(path)
	require.NoError(t, err)

	_, ok := tables.BuildingType("cabin")
	assert.True(t, ok)
	_, ok = tables.BuildingType(Apartment)
	assert.False(t, ok)

	usage, err := NewEstimator(tables).Estimate(HomeProfile{BuildingType: "cabin", Habits: map[string]bool{HabitACHigh: true}})
	require.NoError(t, err)
	assert.Equal(t, Round1(38*(0.4*0.9*1)*2), usage.Cooling)
}

func TestLoadTablesMissingFile(t *testing.T) {
	_, err := LoadTables(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadTablesEmptyPathUsesDefaults(t *testing.T) {
	tables, err := LoadTables("")
	require.NoError(t, err)
	assert.Len(t, tables.BuildingTypes, 4)
}
