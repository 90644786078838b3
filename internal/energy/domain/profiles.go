package domain

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var defaultProfilesYAML []byte

// BuildingTypeProfile holds the thermal characteristics of a building type.
type BuildingTypeProfile struct {
	InsulationFactor float64 `yaml:"insulation_factor"`
	ThermalMass      float64 `yaml:"thermal_mass"`
}

// HabitRule scales the listed categories when its habit is enabled.
type HabitRule struct {
	Habit       string               `yaml:"habit"`
	Multipliers map[Category]float64 `yaml:"multipliers"`
}

// Tables are the read-only lookup tables behind the estimator. They are
// loaded once at startup and shared by pointer; nothing mutates them after
// ParseTables returns.
type Tables struct {
	BaseUsage     map[Category]float64                 `yaml:"base_usage"`
	BuildingTypes map[BuildingType]BuildingTypeProfile `yaml:"building_types"`
	Habits        []HabitRule                          `yaml:"habits"`
}

// DefaultTables returns the tables compiled into the binary.
func DefaultTables() (*Tables, error) {
	return ParseTables(defaultProfilesYAML)
}

// LoadTables reads tables from path, or the compiled-in defaults when path
// is empty.
func LoadTables(path string) (*Tables, error) {
	if path == "" {
		return DefaultTables()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles %s: %w", path, err)
	}
	return ParseTables(data)
}

// ParseTables decodes and validates YAML tables.
func ParseTables(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *Tables) validate() error {
	for _, c := range Categories {
		v, ok := t.BaseUsage[c]
		if !ok {
			return fmt.Errorf("profiles: base usage missing category %q", c)
		}
		if v < 0 {
			return fmt.Errorf("profiles: base usage for %q is negative", c)
		}
	}
	for c := range t.BaseUsage {
		if !c.Valid() {
			return fmt.Errorf("profiles: unknown base usage category %q", c)
		}
	}

	if len(t.BuildingTypes) == 0 {
		return fmt.Errorf("profiles: no building types defined")
	}
	for name, p := range t.BuildingTypes {
		if p.InsulationFactor <= 0 || p.InsulationFactor > 1 {
			return fmt.Errorf("profiles: %s insulation_factor %v outside (0,1]", name, p.InsulationFactor)
		}
		if p.ThermalMass <= 0 || p.ThermalMass > 1 {
			return fmt.Errorf("profiles: %s thermal_mass %v outside (0,1]", name, p.ThermalMass)
		}
	}

	seen := make(map[string]bool, len(t.Habits))
	for _, rule := range t.Habits {
		if rule.Habit == "" {
			return fmt.Errorf("profiles: habit rule without a name")
		}
		if seen[rule.Habit] {
			return fmt.Errorf("profiles: habit %q listed twice", rule.Habit)
		}
		seen[rule.Habit] = true
		for c, m := range rule.Multipliers {
			if !c.Valid() {
				return fmt.Errorf("profiles: habit %q scales unknown category %q", rule.Habit, c)
			}
			if m <= 0 {
				return fmt.Errorf("profiles: habit %q multiplier for %q must be positive", rule.Habit, c)
			}
		}
	}
	return nil
}

// BuildingType looks up a building type profile.
func (t *Tables) BuildingType(bt BuildingType) (BuildingTypeProfile, bool) {
	p, ok := t.BuildingTypes[bt]
	return p, ok
}

// BuildingTypeNames returns the known building types, sorted.
func (t *Tables) BuildingTypeNames() []string {
	names := make([]string, 0, len(t.BuildingTypes))
	for bt := range t.BuildingTypes {
		names = append(names, string(bt))
	}
	sort.Strings(names)
	return names
}
