package domain

import (
	"bytes"
	"encoding/json"
)

// BuildingType identifies an entry in the building-type table.
type BuildingType string

const (
	Apartment BuildingType = "apartment"
	House     BuildingType = "house"
	Studio    BuildingType = "studio"
	Loft      BuildingType = "loft"
)

// DefaultBuildingType is used when a home carries no building type at all.
const DefaultBuildingType = Apartment

// OrientationExterior marks a window on an outside wall.
const OrientationExterior = "exterior"

// Habit names understood by the habit table and the recommendation rules.
const (
	HabitWorkFromHome    = "work_from_home"
	HabitWindowsOpen     = "windows_open"
	HabitACHigh          = "ac_high"
	HabitCookingFrequent = "cooking_frequent"
)

// RoomDescriptor is a room drawn on the floor plan. Only the number of
// rooms matters to the model; the JSON value is kept verbatim.
type RoomDescriptor struct {
	raw json.RawMessage
}

// NewRoomDescriptor wraps a raw JSON value.
func NewRoomDescriptor(raw json.RawMessage) RoomDescriptor {
	return RoomDescriptor{raw: append(json.RawMessage(nil), raw...)}
}

// UnmarshalJSON keeps a copy of the raw value.
func (r *RoomDescriptor) UnmarshalJSON(data []byte) error {
	r.raw = append(r.raw[:0], data...)
	return nil
}

// MarshalJSON writes the raw value back unchanged.
func (r RoomDescriptor) MarshalJSON() ([]byte, error) {
	if len(bytes.TrimSpace(r.raw)) == 0 {
		return []byte("null"), nil
	}
	return r.raw, nil
}

// WindowDescriptor is a window drawn on the floor plan.
type WindowDescriptor struct {
	Orientation string   `json:"orientation"`
	X           *float64 `json:"x,omitempty"`
	Y           *float64 `json:"y,omitempty"`
	W           *float64 `json:"w,omitempty"`
	H           *float64 `json:"h,omitempty"`
}

// IsExterior reports whether the window sits on an outside wall.
func (w WindowDescriptor) IsExterior() bool {
	return w.Orientation == OrientationExterior
}

// HomeProfile describes one household for a single analysis.
type HomeProfile struct {
	Zipcode      string
	BuildingType BuildingType
	Rooms        []RoomDescriptor
	Windows      []WindowDescriptor
	Habits       map[string]bool
}

// ExteriorWindowCount counts windows on outside walls.
func (h HomeProfile) ExteriorWindowCount() int {
	count := 0
	for _, w := range h.Windows {
		if w.IsExterior() {
			count++
		}
	}
	return count
}

// HasHabit reports whether the named habit is set to true.
func (h HomeProfile) HasHabit(name string) bool {
	return h.Habits[name]
}
