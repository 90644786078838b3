// Package transport provides the request and response DTOs for the energy
// analysis endpoint.
package transport

import "home_energy_coach/internal/energy/domain"

// Required top-level request fields, in the order they are checked.
const (
	FieldZipcode      = "zipcode"
	FieldBuildingType = "building_type"
	FieldRooms        = "rooms"
)

// RequiredFields lists the keys that must be present in an analyze request.
var RequiredFields = []string{FieldZipcode, FieldBuildingType, FieldRooms}

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	Zipcode      string                    `json:"zipcode"`
	BuildingType string                    `json:"building_type" validate:"buildingtype"`
	Rooms        []domain.RoomDescriptor   `json:"rooms"`
	Windows      []domain.WindowDescriptor `json:"windows"`
	Habits       map[string]bool           `json:"habits"`
}

// HomeProfile converts the request into the domain model.
func (r AnalyzeRequest) HomeProfile() domain.HomeProfile {
	return domain.HomeProfile{
		Zipcode:      r.Zipcode,
		BuildingType: domain.BuildingType(r.BuildingType),
		Rooms:        r.Rooms,
		Windows:      r.Windows,
		Habits:       r.Habits,
	}
}

// AnalysisResponse is the result of a successful analysis.
type AnalysisResponse struct {
	Success            bool                      `json:"success"`
	CurrentUsage       domain.UsageEstimate      `json:"current_usage"`
	OptimizedUsage     domain.UsageEstimate      `json:"optimized_usage"`
	Recommendations    []domain.Recommendation   `json:"recommendations"`
	TemperatureProfile domain.TemperatureProfile `json:"temperature_profile"`
	PotentialSavings   float64                   `json:"potential_savings"`
	AnalysisTimestamp  string                    `json:"analysis_timestamp"`
}
