package domain

// optimizedOffset is how many degrees below the current profile the
// optimized profile runs.
const optimizedOffset = 2

var (
	profileLabels  = [...]string{"6AM", "9AM", "12PM", "3PM", "6PM", "9PM", "12AM"}
	currentProfile = [...]float64{72, 74, 78, 80, 82, 79, 75}
)

// TemperatureProfile is an indoor temperature curve (°F) sampled at the
// label times. All three slices have the same length and are index aligned.
type TemperatureProfile struct {
	Current   []float64 `json:"current"`
	Optimized []float64 `json:"optimized"`
	Labels    []string  `json:"labels"`
}

// SynthesizeProfile returns the mocked daily temperature profile. The
// profile is the same for every home; the building type is not consulted.
func SynthesizeProfile(HomeProfile) TemperatureProfile {
	p := TemperatureProfile{
		Current:   make([]float64, len(currentProfile)),
		Optimized: make([]float64, len(currentProfile)),
		Labels:    make([]string, len(profileLabels)),
	}
	copy(p.Labels, profileLabels[:])
	for i, t := range currentProfile {
		p.Current[i] = t
		p.Optimized[i] = t - optimizedOffset
	}
	return p
}
