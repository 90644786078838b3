package domain

import "fmt"

// Impact is the expected effect of a recommendation.
type Impact string

const (
	ImpactLow    Impact = "Low"
	ImpactMedium Impact = "Medium"
	ImpactHigh   Impact = "High"
)

// Cost is the rough price of acting on a recommendation.
type Cost string

const (
	CostFree   Cost = "Free"
	CostLow    Cost = "Low"
	CostMedium Cost = "Medium"
	CostHigh   Cost = "High"
)

// Recommendation is one savings suggestion shown to the user.
type Recommendation struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Impact           Impact `json:"impact"`
	Cost             Cost   `json:"cost"`
	EstimatedSavings string `json:"estimated_savings"`
}

// windowFilmThreshold is the exterior window count above which window film
// is suggested.
const windowFilmThreshold = 2

type recommendationRule struct {
	applies func(HomeProfile) bool
	build   func(HomeProfile) Recommendation
}

// Rules are evaluated in order; every rule that applies contributes one
// recommendation and none suppresses another.
var recommendationRules = []recommendationRule{
	{
		applies: func(h HomeProfile) bool { return h.BuildingType == Apartment },
		build: func(HomeProfile) Recommendation {
			return Recommendation{
				Title:            "Thermal Curtains for South-Facing Windows",
				Description:      "Install thermal curtains on your south-facing windows to reduce heat gain by up to 25% during summer months.",
				Impact:           ImpactHigh,
				Cost:             CostLow,
				EstimatedSavings: "15-25% cooling costs",
			}
		},
	},
	{
		applies: func(h HomeProfile) bool { return h.ExteriorWindowCount() > windowFilmThreshold },
		build: func(h HomeProfile) Recommendation {
			return Recommendation{
				Title:            "Window Film Installation",
				Description:      fmt.Sprintf("Your home has %d exterior windows. Low-E window film can reduce heat transfer by 30-50%%.", h.ExteriorWindowCount()),
				Impact:           ImpactMedium,
				Cost:             CostMedium,
				EstimatedSavings: "10-20% heating/cooling costs",
			}
		},
	},
	{
		applies: func(h HomeProfile) bool { return h.HasHabit(HabitACHigh) },
		build: func(HomeProfile) Recommendation {
			return Recommendation{
				Title:            "Smart AC Scheduling",
				Description:      "Instead of running AC on high after 6pm, try setting it to 78°F and using ceiling fans. This can save 20-30% on cooling costs.",
				Impact:           ImpactHigh,
				Cost:             CostFree,
				EstimatedSavings: "20-30% cooling costs",
			}
		},
	},
	{
		applies: func(h HomeProfile) bool { return h.HasHabit(HabitWorkFromHome) },
		build: func(HomeProfile) Recommendation {
			return Recommendation{
				Title:            "Zone Heating for Home Office",
				Description:      "Since you work from home, consider using a space heater in your work area instead of heating the entire home.",
				Impact:           ImpactMedium,
				Cost:             CostLow,
				EstimatedSavings: "15-25% heating costs",
			}
		},
	},
	{
		applies: func(HomeProfile) bool { return true },
		build: func(HomeProfile) Recommendation {
			return Recommendation{
				Title:            "Smart Thermostat Installation",
				Description:      "Consider installing a smart thermostat to automatically adjust temperature based on your schedule and preferences.",
				Impact:           ImpactHigh,
				Cost:             CostMedium,
				EstimatedSavings: "10-15% total energy costs",
			}
		},
	},
}

// Recommend returns the recommendations for home in display order. The
// smart thermostat suggestion is always last.
func Recommend(home HomeProfile) []Recommendation {
	out := make([]Recommendation, 0, len(recommendationRules))
	for _, rule := range recommendationRules {
		if rule.applies(home) {
			out = append(out, rule.build(home))
		}
	}
	return out
}
