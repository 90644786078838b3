package conditions

// Weather is the current outdoor weather for a zipcode.
type Weather struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Forecast    string  `json:"forecast"`
	Zipcode     string  `json:"zipcode"`
	Timestamp   string  `json:"timestamp"`
}

// EnergyRates are the utility prices for a zipcode, in dollars per unit.
type EnergyRates struct {
	Electricity float64 `json:"electricity"`
	Gas         float64 `json:"gas"`
	Zipcode     string  `json:"zipcode"`
	Timestamp   string  `json:"timestamp"`
}
