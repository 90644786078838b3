package conditions

import (
	"context"
	"time"

	"home_energy_coach/platform/logger"
)

// Fixed readings served until a real weather and tariff provider is wired in.
const (
	mockTemperatureF   = 75
	mockHumidity       = 60
	mockForecast       = "sunny"
	mockElectricityKWh = 0.12
	mockGasTherm       = 0.08
)

// Service answers weather and rate lookups.
type Service struct {
	log *logger.Logger
	now func() time.Time
}

func NewService(log *logger.Logger) *Service {
	return &Service{
		log: log,
		now: time.Now,
	}
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// Weather returns the weather for zipcode. The zipcode is echoed back
// unchecked.
func (s *Service) Weather(ctx context.Context, zipcode string) Weather {
	s.log.WithContext(ctx).Debug("weather lookup", "zipcode", zipcode)
	return Weather{
		Temperature: mockTemperatureF,
		Humidity:    mockHumidity,
		Forecast:    mockForecast,
		Zipcode:     zipcode,
		Timestamp:   s.timestamp(),
	}
}

// EnergyRates returns the utility rates for zipcode.
func (s *Service) EnergyRates(ctx context.Context, zipcode string) EnergyRates {
	s.log.WithContext(ctx).Debug("energy rates lookup", "zipcode", zipcode)
	return EnergyRates{
		Electricity: mockElectricityKWh,
		Gas:         mockGasTherm,
		Zipcode:     zipcode,
		Timestamp:   s.timestamp(),
	}
}
