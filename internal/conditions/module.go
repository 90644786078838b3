// Package conditions serves the outdoor weather and utility rate lookups
// used by the browser client.
package conditions

import (
	apphttp "home_energy_coach/internal/http"
	"home_energy_coach/platform/logger"
)

// Module wires the weather and energy rate HTTP routes.
type Module struct {
	handler *Handler
}

func NewModule(log *logger.Logger) *Module {
	svc := NewService(log)
	h := NewHandler(svc)
	return &Module{handler: h}
}

func (m *Module) Name() string {
	return "conditions"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.GET("/weather/:zipcode", m.handler.GetWeather)
	ctx.API.GET("/energy-rates/:zipcode", m.handler.GetEnergyRates)
}

var _ apphttp.Module = (*Module)(nil)
