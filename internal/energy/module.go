// Package energy provides the home energy analysis bounded context.
// This file defines the module that wires its service and HTTP routes.
package energy

import (
	"home_energy_coach/internal/energy/domain"
	"home_energy_coach/internal/energy/handler"
	"home_energy_coach/internal/energy/service"
	apphttp "home_energy_coach/internal/http"
	"home_energy_coach/platform/logger"
	"home_energy_coach/platform/validator"
)

// Module is the energy analysis module.
type Module struct {
	service *service.Service
	handler *handler.Handler
}

// NewModule creates the analysis service over tables and its HTTP handler.
func NewModule(tables *domain.Tables, val *validator.Validator, log *logger.Logger) (*Module, error) {
	svc, err := service.New(tables, val, log)
	if err != nil {
		return nil, err
	}
	return &Module{
		service: svc,
		handler: handler.New(svc),
	}, nil
}

// Name returns the module name.
func (m *Module) Name() string {
	return "energy"
}

// Service returns the analysis service for use outside HTTP.
func (m *Module) Service() Analyzer {
	return m.service
}

// RegisterRoutes mounts POST /api/analyze.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.API)
}

var _ apphttp.Module = (*Module)(nil)
