package conditions

import (
	"home_energy_coach/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler exposes the weather and energy rate endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// GetWeather handles GET /api/weather/:zipcode
func (h *Handler) GetWeather(c *gin.Context) {
	httpkit.OK(c, h.svc.Weather(c.Request.Context(), c.Param("zipcode")))
}

// GetEnergyRates handles GET /api/energy-rates/:zipcode
func (h *Handler) GetEnergyRates(c *gin.Context) {
	httpkit.OK(c, h.svc.EnergyRates(c.Request.Context(), c.Param("zipcode")))
}
