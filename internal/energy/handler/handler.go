// Package handler exposes the energy analysis over HTTP.
package handler

import (
	"context"
	"errors"
	"net/http"

	"home_energy_coach/internal/energy/transport"
	"home_energy_coach/platform/apperr"
	"home_energy_coach/platform/httpkit"

	"github.com/gin-gonic/gin"
)

const maxBodyBytes = 1 << 20

// Analyzer is the service the handler delegates to.
type Analyzer interface {
	Analyze(ctx context.Context, raw []byte) (transport.AnalysisResponse, error)
}

// Handler serves the analysis endpoint.
type Handler struct {
	svc Analyzer
}

func New(svc Analyzer) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the analysis route on group.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/analyze", h.Analyze)
}

// Analyze handles POST /api/analyze.
func (h *Handler) Analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpkit.Error(c, http.StatusRequestEntityTooLarge, "request body too large", nil)
			return
		}
		httpkit.HandleError(c, apperr.Validation("invalid request body"))
		return
	}

	result, err := h.svc.Analyze(c.Request.Context(), raw)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}
