// Package router assembles the gin engine: global middleware, the health
// endpoint, the /api group and every registered module.
package router

import (
	"net/http"
	"time"

	apphttp "home_energy_coach/internal/http"
	"home_energy_coach/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// New builds the HTTP engine for app.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(httpkit.Recovery(app.Logger))
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(httpkit.CORS(app.Config))

	api := engine.Group("/api")
	api.Use(httpkit.NewAPIRateLimiter(app.Config, app.Logger).RateLimit())

	api.GET("/health", func(c *gin.Context) {
		httpkit.OK(c, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   app.Config.GetAppVersion(),
		})
	})

	ctx := &apphttp.RouterContext{
		Engine: engine,
		API:    api,
	}
	for _, module := range app.Modules {
		module.RegisterRoutes(ctx)
		app.Logger.Debug("registered module routes", "module", module.Name())
	}

	engine.NoRoute(func(c *gin.Context) {
		httpkit.Error(c, http.StatusNotFound, "not found", nil)
	})

	return engine
}
