package conditions

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apphttp "home_energy_coach/internal/http"
	"home_energy_coach/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	svc := NewService(logger.Discard())
	svc.now = func() time.Time { return time.Date(2025, 7, 4, 12, 0, 0, 0, time.UTC) }
	m := &Module{handler: NewHandler(svc)}
	m.RegisterRoutes(&apphttp.RouterContext{Engine: engine, API: engine.Group("/api")})
	return engine
}

func TestWeather(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestEngine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/weather/10027", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"temperature": 75,
		"humidity": 60,
		"forecast": "sunny",
		"zipcode": "10027",
		"timestamp": "2025-07-04T12:00:00Z"
	}`, rec.Body.String())
}

func TestEnergyRatesEchoesAnyZipcode(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestEngine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/energy-rates/not-a-zip", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"electricity": 0.12,
		"gas": 0.08,
		"zipcode": "not-a-zip",
		"timestamp": "2025-07-04T12:00:00Z"
	}`, rec.Body.String())
}
