// Package site serves the landing page.
package site

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	apphttp "home_energy_coach/internal/http"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type indexData struct {
	Version       string
	BuildingTypes []string
}

// Module renders the landing page at /.
type Module struct {
	data indexData
}

// NewModule creates the landing page module. buildingTypes is listed on
// the page as-is.
func NewModule(version string, buildingTypes []string) *Module {
	return &Module{data: indexData{Version: version, BuildingTypes: buildingTypes}}
}

func (m *Module) Name() string {
	return "site"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Engine.GET("/", m.index)
}

func (m *Module) index(c *gin.Context) {
	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, m.data); err != nil {
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "failed to render page")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

var _ apphttp.Module = (*Module)(nil)
