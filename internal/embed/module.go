package embed

import (
	apphttp "github.com/dobomatyas-blip/getluxsold-website/internal/http"
	"github.com/dobomatyas-blip/getluxsold-website/platform/config"
	"github.com/dobomatyas-blip/getluxsold-website/platform/logger"
)

// Module is the embed widget module implementing http.Module.
type Module struct {
	handler *Handler
}

func NewModule(cfg config.SiteConfig, log *logger.Logger) *Module {
	gen := NewGenerator(cfg.GetSiteBaseURL())
	return &Module{
		handler: NewHandler(gen, log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "embed"
}

// RegisterRoutes mounts the widget endpoint.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.GET("/embed", m.handler.Widget)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
