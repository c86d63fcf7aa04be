package referral

import (
	"github.com/dobomatyas-blip/getluxsold-website/internal/events"
	apphttp "github.com/dobomatyas-blip/getluxsold-website/internal/http"
	"github.com/dobomatyas-blip/getluxsold-website/platform/config"
	"github.com/dobomatyas-blip/getluxsold-website/platform/validator"
)

// Module is the referral/share-link bounded context module implementing http.Module.
type Module struct {
	handler *Handler
}

// NewModule creates the referral module.
func NewModule(cfg config.SiteConfig, bus events.Bus, val *validator.Validator) *Module {
	return &Module{
		handler: NewHandler(cfg.GetSiteBaseURL(), bus, val),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "referral"
}

// RegisterRoutes mounts referral and share link routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/referral-links", m.handler.CreateReferralLink)
	ctx.V1.GET("/referral-links/:slug", m.handler.GetAgent)
	ctx.V1.POST("/share-links", m.handler.CreateShareLink)
	ctx.V1.GET("/share-links/qr", m.handler.QRCode)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
