// Package inquiry provides the lead intake bounded context module.
package inquiry

import (
	"github.com/dobomatyas-blip/getluxsold-website/internal/email"
	"github.com/dobomatyas-blip/getluxsold-website/internal/events"
	apphttp "github.com/dobomatyas-blip/getluxsold-website/internal/http"
	"github.com/dobomatyas-blip/getluxsold-website/internal/inquiry/handler"
	"github.com/dobomatyas-blip/getluxsold-website/internal/inquiry/service"
	"github.com/dobomatyas-blip/getluxsold-website/platform/config"
	"github.com/dobomatyas-blip/getluxsold-website/platform/logger"
	"github.com/dobomatyas-blip/getluxsold-website/platform/validator"
)

// Module is the lead intake bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule wires the lead intake service with its email sender, recipient
// configuration, and the attribution fallback source.
func NewModule(sender email.Sender, cfg config.InquiryConfig, bus events.Bus, attrib service.AttributionSource, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(sender, cfg, bus, attrib, log)
	return &Module{
		handler: handler.New(svc, val),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "inquiry"
}

// RegisterRoutes mounts the form submission endpoints. Both sit behind the
// shared per-IP form rate limiter.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	limited := ctx.API.Group("", ctx.FormRateLimiter.RateLimit())
	limited.POST("/inquiry", m.handler.SubmitInquiry)
	limited.POST("/service-inquiry", m.handler.SubmitServiceInquiry)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
