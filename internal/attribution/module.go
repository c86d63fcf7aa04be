package attribution

import (
	"github.com/dobomatyas-blip/getluxsold-website/internal/events"
	apphttp "github.com/dobomatyas-blip/getluxsold-website/internal/http"
	"github.com/dobomatyas-blip/getluxsold-website/platform/logger"
	"github.com/dobomatyas-blip/getluxsold-website/platform/validator"
)

// Module is the attribution bounded context module implementing http.Module.
type Module struct {
	handler *Handler
	service *Service
}

// NewModule creates and initializes the attribution module over the given
// session store (Redis when configured, in-memory otherwise).
func NewModule(store Store, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := NewService(store, bus, log)
	return &Module{
		handler: NewHandler(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "attribution"
}

// Service returns the service layer for external use (lead intake reads the
// stored set when a submission carries no explicit attribution).
func (m *Module) Service() *Service {
	return m.service
}

// RegisterRoutes mounts attribution routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/attribution/capture", m.handler.Capture)
	ctx.V1.GET("/attribution", m.handler.Stored)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
