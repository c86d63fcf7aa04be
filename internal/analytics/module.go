package analytics

import (
	"context"
	"fmt"

	"github.com/dobomatyas-blip/getluxsold-website/internal/events"
	apphttp "github.com/dobomatyas-blip/getluxsold-website/internal/http"
	"github.com/dobomatyas-blip/getluxsold-website/platform/logger"
)

// Module bridges the domain event bus to the analytics emitter. It exposes
// no HTTP routes; its whole job is fanning events out to GA4.
type Module struct {
	emitter Emitter
	log     *logger.Logger
}

func NewModule(emitter Emitter, log *logger.Logger) *Module {
	return &Module{emitter: emitter, log: log}
}

func (m *Module) Name() string { return "analytics" }

// RegisterRoutes satisfies the module contract. Analytics is event-driven
// only, so there is nothing to mount.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {}

// RegisterHandlers subscribes to every domain event that maps to a GA4 hit.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.ReferralVisited{}.EventName(), m)
	bus.Subscribe(events.ShareLinkBuilt{}.EventName(), m)
	bus.Subscribe(events.InquirySubmitted{}.EventName(), m)
	bus.Subscribe(events.ServiceInquirySubmitted{}.EventName(), m)

	m.log.Info("analytics module registered event handlers")
}

// Handle routes domain events to their GA4 event shapes.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.ReferralVisited:
		m.emitter.Track(ctx, Event{
			ClientID: e.SessionID,
			Name:     "referral_visit",
			Params: map[string]any{
				"ref":           e.RefSlug,
				"property_slug": e.PropertySlug,
				"language":      e.Language,
			},
		})
	case events.ShareLinkBuilt:
		m.emitter.Track(ctx, Event{
			ClientID: e.SessionID,
			Name:     "share",
			Params: map[string]any{
				"platform":      e.Platform,
				"property_slug": e.PropertySlug,
				"language":      e.Language,
			},
		})
	case events.InquirySubmitted:
		params := map[string]any{
			"form_name":    "inquiry",
			"inquiry_type": e.InquiryType,
			"language":     e.Language,
		}
		if e.RefSlug != "" {
			params["ref"] = e.RefSlug
		}
		m.emitter.Track(ctx, Event{ClientID: e.SessionID, Name: "generate_lead", Params: params})
	case events.ServiceInquirySubmitted:
		params := map[string]any{
			"form_name": "service_inquiry",
			"language":  e.Language,
		}
		if e.PropertyType != "" {
			params["property_type"] = e.PropertyType
		}
		if e.RefSlug != "" {
			params["ref"] = e.RefSlug
		}
		m.emitter.Track(ctx, Event{ClientID: e.SessionID, Name: "generate_lead", Params: params})
	default:
		return fmt.Errorf("analytics: unexpected event %s", event.EventName())
	}
	return nil
}
