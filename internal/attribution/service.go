package attribution

import (
	"context"
	"net/url"

	"github.com/dobomatyas-blip/getluxsold-website/internal/events"
	"github.com/dobomatyas-blip/getluxsold-website/platform/logger"
)

// Service implements the capture/read contract over a session Store.
type Service struct {
	store Store
	bus   events.Bus
	log   *logger.Logger
}

// NewService creates the attribution service.
func NewService(store Store, bus events.Bus, log *logger.Logger) *Service {
	return &Service{store: store, bus: bus, log: log}
}

// Capture parses the page URL the visitor landed on and extracts the
// recognized attribution keys. If one or more are present the stored set for
// the session is fully overwritten and the fresh set returned; otherwise the
// previously stored set is returned unchanged. A visit carrying a ref
// parameter additionally publishes a ReferralVisited event.
//
// Capture never fails: an unparsable URL or unavailable store yields
// whatever is stored, or empty Params.
func (s *Service) Capture(ctx context.Context, sessionID, pageURL, propertySlug, language string) Params {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		s.log.Debug("attribution capture skipped, bad url", "error", err)
		return s.Stored(ctx, sessionID)
	}

	params := FromQuery(parsed.Query())
	if params.IsZero() {
		return s.Stored(ctx, sessionID)
	}

	if err := s.store.Save(ctx, sessionID, params); err != nil {
		// Storage unavailable degrades to "no attribution persisted";
		// the fresh capture is still returned for this page view.
		s.log.Warn("attribution store unavailable", "error", err)
	}

	if ref := params.Ref(); ref != "" {
		s.bus.Publish(ctx, events.ReferralVisited{
			BaseEvent:    events.NewBaseEvent(),
			SessionID:    sessionID,
			RefSlug:      ref,
			PropertySlug: propertySlug,
			Language:     language,
		})
	}

	return params
}

// Stored returns the session's stored attribution set. Never errors: store
// failures yield empty Params.
func (s *Service) Stored(ctx context.Context, sessionID string) Params {
	if sessionID == "" {
		return Params{}
	}
	params, err := s.store.Load(ctx, sessionID)
	if err != nil {
		s.log.Warn("attribution store unavailable", "error", err)
		return Params{}
	}
	return params
}
