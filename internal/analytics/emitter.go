// Package analytics forwards domain events to Google Analytics 4 through
// the Measurement Protocol. Delivery is fire-and-forget: a failed or
// misconfigured emitter never affects the request that produced the event.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/dobomatyas-blip/getluxsold-website/platform/config"
	"github.com/dobomatyas-blip/getluxsold-website/platform/logger"
)

// Event is a single analytics hit.
type Event struct {
	// ClientID identifies the browser session the hit belongs to. When
	// empty a random ID is generated so the hit is still accepted.
	ClientID string
	Name     string
	Params   map[string]any
}

// Emitter delivers analytics events to a collection endpoint.
type Emitter interface {
	Track(ctx context.Context, ev Event)
}

// NoopEmitter drops every event. Used when no measurement ID is configured
// so callers never have to branch on analytics being enabled.
type NoopEmitter struct{}

func (NoopEmitter) Track(ctx context.Context, ev Event) {}

const (
	collectEndpoint = "https://www.google-analytics.com/mp/collect"
	collectTimeout  = 5 * time.Second
)

// GA4Emitter sends events to the GA4 Measurement Protocol collect endpoint.
type GA4Emitter struct {
	measurementID string
	apiSecret     string
	baseURL       string
	client        *http.Client
	log           *logger.Logger
}

type ga4Payload struct {
	ClientID string     `json:"client_id"`
	Events   []ga4Event `json:"events"`
}

type ga4Event struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

// NewEmitter builds the emitter matching the configuration: a GA4 client
// when a measurement ID is set, a no-op otherwise.
func NewEmitter(cfg config.AnalyticsConfig, log *logger.Logger) Emitter {
	if cfg.GetGAMeasurementID() == "" {
		return NoopEmitter{}
	}
	return &GA4Emitter{
		measurementID: cfg.GetGAMeasurementID(),
		apiSecret:     cfg.GetGAAPISecret(),
		baseURL:       collectEndpoint,
		client:        &http.Client{Timeout: collectTimeout},
		log:           log,
	}
}

// Track delivers a single event. Errors are logged, never returned: the
// caller has already answered its request by the time a hit goes out.
func (g *GA4Emitter) Track(ctx context.Context, ev Event) {
	clientID := ev.ClientID
	if clientID == "" {
		clientID = uuid.NewString()
	}

	payload := ga4Payload{
		ClientID: clientID,
		Events:   []ga4Event{{Name: ev.Name, Params: ev.Params}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		g.log.TrackingEvent(ev.Name, false)
		return
	}

	endpoint := g.endpoint()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		g.log.TrackingEvent(ev.Name, false)
		return
	}
	req.Header.Set("content-type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.TrackingEvent(ev.Name, false)
		return
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		g.log.Warn("analytics collect rejected",
			"event", ev.Name,
			"status", resp.StatusCode,
			"body", string(data),
		)
		g.log.TrackingEvent(ev.Name, false)
		return
	}

	g.log.TrackingEvent(ev.Name, true)
}

func (g *GA4Emitter) endpoint() string {
	return fmt.Sprintf("%s?measurement_id=%s&api_secret=%s",
		g.baseURL,
		url.QueryEscape(g.measurementID),
		url.QueryEscape(g.apiSecret),
	)
}
