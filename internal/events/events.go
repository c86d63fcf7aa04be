// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"github.com/dobomatyas-blip/getluxsold-website/platform/events"
	"github.com/dobomatyas-blip/getluxsold-website/platform/logger"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
// This is a convenience re-export from platform/events.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Attribution Domain Events
// =============================================================================

// ReferralVisited is published when a page load carries a ref parameter,
// once per capture. Analytics fans this out as a referral_visit event.
type ReferralVisited struct {
	BaseEvent
	SessionID    string `json:"sessionId,omitempty"`
	RefSlug      string `json:"refSlug"`
	PropertySlug string `json:"propertySlug"`
	Language     string `json:"language"`
}

func (e ReferralVisited) EventName() string { return "attribution.referral_visited" }

// =============================================================================
// Referral Domain Events
// =============================================================================

// ShareLinkBuilt is published when a visitor generates an outbound share
// link for a destination platform.
type ShareLinkBuilt struct {
	BaseEvent
	SessionID    string `json:"sessionId,omitempty"`
	Platform     string `json:"platform"`
	PropertySlug string `json:"propertySlug"`
	Language     string `json:"language"`
}

func (e ShareLinkBuilt) EventName() string { return "referral.share_link_built" }

// =============================================================================
// Inquiry Domain Events
// =============================================================================

// InquirySubmitted is published after a buyer inquiry has been accepted and
// the operator notification dispatched.
type InquirySubmitted struct {
	BaseEvent
	SessionID   string `json:"sessionId,omitempty"`
	InquiryType string `json:"inquiryType"`
	Language    string `json:"language"`
	RefSlug     string `json:"refSlug,omitempty"`
}

func (e InquirySubmitted) EventName() string { return "inquiry.submitted" }

// ServiceInquirySubmitted is published after an agent/seller service inquiry
// has been accepted and the operator notification dispatched.
type ServiceInquirySubmitted struct {
	BaseEvent
	SessionID    string `json:"sessionId,omitempty"`
	PropertyType string `json:"propertyType,omitempty"`
	Language     string `json:"language"`
	RefSlug      string `json:"refSlug,omitempty"`
}

func (e ServiceInquirySubmitted) EventName() string { return "inquiry.service_submitted" }
