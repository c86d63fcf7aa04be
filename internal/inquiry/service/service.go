// Package service implements the lead intake flow: validate the submission,
// compose the operator notification and the localized visitor confirmation,
// dispatch both, and publish the domain event for analytics fan-out.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dobomatyas-blip/getluxsold-website/internal/attribution"
	"github.com/dobomatyas-blip/getluxsold-website/internal/email"
	"github.com/dobomatyas-blip/getluxsold-website/internal/events"
	"github.com/dobomatyas-blip/getluxsold-website/internal/inquiry/transport"
	"github.com/dobomatyas-blip/getluxsold-website/platform/apperr"
	"github.com/dobomatyas-blip/getluxsold-website/platform/config"
	"github.com/dobomatyas-blip/getluxsold-website/platform/logger"
	"github.com/dobomatyas-blip/getluxsold-website/platform/phone"
	"github.com/dobomatyas-blip/getluxsold-website/platform/sanitize"
)

const (
	msgMissingFields       = "Missing required fields"
	msgInvalidEmail        = "Invalid email address"
	msgEmailNotConfigured  = "Email service not configured"
	msgSubmitFailed        = "Failed to submit inquiry"
	defaultLanguage        = "en"
	defaultInquiryType     = "other"
	notificationSubjectFmt = "[Bem rakpart 26] New %s inquiry from %s"
	serviceSubjectFmt      = "[Property Landing Page] FREE offer application from %s"
)

// AttributionSource reads the attribution set stored for a visitor session.
// Used as a fallback when the submission payload carries no utm map.
type AttributionSource interface {
	Stored(ctx context.Context, sessionID string) attribution.Params
}

// Service handles buyer inquiries and landing page service applications.
type Service struct {
	sender      email.Sender
	cfg         config.InquiryConfig
	bus         events.Bus
	attribution AttributionSource
	log         *logger.Logger
}

func New(sender email.Sender, cfg config.InquiryConfig, bus events.Bus, attrib AttributionSource, log *logger.Logger) *Service {
	return &Service{
		sender:      sender,
		cfg:         cfg,
		bus:         bus,
		attribution: attrib,
		log:         log,
	}
}

// SubmitInquiry processes a buyer inquiry. The operator notification must
// be delivered for the submission to count; the visitor confirmation is
// best effort.
func (s *Service) SubmitInquiry(ctx context.Context, sessionID string, req transport.InquiryRequest) error {
	if req.Name == "" || req.Email == "" || !req.PrivacyConsent {
		return apperr.Validation(msgMissingFields)
	}
	if !strings.Contains(req.Email, "@") {
		return apperr.Validation(msgInvalidEmail)
	}
	if !s.sender.Configured() {
		s.log.Error("inquiry rejected, no email provider configured")
		return apperr.Configuration(msgEmailNotConfigured)
	}

	lang := req.Language
	if lang == "" {
		lang = defaultLanguage
	}
	labels := inquiryLabelsFor(lang)

	inquiryType := req.InquiryType
	if inquiryType == "" {
		inquiryType = defaultInquiryType
	}
	typeLabel, ok := labels.typeLabels[inquiryType]
	if !ok {
		typeLabel = labels.typeLabels[defaultInquiryType]
	}

	name := sanitize.Text(req.Name)
	message := sanitize.Text(req.Message)
	preferredContact := strings.Join(req.PreferredContact, ", ")
	attrib := s.resolveAttribution(ctx, sessionID, req.UTM)

	details := []email.DetailRow{
		{Label: "Name", Value: name},
		{Label: "Email", Value: req.Email, Href: "mailto:" + req.Email},
	}
	if req.Phone != "" {
		details = append(details, email.DetailRow{
			Label: "Phone",
			Value: req.Phone,
			Href:  "tel:" + phone.NormalizeE164(req.Phone),
		})
	}
	details = append(details,
		email.DetailRow{Label: "Inquiry Type", Value: typeLabel},
		email.DetailRow{Label: "Preferred Contact", Value: preferredContact},
		email.DetailRow{Label: "Language", Value: strings.ToUpper(lang)},
		email.DetailRow{Label: "Received At", Value: time.Now().UTC().Format(time.RFC3339)},
	)

	notification := email.InquiryNotification{
		Subject:     fmt.Sprintf(notificationSubjectFmt, inquiryType, name),
		Heading:     "New Property Inquiry",
		Details:     details,
		Message:     message,
		Attribution: attributionRows(attrib),
	}
	if err := s.sender.SendInquiryNotification(ctx, s.cfg.GetInquiryNotifyEmail(), notification); err != nil {
		s.log.DeliveryError("inquiry_notification", s.cfg.GetInquiryNotifyEmail(), err)
		return apperr.Delivery(msgSubmitFailed, err)
	}

	confirmationDetails := []email.DetailRow{
		{Label: labels.inquiryType, Value: typeLabel},
		{Label: labels.preferredContact, Value: preferredContact},
	}
	if message != "" {
		confirmationDetails = append(confirmationDetails, email.DetailRow{Label: labels.message, Value: message})
	}
	confirmation := email.InquiryConfirmation{
		Subject:    labels.confirmationSubject,
		Greeting:   labels.greeting + " " + name + ",",
		Paragraphs: []string{labels.thanks, labels.received},
		Details:    confirmationDetails,
		Closing:    labels.closing + ",",
		TeamName:   labels.team,
	}
	if err := s.sender.SendInquiryConfirmation(ctx, req.Email, confirmation); err != nil {
		// The lead is already in the operator inbox; a lost receipt must
		// not fail the submission.
		s.log.Warn("confirmation_delivery_degraded",
			"kind", "inquiry_confirmation",
			"recipient", req.Email,
			"error", err.Error(),
		)
	}

	s.bus.Publish(ctx, events.InquirySubmitted{
		BaseEvent:   events.NewBaseEvent(),
		SessionID:   sessionID,
		InquiryType: inquiryType,
		Language:    lang,
		RefSlug:     attrib.Ref(),
	})

	return nil
}

// SubmitServiceInquiry processes a landing page service application from a
// property owner or agent.
func (s *Service) SubmitServiceInquiry(ctx context.Context, sessionID string, req transport.ServiceInquiryRequest) error {
	if req.Name == "" || req.Email == "" || req.PropertyAddress == "" {
		return apperr.Validation(msgMissingFields)
	}
	if !strings.Contains(req.Email, "@") {
		return apperr.Validation(msgInvalidEmail)
	}
	if !s.sender.Configured() {
		s.log.Error("service inquiry rejected, no email provider configured")
		return apperr.Configuration(msgEmailNotConfigured)
	}

	lang := req.Language
	if lang == "" {
		lang = defaultLanguage
	}
	labels := serviceInquiryLabelsFor(lang)

	name := sanitize.Text(req.Name)
	propertyAddress := sanitize.Text(req.PropertyAddress)
	message := sanitize.Text(req.Message)
	attrib := s.resolveAttribution(ctx, sessionID, req.UTM)

	details := []email.DetailRow{
		{Label: "Name", Value: name},
		{Label: "Email", Value: req.Email, Href: "mailto:" + req.Email},
		{Label: "Property Address", Value: propertyAddress},
	}
	if req.PropertyType != "" {
		details = append(details, email.DetailRow{Label: "Property Type", Value: sanitize.Text(req.PropertyType)})
	}
	if req.EstimatedValue != "" {
		details = append(details, email.DetailRow{Label: "Estimated Value", Value: sanitize.Text(req.EstimatedValue)})
	}
	details = append(details,
		email.DetailRow{Label: "Language", Value: strings.ToUpper(lang)},
		email.DetailRow{Label: "Received At", Value: time.Now().UTC().Format(time.RFC3339)},
	)

	notification := email.InquiryNotification{
		Subject:     fmt.Sprintf(serviceSubjectFmt, name),
		Heading:     "Service Inquiry from Bem rakpart 26",
		Details:     details,
		Message:     message,
		Attribution: attributionRows(attrib),
	}
	if err := s.sender.SendInquiryNotification(ctx, s.cfg.GetServiceInquiryNotifyEmail(), notification); err != nil {
		s.log.DeliveryError("service_inquiry_notification", s.cfg.GetServiceInquiryNotifyEmail(), err)
		return apperr.Delivery(msgSubmitFailed, err)
	}

	confirmationDetails := []email.DetailRow{
		{Label: labels.propertyAddress, Value: propertyAddress},
	}
	if message != "" {
		confirmationDetails = append(confirmationDetails, email.DetailRow{Label: labels.message, Value: message})
	}
	confirmation := email.InquiryConfirmation{
		Subject:    labels.confirmationSubject,
		Greeting:   labels.greeting + " " + name + ",",
		Paragraphs: []string{labels.thanks, labels.received, labels.freeNote},
		Details:    confirmationDetails,
		Closing:    labels.closing + ",",
		TeamName:   labels.team,
	}
	if err := s.sender.SendInquiryConfirmation(ctx, req.Email, confirmation); err != nil {
		s.log.Warn("confirmation_delivery_degraded",
			"kind", "service_inquiry_confirmation",
			"recipient", req.Email,
			"error", err.Error(),
		)
	}

	s.bus.Publish(ctx, events.ServiceInquirySubmitted{
		BaseEvent:    events.NewBaseEvent(),
		SessionID:    sessionID,
		PropertyType: req.PropertyType,
		Language:     lang,
		RefSlug:      attrib.Ref(),
	})

	return nil
}

// resolveAttribution prefers the utm map sent with the submission and falls
// back to whatever the session captured earlier.
func (s *Service) resolveAttribution(ctx context.Context, sessionID string, payload map[string]string) attribution.Params {
	if len(payload) > 0 {
		params := attribution.Params{}
		for _, key := range attribution.Keys {
			if v, ok := payload[string(key)]; ok && v != "" {
				params[key] = v
			}
		}
		if !params.IsZero() {
			return params
		}
	}
	return s.attribution.Stored(ctx, sessionID)
}

// attributionRows renders an attribution set in stable key order.
func attributionRows(params attribution.Params) []email.DetailRow {
	if params.IsZero() {
		return nil
	}
	rows := make([]email.DetailRow, 0, len(params))
	for _, key := range attribution.Keys {
		if v, ok := params[key]; ok {
			rows = append(rows, email.DetailRow{Label: string(key), Value: sanitize.Text(v)})
		}
	}
	return rows
}
