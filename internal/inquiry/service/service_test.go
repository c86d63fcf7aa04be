package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dobomatyas-blip/getluxsold-website/internal/attribution"
	"github.com/dobomatyas-blip/getluxsold-website/internal/email"
	"github.com/dobomatyas-blip/getluxsold-website/internal/events"
	"github.com/dobomatyas-blip/getluxsold-website/internal/inquiry/transport"
	"github.com/dobomatyas-blip/getluxsold-website/platform/apperr"
	"github.com/dobomatyas-blip/getluxsold-website/platform/logger"
)

type sentNotification struct {
	to   string
	data email.InquiryNotification
}

type sentConfirmation struct {
	to   string
	data email.InquiryConfirmation
}

type fakeSender struct {
	configured      bool
	notificationErr error
	confirmationErr error
	notifications   []sentNotification
	confirmations   []sentConfirmation
}

func (f *fakeSender) Configured() bool { return f.configured }

func (f *fakeSender) SendInquiryNotification(ctx context.Context, toEmail string, data email.InquiryNotification) error {
	if f.notificationErr != nil {
		return f.notificationErr
	}
	f.notifications = append(f.notifications, sentNotification{to: toEmail, data: data})
	return nil
}

func (f *fakeSender) SendInquiryConfirmation(ctx context.Context, toEmail string, data email.InquiryConfirmation) error {
	if f.confirmationErr != nil {
		return f.confirmationErr
	}
	f.confirmations = append(f.confirmations, sentConfirmation{to: toEmail, data: data})
	return nil
}

type fakeInquiryConfig struct{}

func (fakeInquiryConfig) GetInquiryNotifyEmail() string        { return "dobomatyas@me.com" }
func (fakeInquiryConfig) GetServiceInquiryNotifyEmail() string { return "info@endlesssolutions.net" }

type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(ctx context.Context, event events.Event) {
	b.published = append(b.published, event)
}

func (b *recordingBus) PublishSync(ctx context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return nil
}

func (b *recordingBus) Subscribe(eventName string, handler events.Handler) {}

type fakeAttributionSource struct {
	stored attribution.Params
}

func (f fakeAttributionSource) Stored(ctx context.Context, sessionID string) attribution.Params {
	return f.stored
}

func newTestService(sender *fakeSender, bus *recordingBus, stored attribution.Params) *Service {
	return New(sender, fakeInquiryConfig{}, bus, fakeAttributionSource{stored: stored}, logger.New("test"))
}

func validInquiry() transport.InquiryRequest {
	return transport.InquiryRequest{
		Name:             "John Doe",
		Email:            "john@example.com",
		Phone:            "+36301234567",
		InquiryType:      "viewing",
		PreferredContact: []string{"email", "phone"},
		Language:         "en",
		Message:          "When can I visit?",
		PrivacyConsent:   true,
	}
}

func TestSubmitInquiry_MissingFields(t *testing.T) {
	sender := &fakeSender{configured: true}
	svc := newTestService(sender, &recordingBus{}, nil)

	cases := []struct {
		name   string
		mutate func(*transport.InquiryRequest)
	}{
		{"no name", func(r *transport.InquiryRequest) { r.Name = "" }},
		{"no email", func(r *transport.InquiryRequest) { r.Email = "" }},
		{"no consent", func(r *transport.InquiryRequest) { r.PrivacyConsent = false }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validInquiry()
			tc.mutate(&req)

			err := svc.SubmitInquiry(context.Background(), "session-1", req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var appErr *apperr.Error
			if !errors.As(err, &appErr) || appErr.Message != "Missing required fields" {
				t.Fatalf("expected \"Missing required fields\", got %v", err)
			}
			if len(sender.notifications) != 0 || len(sender.confirmations) != 0 {
				t.Fatal("no email may be sent for an invalid submission")
			}
		})
	}
}

func TestSubmitInquiry_InvalidEmail(t *testing.T) {
	sender := &fakeSender{configured: true}
	svc := newTestService(sender, &recordingBus{}, nil)

	req := validInquiry()
	req.Email = "not-an-email"

	err := svc.SubmitInquiry(context.Background(), "session-1", req)
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Message != "Invalid email address" {
		t.Fatalf("expected \"Invalid email address\", got %v", err)
	}
	if len(sender.notifications) != 0 {
		t.Fatal("no email may be sent for an invalid address")
	}
}

func TestSubmitInquiry_SenderNotConfigured(t *testing.T) {
	sender := &fakeSender{configured: false}
	svc := newTestService(sender, &recordingBus{}, nil)

	err := svc.SubmitInquiry(context.Background(), "session-1", validInquiry())
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Message != "Email service not configured" {
		t.Fatalf("expected \"Email service not configured\", got %v", err)
	}
	if appErr.HTTPStatus() != 500 {
		t.Fatalf("expected 500 for configuration error, got %d", appErr.HTTPStatus())
	}
}

func TestSubmitInquiry_Success(t *testing.T) {
	sender := &fakeSender{configured: true}
	bus := &recordingBus{}
	svc := newTestService(sender, bus, nil)

	req := validInquiry()
	req.UTM = map[string]string{"utm_source": "facebook", "ref": "jane-obrien"}

	if err := svc.SubmitInquiry(context.Background(), "session-1", req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sender.notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(sender.notifications))
	}
	notif := sender.notifications[0]
	if notif.to != "dobomatyas@me.com" {
		t.Fatalf("notification went to %q", notif.to)
	}
	if notif.data.Subject != "[Bem rakpart 26] New viewing inquiry from John Doe" {
		t.Fatalf("unexpected subject: %q", notif.data.Subject)
	}
	if len(notif.data.Attribution) != 2 {
		t.Fatalf("expected attribution rows, got %+v", notif.data.Attribution)
	}

	if len(sender.confirmations) != 1 {
		t.Fatalf("expected 1 confirmation, got %d", len(sender.confirmations))
	}
	conf := sender.confirmations[0]
	if conf.to != "john@example.com" {
		t.Fatalf("confirmation went to %q", conf.to)
	}
	if conf.data.Subject != "Bem rakpart 26 - Inquiry Received" {
		t.Fatalf("unexpected confirmation subject: %q", conf.data.Subject)
	}
	if conf.data.Greeting != "Dear John Doe," {
		t.Fatalf("unexpected greeting: %q", conf.data.Greeting)
	}

	if len(bus.published) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(bus.published))
	}
	submitted, ok := bus.published[0].(events.InquirySubmitted)
	if !ok {
		t.Fatalf("expected InquirySubmitted, got %T", bus.published[0])
	}
	if submitted.InquiryType != "viewing" || submitted.RefSlug != "jane-obrien" {
		t.Fatalf("unexpected event: %+v", submitted)
	}
}

func TestSubmitInquiry_GermanBundle(t *testing.T) {
	sender := &fakeSender{configured: true}
	svc := newTestService(sender, &recordingBus{}, nil)

	req := validInquiry()
	req.Language = "de"

	if err := svc.SubmitInquiry(context.Background(), "session-1", req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	conf := sender.confirmations[0]
	if conf.data.Subject != "Bem rakpart 26 - Anfrage erhalten" {
		t.Fatalf("expected german subject, got %q", conf.data.Subject)
	}
	if !strings.HasPrefix(conf.data.Greeting, "Sehr geehrte/r") {
		t.Fatalf("expected german greeting, got %q", conf.data.Greeting)
	}
}

func TestSubmitInquiry_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	sender := &fakeSender{configured: true}
	svc := newTestService(sender, &recordingBus{}, nil)

	req := validInquiry()
	req.Language = "fr"

	if err := svc.SubmitInquiry(context.Background(), "session-1", req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := sender.confirmations[0].data.Subject; got != "Bem rakpart 26 - Inquiry Received" {
		t.Fatalf("expected english fallback subject, got %q", got)
	}
}

func TestSubmitInquiry_NotificationFailureFailsSubmission(t *testing.T) {
	sender := &fakeSender{configured: true, notificationErr: errors.New("smtp down")}
	bus := &recordingBus{}
	svc := newTestService(sender, bus, nil)

	err := svc.SubmitInquiry(context.Background(), "session-1", validInquiry())
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Message != "Failed to submit inquiry" {
		t.Fatalf("expected \"Failed to submit inquiry\", got %v", err)
	}
	if appErr.HTTPStatus() != 500 {
		t.Fatalf("expected 500, got %d", appErr.HTTPStatus())
	}
	if len(sender.confirmations) != 0 {
		t.Fatal("confirmation must not be attempted when the notification failed")
	}
	if len(bus.published) != 0 {
		t.Fatal("no event may be published for a failed submission")
	}
}

func TestSubmitInquiry_ConfirmationFailureStillSucceeds(t *testing.T) {
	sender := &fakeSender{configured: true, confirmationErr: errors.New("mailbox full")}
	bus := &recordingBus{}
	svc := newTestService(sender, bus, nil)

	if err := svc.SubmitInquiry(context.Background(), "session-1", validInquiry()); err != nil {
		t.Fatalf("a lost receipt must not fail the submission: %v", err)
	}
	if len(sender.notifications) != 1 {
		t.Fatal("notification should have been delivered")
	}
	if len(bus.published) != 1 {
		t.Fatal("event should still be published")
	}
}

func TestSubmitInquiry_FallsBackToStoredAttribution(t *testing.T) {
	sender := &fakeSender{configured: true}
	bus := &recordingBus{}
	stored := attribution.Params{
		attribution.KeyUTMSource: "newsletter",
		attribution.KeyRef:       "john-doe",
	}
	svc := newTestService(sender, bus, stored)

	if err := svc.SubmitInquiry(context.Background(), "session-1", validInquiry()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notif := sender.notifications[0]
	if len(notif.data.Attribution) != 2 {
		t.Fatalf("expected stored attribution rows, got %+v", notif.data.Attribution)
	}
	submitted := bus.published[0].(events.InquirySubmitted)
	if submitted.RefSlug != "john-doe" {
		t.Fatalf("expected stored ref in event, got %q", submitted.RefSlug)
	}
}

func TestSubmitInquiry_StripsHTMLFromFreeText(t *testing.T) {
	sender := &fakeSender{configured: true}
	svc := newTestService(sender, &recordingBus{}, nil)

	req := validInquiry()
	req.Message = "<script>alert(1)</script>hello"

	if err := svc.SubmitInquiry(context.Background(), "session-1", req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg := sender.notifications[0].data.Message; strings.Contains(msg, "<script>") {
		t.Fatalf("message not sanitized: %q", msg)
	}
}

func validServiceInquiry() transport.ServiceInquiryRequest {
	return transport.ServiceInquiryRequest{
		Name:            "Anna Kovacs",
		Email:           "anna@example.com",
		PropertyAddress: "Andrassy ut 12, Budapest",
		PropertyType:    "penthouse",
		Language:        "hu",
	}
}

func TestSubmitServiceInquiry_MissingAddress(t *testing.T) {
	sender := &fakeSender{configured: true}
	svc := newTestService(sender, &recordingBus{}, nil)

	req := validServiceInquiry()
	req.PropertyAddress = ""

	err := svc.SubmitServiceInquiry(context.Background(), "session-1", req)
	var appErr *apperr.Error
	if !errors.As(err, &appErr) || appErr.Message != "Missing required fields" {
		t.Fatalf("expected \"Missing required fields\", got %v", err)
	}
}

func TestSubmitServiceInquiry_Success(t *testing.T) {
	sender := &fakeSender{configured: true}
	bus := &recordingBus{}
	svc := newTestService(sender, bus, nil)

	if err := svc.SubmitServiceInquiry(context.Background(), "session-1", validServiceInquiry()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	notif := sender.notifications[0]
	if notif.to != "info@endlesssolutions.net" {
		t.Fatalf("notification went to %q", notif.to)
	}
	if notif.data.Subject != "[Property Landing Page] FREE offer application from Anna Kovacs" {
		t.Fatalf("unexpected subject: %q", notif.data.Subject)
	}

	conf := sender.confirmations[0]
	if conf.data.Subject != "Endless Solutions - Luxus Ingatlan Landing Page Érdeklődés" {
		t.Fatalf("expected hungarian subject, got %q", conf.data.Subject)
	}
	if len(conf.data.Paragraphs) != 3 {
		t.Fatalf("expected thanks, received and free-note paragraphs, got %d", len(conf.data.Paragraphs))
	}

	submitted, ok := bus.published[0].(events.ServiceInquirySubmitted)
	if !ok {
		t.Fatalf("expected ServiceInquirySubmitted, got %T", bus.published[0])
	}
	if submitted.PropertyType != "penthouse" || submitted.Language != "hu" {
		t.Fatalf("unexpected event: %+v", submitted)
	}
}
