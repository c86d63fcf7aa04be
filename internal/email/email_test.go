package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRenderNotificationTemplate(t *testing.T) {
	content, err := renderEmailTemplate("notification.html", InquiryNotification{
		Subject: "[Bem rakpart 26] New Schedule a Viewing inquiry from John Doe",
		Heading: "New inquiry",
		Details: []DetailRow{
			{Label: "Name", Value: "John Doe"},
			{Label: "Email", Value: "john@example.com", Href: "mailto:john@example.com"},
			{Label: "Phone", Value: "+36301234567", Href: "tel:+36301234567"},
		},
		Message: "First line\nSecond line",
		Attribution: []DetailRow{
			{Label: "utm_source", Value: "facebook"},
			{Label: "ref", Value: "jane-obrien"},
		},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"John Doe",
		`href="mailto:john@example.com"`,
		`href="tel:`,
		"utm_source",
		"jane-obrien",
		"First line",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("rendered notification missing %q", want)
		}
	}
}

func TestRenderConfirmationTemplate(t *testing.T) {
	content, err := renderEmailTemplate("confirmation.html", InquiryConfirmation{
		Subject:    "Bem rakpart 26 - Inquiry Received",
		Greeting:   "Dear John,",
		Paragraphs: []string{"Thank you for your interest.", "We will be in touch shortly."},
		Details: []DetailRow{
			{Label: "Inquiry type", Value: "Schedule a Viewing"},
		},
		Closing:  "Best regards,",
		TeamName: "Endless Solutions Kft.",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"Dear John,",
		"Thank you for your interest.",
		"Schedule a Viewing",
		"Endless Solutions Kft.",
		"BEM RAKPART 26",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("rendered confirmation missing %q", want)
		}
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	content, err := renderEmailTemplate("notification.html", InquiryNotification{
		Subject: "s",
		Heading: "h",
		Message: "<script>alert(1)</script>",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(content, "<script>") {
		t.Fatal("message HTML was not escaped")
	}
}

type fakeEmailConfig struct {
	enabled  bool
	provider string
	brevoKey string
	smtpHost string
}

func (f fakeEmailConfig) GetEmailEnabled() bool       { return f.enabled }
func (f fakeEmailConfig) GetEmailProvider() string    { return f.provider }
func (f fakeEmailConfig) GetBrevoAPIKey() string      { return f.brevoKey }
func (f fakeEmailConfig) GetSMTPHost() string         { return f.smtpHost }
func (f fakeEmailConfig) GetSMTPPort() int            { return 587 }
func (f fakeEmailConfig) GetSMTPUsername() string     { return "user" }
func (f fakeEmailConfig) GetSMTPPassword() string     { return "pass" }
func (f fakeEmailConfig) GetEmailFromName() string    { return "Bem rakpart 26" }
func (f fakeEmailConfig) GetEmailFromAddress() string { return "onboarding@resend.dev" }

func TestNewSender(t *testing.T) {
	sender, err := NewSender(fakeEmailConfig{enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.Configured() {
		t.Fatal("disabled config should yield an unconfigured sender")
	}

	sender, err = NewSender(fakeEmailConfig{enabled: true, provider: "brevo", brevoKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := sender.(*BrevoSender); !ok {
		t.Fatalf("expected BrevoSender, got %T", sender)
	}
	if !sender.Configured() {
		t.Fatal("brevo sender with key should report configured")
	}

	sender, err = NewSender(fakeEmailConfig{enabled: true, provider: "smtp", smtpHost: "mail.example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := sender.(*SMTPSender); !ok {
		t.Fatalf("expected SMTPSender, got %T", sender)
	}

	if _, err = NewSender(fakeEmailConfig{enabled: true, provider: "postmark"}); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestBrevoSender_Send(t *testing.T) {
	var gotAPIKey string
	var gotPayload brevoEmailRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	sender := NewBrevoSender(fakeEmailConfig{enabled: true, provider: "brevo", brevoKey: "k3y"})
	sender.endpoint = srv.URL

	err := sender.SendInquiryNotification(context.Background(), "dobomatyas@me.com", InquiryNotification{
		Subject: "[Bem rakpart 26] New inquiry",
		Heading: "New inquiry",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if gotAPIKey != "k3y" {
		t.Fatalf("expected api-key header, got %q", gotAPIKey)
	}
	if len(gotPayload.To) != 1 || gotPayload.To[0].Email != "dobomatyas@me.com" {
		t.Fatalf("unexpected recipient: %+v", gotPayload.To)
	}
	if gotPayload.Subject != "[Bem rakpart 26] New inquiry" {
		t.Fatalf("unexpected subject: %q", gotPayload.Subject)
	}
	if gotPayload.Sender.Email != "onboarding@resend.dev" {
		t.Fatalf("unexpected sender: %+v", gotPayload.Sender)
	}
}

func TestBrevoSender_SendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	sender := NewBrevoSender(fakeEmailConfig{enabled: true, provider: "brevo", brevoKey: "bad"})
	sender.endpoint = srv.URL

	err := sender.SendInquiryConfirmation(context.Background(), "john@example.com", InquiryConfirmation{Subject: "s"})
	if err == nil {
		t.Fatal("expected error for rejected send")
	}
	if !strings.Contains(err.Error(), "status 401") {
		t.Fatalf("expected status in error, got %v", err)
	}
}
