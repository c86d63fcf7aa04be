// Package email delivers inquiry notification and confirmation emails.
// Two transports are supported: the Brevo HTTP API and direct SMTP via
// go-mail. Both render the same embedded HTML templates.
package email

import (
	"context"
	"fmt"

	"github.com/dobomatyas-blip/getluxsold-website/platform/config"
)

// DetailRow is a label/value pair rendered in the email body tables.
type DetailRow struct {
	Label string
	Value string
	// Href turns the value into a link (mailto:, tel:) when non-empty.
	Href string
}

// InquiryNotification is the operator-facing email for a new inquiry. All
// fields arrive pre-localized and pre-sanitized; the templates only lay
// them out.
type InquiryNotification struct {
	Subject     string
	Heading     string
	Details     []DetailRow
	Message     string
	Attribution []DetailRow
}

// InquiryConfirmation is the visitor-facing receipt, fully localized by the
// caller.
type InquiryConfirmation struct {
	Subject    string
	Greeting   string
	Paragraphs []string
	Details    []DetailRow
	Closing    string
	TeamName   string
}

// Sender delivers inquiry emails. Implementations must be safe for
// concurrent use.
type Sender interface {
	// Configured reports whether the sender can actually deliver email.
	// Callers surface a configuration error instead of silently dropping
	// leads when this is false.
	Configured() bool
	SendInquiryNotification(ctx context.Context, toEmail string, data InquiryNotification) error
	SendInquiryConfirmation(ctx context.Context, toEmail string, data InquiryConfirmation) error
}

// NoopSender is the stand-in when no email provider is configured.
type NoopSender struct{}

func (NoopSender) Configured() bool { return false }

func (NoopSender) SendInquiryNotification(ctx context.Context, toEmail string, data InquiryNotification) error {
	return nil
}

func (NoopSender) SendInquiryConfirmation(ctx context.Context, toEmail string, data InquiryConfirmation) error {
	return nil
}

// NewSender builds the sender matching the configured provider. An empty
// or disabled configuration yields a NoopSender rather than an error so
// the rest of the application can start without email credentials.
func NewSender(cfg config.EmailConfig) (Sender, error) {
	if !cfg.GetEmailEnabled() {
		return NoopSender{}, nil
	}

	switch cfg.GetEmailProvider() {
	case "brevo":
		return NewBrevoSender(cfg), nil
	case "smtp":
		return NewSMTPSender(cfg), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.GetEmailProvider())
	}
}
