package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dobomatyas-blip/getluxsold-website/platform/config"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoSender delivers email through the Brevo transactional HTTP API.
type BrevoSender struct {
	apiKey    string
	fromName  string
	fromEmail string
	endpoint  string
	client    *http.Client
}

type brevoEmailRequest struct {
	Sender struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"sender"`
	To []struct {
		Email string `json:"email"`
	} `json:"to"`
	Subject     string `json:"subject"`
	HTMLContent string `json:"htmlContent"`
}

func NewBrevoSender(cfg config.EmailConfig) *BrevoSender {
	return &BrevoSender{
		apiKey:    cfg.GetBrevoAPIKey(),
		fromName:  cfg.GetEmailFromName(),
		fromEmail: cfg.GetEmailFromAddress(),
		endpoint:  brevoEndpoint,
		client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (b *BrevoSender) Configured() bool { return b.apiKey != "" }

func (b *BrevoSender) SendInquiryNotification(ctx context.Context, toEmail string, data InquiryNotification) error {
	content, err := renderEmailTemplate("notification.html", data)
	if err != nil {
		return err
	}
	return b.send(ctx, toEmail, data.Subject, content)
}

func (b *BrevoSender) SendInquiryConfirmation(ctx context.Context, toEmail string, data InquiryConfirmation) error {
	content, err := renderEmailTemplate("confirmation.html", data)
	if err != nil {
		return err
	}
	return b.send(ctx, toEmail, data.Subject, content)
}

func (b *BrevoSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	payload := brevoEmailRequest{
		Subject:     subject,
		HTMLContent: htmlContent,
	}
	payload.Sender.Name = b.fromName
	payload.Sender.Email = b.fromEmail
	payload.To = []struct {
		Email string `json:"email"`
	}{{Email: toEmail}}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("api-key", b.apiKey)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("brevo send failed: status %d: %s", resp.StatusCode, string(data))
	}

	return nil
}
