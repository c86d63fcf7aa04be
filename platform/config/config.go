// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// EmailConfig provides settings for email sending.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetEmailProvider() string
	GetBrevoAPIKey() string
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
}

// InquiryConfig provides recipient settings for the lead intake module.
type InquiryConfig interface {
	GetInquiryNotifyEmail() string
	GetServiceInquiryNotifyEmail() string
}

// AnalyticsConfig provides settings for the GA4 Measurement Protocol emitter.
// An empty measurement ID disables analytics entirely.
type AnalyticsConfig interface {
	GetGAMeasurementID() string
	GetGAAPISecret() string
}

// SessionStoreConfig provides settings for the attribution session store.
type SessionStoreConfig interface {
	GetRedisURL() string
	GetAttributionTTL() time.Duration
	GetSessionCookieName() string
}

// SiteConfig provides the canonical public site settings used when
// generating outbound links (share links, referral links, embed widgets).
type SiteConfig interface {
	GetSiteBaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                       string
	HTTPAddr                  string
	SiteBaseURL               string
	CORSAllowAll              bool
	CORSOrigins               []string
	RateLimitRPS              float64
	RateLimitBurst            int
	EmailEnabled              bool
	EmailProvider             string
	BrevoAPIKey               string
	SMTPHost                  string
	SMTPPort                  int
	SMTPUsername              string
	SMTPPassword              string
	EmailFromName             string
	EmailFromAddress          string
	InquiryNotifyEmail        string
	ServiceInquiryNotifyEmail string
	GAMeasurementID           string
	GAAPISecret               string
	RedisURL                  string
	AttributionTTL            time.Duration
	SessionCookieName         string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// EmailConfig implementation
func (c *Config) GetEmailEnabled() bool       { return c.EmailEnabled }
func (c *Config) GetEmailProvider() string    { return c.EmailProvider }
func (c *Config) GetBrevoAPIKey() string      { return c.BrevoAPIKey }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }

// InquiryConfig implementation
func (c *Config) GetInquiryNotifyEmail() string        { return c.InquiryNotifyEmail }
func (c *Config) GetServiceInquiryNotifyEmail() string { return c.ServiceInquiryNotifyEmail }

// AnalyticsConfig implementation
func (c *Config) GetGAMeasurementID() string { return c.GAMeasurementID }
func (c *Config) GetGAAPISecret() string     { return c.GAAPISecret }

// SessionStoreConfig implementation
func (c *Config) GetRedisURL() string                { return c.RedisURL }
func (c *Config) GetAttributionTTL() time.Duration   { return c.AttributionTTL }
func (c *Config) GetSessionCookieName() string       { return c.SessionCookieName }

// SiteConfig implementation
func (c *Config) GetSiteBaseURL() string { return c.SiteBaseURL }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string       { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool     { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string  { return c.CORSOrigins }
func (c *Config) GetRateLimitRPS() float64  { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int    { return c.RateLimitBurst }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "https://getluxsold.com"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	provider := strings.ToLower(getEnv("EMAIL_PROVIDER", "brevo"))
	brevoAPIKey := getEnv("BREVO_API_KEY", "")
	smtpHost := getEnv("SMTP_HOST", "")
	emailEnabled := strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true")
	switch provider {
	case "brevo":
		emailEnabled = emailEnabled && brevoAPIKey != ""
	case "smtp":
		emailEnabled = emailEnabled && smtpHost != ""
	default:
		return nil, fmt.Errorf("EMAIL_PROVIDER must be brevo or smtp, got %q", provider)
	}

	cfg := &Config{
		Env:                       getEnv("APP_ENV", "development"),
		HTTPAddr:                  getEnv("HTTP_ADDR", ":8080"),
		SiteBaseURL:               strings.TrimRight(getEnv("SITE_BASE_URL", "https://getluxsold.com"), "/"),
		CORSAllowAll:              corsAllowAll,
		CORSOrigins:               corsOrigins,
		RateLimitRPS:              mustFloat(getEnv("RATE_LIMIT_RPS", "5")),
		RateLimitBurst:            mustInt(getEnv("RATE_LIMIT_BURST", "10")),
		EmailEnabled:              emailEnabled,
		EmailProvider:             provider,
		BrevoAPIKey:               brevoAPIKey,
		SMTPHost:                  smtpHost,
		SMTPPort:                  mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:              getEnv("SMTP_USERNAME", ""),
		SMTPPassword:              getEnv("SMTP_PASSWORD", ""),
		EmailFromName:             getEnv("EMAIL_FROM_NAME", "Bem rakpart 26"),
		EmailFromAddress:          getEnv("EMAIL_FROM_ADDRESS", "onboarding@resend.dev"),
		InquiryNotifyEmail:        getEnv("INQUIRY_NOTIFY_EMAIL", "dobomatyas@me.com"),
		ServiceInquiryNotifyEmail: getEnv("SERVICE_INQUIRY_NOTIFY_EMAIL", "info@endlesssolutions.net"),
		GAMeasurementID:           getEnv("GA_MEASUREMENT_ID", ""),
		GAAPISecret:               getEnv("GA_API_SECRET", ""),
		RedisURL:                  getEnv("REDIS_URL", ""),
		AttributionTTL:            mustDuration(getEnv("ATTRIBUTION_TTL", "24h")),
		SessionCookieName:         getEnv("SESSION_COOKIE_NAME", "glx_session"),
	}

	if cfg.EmailEnabled && cfg.EmailFromAddress == "" {
		return nil, fmt.Errorf("EMAIL_FROM_ADDRESS is required when email is enabled")
	}
	if cfg.GAMeasurementID != "" && cfg.GAAPISecret == "" {
		return nil, fmt.Errorf("GA_API_SECRET is required when GA_MEASUREMENT_ID is set")
	}
	if cfg.AttributionTTL <= 0 {
		return nil, fmt.Errorf("ATTRIBUTION_TTL must be a positive duration")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
