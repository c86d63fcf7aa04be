package referral

import (
	"net/http"
	"strconv"

	"github.com/dobomatyas-blip/getluxsold-website/internal/events"
	"github.com/dobomatyas-blip/getluxsold-website/internal/i18n"
	"github.com/dobomatyas-blip/getluxsold-website/platform/httpkit"
	"github.com/dobomatyas-blip/getluxsold-website/platform/validator"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// ReferralLinkRequest asks for a personalized referral link for an agent.
type ReferralLinkRequest struct {
	AgentName    string `json:"agentName" validate:"required,min=1,max=100"`
	PropertySlug string `json:"propertySlug" validate:"required,max=100"`
	Language     string `json:"language,omitempty" validate:"omitempty,max=10"`
}

// ReferralLinkResponse carries the derived slug, its display rendering, and
// the ready-to-share link.
type ReferralLinkResponse struct {
	AgentSlug   string `json:"agentSlug"`
	DisplayName string `json:"displayName"`
	URL         string `json:"url"`
}

// ShareLinkRequest asks for an attributed share URL for a platform.
type ShareLinkRequest struct {
	Platform     string `json:"platform" validate:"required,max=20"`
	PropertySlug string `json:"propertySlug" validate:"required,max=100"`
	BaseURL      string `json:"baseUrl,omitempty" validate:"omitempty,max=2048"`
	Ref          string `json:"ref,omitempty" validate:"omitempty,max=100"`
	Language     string `json:"language,omitempty" validate:"omitempty,max=10"`
}

// ShareLinkResponse carries the attributed URL plus the platform navigation
// wrapper the client opens.
type ShareLinkResponse struct {
	ShareURL    string `json:"shareUrl"`
	NavigateURL string `json:"navigateUrl"`
}

// AgentResponse is the co-branding banner payload for a referral slug.
type AgentResponse struct {
	AgentSlug   string `json:"agentSlug"`
	DisplayName string `json:"displayName"`
	BannerText  string `json:"bannerText,omitempty"`
}

// Handler serves referral and share link endpoints.
type Handler struct {
	siteBaseURL string
	bus         events.Bus
	val         *validator.Validator
}

// NewHandler creates a referral handler.
func NewHandler(siteBaseURL string, bus events.Bus, val *validator.Validator) *Handler {
	return &Handler{siteBaseURL: siteBaseURL, bus: bus, val: val}
}

// CreateReferralLink handles POST /api/v1/referral-links. Called after a
// successful agent sign-up to hand the agent their personalized link.
func (h *Handler) CreateReferralLink(c *gin.Context) {
	var req ReferralLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}

	locale := i18n.Parse(req.Language)
	slug, link := ReferralLink(h.siteBaseURL, req.PropertySlug, req.AgentName, locale)
	if slug == "" {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}

	httpkit.OK(c, ReferralLinkResponse{
		AgentSlug:   slug,
		DisplayName: Deslugify(slug),
		URL:         link,
	})
}

// GetAgent handles GET /api/v1/referral-links/:slug. Returns the banner
// payload for an incoming referral visit; an unknown or empty slug is not an
// error, the banner simply renders nothing.
func (h *Handler) GetAgent(c *gin.Context) {
	slug := Slugify(c.Param("slug"))
	name := Deslugify(slug)

	resp := AgentResponse{AgentSlug: slug, DisplayName: name}
	if name != "" {
		locale := i18n.Parse(c.Query("lang"))
		resp.BannerText = i18n.PresentedBy(locale) + " " + name
	}
	httpkit.OK(c, resp)
}

// CreateShareLink handles POST /api/v1/share-links. Builds the attributed
// URL for a destination platform and records the share event.
func (h *Handler) CreateShareLink(c *gin.Context) {
	var req ShareLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if !IsValidTarget(req.Platform) {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}

	locale := i18n.Parse(req.Language)
	baseURL := req.BaseURL
	if baseURL == "" {
		baseURL = PropertyURL(h.siteBaseURL, req.PropertySlug, locale)
	}

	shareURL, err := BuildShareURL(baseURL, ShareParams{
		Source:   req.Platform,
		Medium:   "social",
		Campaign: req.PropertySlug,
		Ref:      req.Ref,
	})
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}

	h.bus.Publish(c.Request.Context(), events.ShareLinkBuilt{
		BaseEvent:    events.NewBaseEvent(),
		SessionID:    httpkit.SessionID(c),
		Platform:     req.Platform,
		PropertySlug: req.PropertySlug,
		Language:     string(locale),
	})

	httpkit.OK(c, ShareLinkResponse{
		ShareURL:    shareURL,
		NavigateURL: NavigateURL(ShareTarget(req.Platform), shareURL, i18n.ShareTitle(locale)),
	})
}

const (
	qrDefaultSize = 200
	qrMaxSize     = 1024
)

// QRCode handles GET /api/v1/share-links/qr?url=&size=. Returns a PNG QR
// code for a share URL so agents can drop it into print material.
func (h *Handler) QRCode(c *gin.Context) {
	target := c.Query("url")
	if target == "" {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}

	size := qrDefaultSize
	if raw := c.Query("size"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			size = min(parsed, qrMaxSize)
		}
	}

	png, err := qrcode.Encode(target, qrcode.Medium, size)
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
