package attribution

import (
	"net/http"

	"github.com/dobomatyas-blip/getluxsold-website/internal/i18n"
	"github.com/dobomatyas-blip/getluxsold-website/platform/httpkit"
	"github.com/dobomatyas-blip/getluxsold-website/platform/validator"

	"github.com/gin-gonic/gin"
)

// CaptureRequest is sent once per page load with the full URL the visitor
// arrived on. Slug and language ride along for the referral-visit event.
type CaptureRequest struct {
	URL          string `json:"url" validate:"required,max=2048"`
	PropertySlug string `json:"propertySlug,omitempty" validate:"omitempty,max=100"`
	Language     string `json:"language,omitempty" validate:"omitempty,max=10"`
}

// ParamsResponse returns the attribution set active for the session.
type ParamsResponse struct {
	Params map[string]string `json:"params"`
}

// Handler serves the session attribution endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

// NewHandler creates an attribution handler.
func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Capture handles POST /api/v1/attribution/capture.
func (h *Handler) Capture(c *gin.Context) {
	var req CaptureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "Invalid request")
		return
	}

	locale := i18n.Parse(req.Language)
	params := h.svc.Capture(c.Request.Context(), httpkit.SessionID(c), req.URL, req.PropertySlug, string(locale))
	httpkit.OK(c, toResponse(params))
}

// Stored handles GET /api/v1/attribution. Returns the stored set, empty when
// nothing was captured or the store is unavailable.
func (h *Handler) Stored(c *gin.Context) {
	params := h.svc.Stored(c.Request.Context(), httpkit.SessionID(c))
	httpkit.OK(c, toResponse(params))
}

func toResponse(params Params) ParamsResponse {
	out := make(map[string]string, len(params))
	for key, value := range params {
		out[string(key)] = value
	}
	return ParamsResponse{Params: out}
}
