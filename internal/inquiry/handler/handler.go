// Package handler exposes the lead intake HTTP endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dobomatyas-blip/getluxsold-website/internal/inquiry/service"
	"github.com/dobomatyas-blip/getluxsold-website/internal/inquiry/transport"
	"github.com/dobomatyas-blip/getluxsold-website/platform/httpkit"
	"github.com/dobomatyas-blip/getluxsold-website/platform/validator"
)

const msgInvalidRequest = "Invalid request"

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// SubmitInquiry handles POST /api/inquiry.
func (h *Handler) SubmitInquiry(c *gin.Context) {
	var req transport.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	err := h.svc.SubmitInquiry(c.Request.Context(), httpkit.SessionID(c), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Success(c)
}

// SubmitServiceInquiry handles POST /api/service-inquiry.
func (h *Handler) SubmitServiceInquiry(c *gin.Context) {
	var req transport.ServiceInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	err := h.svc.SubmitServiceInquiry(c.Request.Context(), httpkit.SessionID(c), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Success(c)
}
