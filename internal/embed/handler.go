package embed

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dobomatyas-blip/getluxsold-website/platform/logger"
)

type Handler struct {
	gen *Generator
	log *logger.Logger
}

func NewHandler(gen *Generator, log *logger.Logger) *Handler {
	return &Handler{gen: gen, log: log}
}

// Widget handles GET /api/embed. The response is always 200 text/html: a
// broken iframe on a partner site is worse than a fallback card. The frame
// and CORS headers deliberately open this one endpoint to any origin.
func (h *Handler) Widget(c *gin.Context) {
	opts := Options{
		Slug: c.Query("slug"),
		Ref:  c.Query("ref"),
		Lang: c.Query("lang"),
	}

	html, err := h.gen.Generate(opts)
	if err != nil {
		// Template execution over static data should never fail; log and
		// fall back to the default card rather than surface an error page.
		h.log.Error("embed widget render failed", "error", err, "slug", opts.Slug)
		html, _ = h.gen.Generate(Options{})
	}

	c.Header("X-Frame-Options", "ALLOWALL")
	c.Header("Access-Control-Allow-Origin", "*")
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
