// Package embed renders the self-contained property card snippet partner
// sites drop into an iframe. The markup carries only inline styles so it
// renders identically regardless of the host page's stylesheet.
package embed

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"

	"github.com/dobomatyas-blip/getluxsold-website/internal/i18n"
	"github.com/dobomatyas-blip/getluxsold-website/internal/property"
	"github.com/dobomatyas-blip/getluxsold-website/internal/referral"
)

// Options select what the widget shows and where its CTA points.
type Options struct {
	Slug string
	Ref  string
	Lang string
}

type widgetData struct {
	Listing     property.Listing
	SiteBaseURL string
	HeroURL     string
	PropertyURL string
	CTA         string
}

var widgetTemplate = template.Must(template.New("widget").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><meta name="viewport" content="width=device-width,initial-scale=1"></head>
<body style="margin:0;padding:0;font-family:system-ui,-apple-system,sans-serif">
<div style="max-width:400px;border:1px solid #e2e8f0;border-radius:12px;overflow:hidden;background:#fff;box-shadow:0 1px 3px rgba(0,0,0,0.1)">
  <div style="position:relative;aspect-ratio:16/10;overflow:hidden">
    <img src="{{.HeroURL}}" alt="{{.Listing.Title}}" style="width:100%;height:100%;object-fit:cover" />
    <div style="position:absolute;top:12px;left:12px;background:#f59e0b;color:#fff;font-size:11px;font-weight:600;padding:4px 10px;border-radius:20px;letter-spacing:0.5px">EXCLUSIVE</div>
  </div>
  <div style="padding:16px 20px">
    <h3 style="margin:0 0 4px;font-size:18px;font-weight:700;color:#0f172a">{{.Listing.Title}}</h3>
    <p style="margin:0 0 12px;font-size:13px;color:#64748b">{{.Listing.District}}, {{.Listing.City}}</p>
    <div style="display:flex;gap:16px;margin-bottom:16px;font-size:12px;color:#475569">
      <span><strong style="color:#0f172a">{{.Listing.AreaM2}} m&#178;</strong></span>
      <span><strong style="color:#0f172a">{{.Listing.Rooms}}</strong> rooms</span>
      <span><strong style="color:#f59e0b">{{.Listing.PriceLabel}}</strong></span>
    </div>
    <a href="{{.PropertyURL}}" target="_blank" rel="noopener" style="display:block;text-align:center;background:linear-gradient(135deg,#f59e0b,#d97706);color:#fff;font-size:14px;font-weight:600;padding:10px 20px;border-radius:8px;text-decoration:none">{{.CTA}}</a>
    <div style="margin-top:12px;text-align:center">
      <a href="{{.SiteBaseURL}}" target="_blank" rel="noopener" style="font-size:10px;color:#94a3b8;text-decoration:none">Powered by <strong style="color:#f59e0b">GetLuxSold</strong></a>
    </div>
  </div>
</div>
</body>
</html>`))

// Generator renders embed widgets against the configured site base URL.
type Generator struct {
	siteBaseURL string
}

func NewGenerator(siteBaseURL string) *Generator {
	return &Generator{siteBaseURL: siteBaseURL}
}

// Generate renders the widget HTML. Unknown slugs fall back to the default
// listing and unknown languages to the English CTA, so the widget never
// renders broken.
func (g *Generator) Generate(opts Options) (string, error) {
	listing := property.Get(opts.Slug)
	locale := i18n.Parse(opts.Lang)

	propertyURL := referral.PropertyURL(g.siteBaseURL, listing.Slug, locale)
	if opts.Ref != "" {
		propertyURL += "?ref=" + url.QueryEscape(opts.Ref)
	}

	data := widgetData{
		Listing:     listing,
		SiteBaseURL: g.siteBaseURL,
		HeroURL:     g.siteBaseURL + listing.HeroImage,
		PropertyURL: propertyURL,
		CTA:         i18n.EmbedCTA(locale),
	}

	var buf bytes.Buffer
	if err := widgetTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render embed widget: %w", err)
	}
	return buf.String(), nil
}
