package referral

import (
	"fmt"
	"net/url"

	"github.com/dobomatyas-blip/getluxsold-website/internal/i18n"
)

// ShareTarget is a destination platform for an outbound share link.
type ShareTarget string

const (
	TargetFacebook    ShareTarget = "facebook"
	TargetLinkedIn    ShareTarget = "linkedin"
	TargetTwitter     ShareTarget = "twitter"
	TargetWhatsApp    ShareTarget = "whatsapp"
	TargetEmail       ShareTarget = "email"
	TargetLinkCopy    ShareTarget = "link_copy"
	TargetNativeShare ShareTarget = "native_share"
)

// Targets lists every supported share destination.
var Targets = []ShareTarget{
	TargetFacebook, TargetLinkedIn, TargetTwitter, TargetWhatsApp,
	TargetEmail, TargetLinkCopy, TargetNativeShare,
}

// IsValidTarget reports whether s names a supported share destination.
func IsValidTarget(s string) bool {
	for _, t := range Targets {
		if string(t) == s {
			return true
		}
	}
	return false
}

// ShareParams are the attribution parameters stamped onto a share URL.
type ShareParams struct {
	Source   string
	Medium   string
	Campaign string
	Ref      string
}

// BuildShareURL parses baseURL and sets utm_source, utm_medium, utm_campaign
// and (when non-empty) ref on its query string, overwriting any existing
// values for those keys and leaving every other query parameter untouched.
// The function is pure and idempotent: rebuilding an already-parameterized
// URL replaces rather than duplicates the attribution keys.
func BuildShareURL(baseURL string, params ShareParams) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse share base url: %w", err)
	}

	query := parsed.Query()
	query.Set("utm_source", params.Source)
	query.Set("utm_medium", params.Medium)
	query.Set("utm_campaign", params.Campaign)
	if params.Ref != "" {
		query.Set("ref", params.Ref)
	}
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

// NavigateURL wraps a share URL in the destination platform's share intent.
// For link_copy and native_share the share URL itself is the navigation
// target (the client copies it or hands it to the OS share sheet).
func NavigateURL(target ShareTarget, shareURL, title string) string {
	switch target {
	case TargetFacebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(shareURL)
	case TargetLinkedIn:
		return "https://www.linkedin.com/sharing/share-offsite/?url=" + url.QueryEscape(shareURL)
	case TargetTwitter:
		return "https://twitter.com/intent/tweet?url=" + url.QueryEscape(shareURL) + "&text=" + url.QueryEscape(title)
	case TargetWhatsApp:
		return "https://wa.me/?text=" + url.QueryEscape(title+"\n"+shareURL)
	case TargetEmail:
		return "mailto:?subject=" + url.QueryEscape(title) + "&body=" + url.QueryEscape(title+"\n\n"+shareURL)
	default:
		return shareURL
	}
}

// PropertyURL builds the canonical public URL for a property page in a
// locale, honoring the locale-path convention (the path-default locale has
// no language segment).
func PropertyURL(siteBaseURL, propertySlug string, locale i18n.Locale) string {
	return siteBaseURL + "/properties/" + propertySlug + locale.PathSuffix()
}

// ReferralLink builds the personalized link handed to an agent after
// sign-up: the localized property URL carrying the agent's referral slug.
func ReferralLink(siteBaseURL, propertySlug, agentName string, locale i18n.Locale) (slug, link string) {
	slug = Slugify(agentName)
	link = PropertyURL(siteBaseURL, propertySlug, locale)
	if slug != "" {
		link += "?ref=" + url.QueryEscape(slug)
	}
	return slug, link
}
