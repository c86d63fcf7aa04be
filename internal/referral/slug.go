// Package referral derives agent referral slugs from display names, renders
// them back for co-branding banners, and builds the attributed share links
// the share bar and agent sign-up flow hand out.
package referral

import (
	"regexp"
	"strings"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	nonSlugChars   = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify derives a URL-safe referral slug from an agent display name:
// lowercase, whitespace runs collapse to a single hyphen, and everything
// outside [a-z0-9-] is stripped. The transform is lossy: case, apostrophes
// and accents do not survive ("Jane O'Brien" becomes "jane-obrien").
func Slugify(displayName string) string {
	slug := strings.ToLower(strings.TrimSpace(displayName))
	slug = whitespaceRuns.ReplaceAllString(slug, "-")
	slug = nonSlugChars.ReplaceAllString(slug, "")
	return slug
}

// Deslugify renders a referral slug back into a display name by capitalizing
// each hyphen-separated token ("jane-obrien" → "Jane Obrien"). It is a
// best-effort approximate inverse of Slugify, not an exact one: punctuation
// and original capitalization are gone for good. An empty slug yields an
// empty name, which callers must treat as "no agent".
func Deslugify(slug string) string {
	if slug == "" {
		return ""
	}
	tokens := strings.Split(slug, "-")
	for i, token := range tokens {
		if token == "" {
			continue
		}
		tokens[i] = strings.ToUpper(token[:1]) + token[1:]
	}
	return strings.Join(tokens, " ")
}
