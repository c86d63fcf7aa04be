// Package attribution captures marketing attribution parameters (UTM fields
// and agent referral slugs) from incoming page URLs and keeps them for the
// lifetime of a visitor's browsing session.
//
// The parameter set is closed: anything outside the six recognized keys is
// ignored. A capture that finds at least one recognized key replaces the
// stored set wholesale; a capture that finds none leaves the stored set
// untouched. Storage failures degrade to "no attribution" and never surface
// to the visitor.
package attribution

import "net/url"

// Key is a recognized attribution query parameter.
type Key string

const (
	KeyUTMSource   Key = "utm_source"
	KeyUTMMedium   Key = "utm_medium"
	KeyUTMCampaign Key = "utm_campaign"
	KeyUTMTerm     Key = "utm_term"
	KeyUTMContent  Key = "utm_content"
	KeyRef         Key = "ref"
)

// Keys lists every recognized attribution parameter, in capture order.
var Keys = []Key{KeyUTMSource, KeyUTMMedium, KeyUTMCampaign, KeyUTMTerm, KeyUTMContent, KeyRef}

// Params maps recognized attribution keys to their captured values.
// All entries are optional; an empty map means "no attribution".
type Params map[Key]string

// FromQuery extracts the recognized attribution keys from a parsed query
// string. Unrecognized parameters and empty values are dropped.
func FromQuery(query url.Values) Params {
	params := Params{}
	for _, key := range Keys {
		if value := query.Get(string(key)); value != "" {
			params[key] = value
		}
	}
	return params
}

// Ref returns the referral slug, or "" when the visit carries none.
func (p Params) Ref() string {
	return p[KeyRef]
}

// IsZero reports whether no attribution was captured.
func (p Params) IsZero() bool {
	return len(p) == 0
}
