package referral

import (
	"net/url"
	"strings"
	"testing"

	"github.com/dobomatyas-blip/getluxsold-website/internal/i18n"
)

func mustParseQuery(t *testing.T, rawURL string) url.Values {
	t.Helper()
	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("parse %q: %v", rawURL, err)
	}
	return u.Query()
}

func TestBuildShareURL_PreservesExistingQuery(t *testing.T) {
	got, err := BuildShareURL("https://x.com/p?a=1", ShareParams{
		Source:   "facebook",
		Medium:   "social",
		Campaign: "slug1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := mustParseQuery(t, got)
	if q.Get("a") != "1" {
		t.Fatalf("existing param a=1 lost, got %q", got)
	}
	if q.Get("utm_source") != "facebook" || q.Get("utm_medium") != "social" || q.Get("utm_campaign") != "slug1" {
		t.Fatalf("utm params missing or wrong: %q", got)
	}
}

func TestBuildShareURL_ReplacesRatherThanAppends(t *testing.T) {
	first, err := BuildShareURL("https://x.com/p?a=1", ShareParams{
		Source: "facebook", Medium: "social", Campaign: "slug1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := BuildShareURL(first, ShareParams{
		Source: "twitter", Medium: "social", Campaign: "slug1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q := mustParseQuery(t, second)
	if got := q["utm_source"]; len(got) != 1 || got[0] != "twitter" {
		t.Fatalf("expected a single utm_source=twitter, got %v in %q", got, second)
	}
	if q.Get("a") != "1" {
		t.Fatalf("existing param a=1 lost after rebuild: %q", second)
	}
}

func TestBuildShareURL_RefOnlyWhenSet(t *testing.T) {
	withoutRef, err := BuildShareURL("https://x.com/p", ShareParams{
		Source: "linkedin", Medium: "social", Campaign: "c",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q := mustParseQuery(t, withoutRef); q.Has("ref") {
		t.Fatalf("ref should be absent when not set: %q", withoutRef)
	}

	withRef, err := BuildShareURL("https://x.com/p", ShareParams{
		Source: "linkedin", Medium: "social", Campaign: "c", Ref: "jane-doe",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q := mustParseQuery(t, withRef); q.Get("ref") != "jane-doe" {
		t.Fatalf("expected ref=jane-doe, got %q", withRef)
	}
}

func TestBuildShareURL_BadBaseURL(t *testing.T) {
	if _, err := BuildShareURL("http://%zz-not-a-url", ShareParams{Source: "x"}); err == nil {
		t.Fatal("expected error for malformed base URL")
	}
}

func TestNavigateURL(t *testing.T) {
	const share = "https://getluxsold.com/properties/bem-rakpart-26?utm_source=facebook"

	cases := []struct {
		target   ShareTarget
		contains []string
	}{
		{TargetFacebook, []string{"facebook.com/sharer/sharer.php", "u="}},
		{TargetLinkedIn, []string{"linkedin.com/sharing/share-offsite", "url="}},
		{TargetTwitter, []string{"twitter.com/intent/tweet", "url=", "text="}},
		{TargetWhatsApp, []string{"wa.me", "text="}},
		{TargetEmail, []string{"mailto:", "subject=", "body="}},
	}

	for _, tc := range cases {
		t.Run(string(tc.target), func(t *testing.T) {
			got := NavigateURL(tc.target, share, i18n.ShareTitle(i18n.English))
			for _, want := range tc.contains {
				if !strings.Contains(got, want) {
					t.Fatalf("NavigateURL(%s) = %q, missing %q", tc.target, got, want)
				}
			}
		})
	}
}

func TestNavigateURL_CopyTargetsReturnShareURL(t *testing.T) {
	const share = "https://getluxsold.com/properties/bem-rakpart-26"
	for _, target := range []ShareTarget{TargetLinkCopy, TargetNativeShare} {
		if got := NavigateURL(target, share, i18n.ShareTitle(i18n.English)); got != share {
			t.Fatalf("NavigateURL(%s) = %q, want share URL unchanged", target, got)
		}
	}
}

func TestPropertyURL(t *testing.T) {
	base := "https://getluxsold.com"

	if got := PropertyURL(base, "bem-rakpart-26", i18n.Hungarian); got != "https://getluxsold.com/properties/bem-rakpart-26" {
		t.Fatalf("hungarian path should have no locale suffix, got %q", got)
	}
	if got := PropertyURL(base, "bem-rakpart-26", i18n.German); got != "https://getluxsold.com/properties/bem-rakpart-26/de" {
		t.Fatalf("expected /de suffix, got %q", got)
	}
}

func TestReferralLink(t *testing.T) {
	slug, link := ReferralLink("https://getluxsold.com", "bem-rakpart-26", "Jane O'Brien", i18n.English)
	if slug != "jane-obrien" {
		t.Fatalf("expected slug jane-obrien, got %q", slug)
	}
	q := mustParseQuery(t, link)
	if q.Get("ref") != "jane-obrien" {
		t.Fatalf("expected ref=jane-obrien in link, got %q", link)
	}
	if !strings.Contains(link, "/properties/bem-rakpart-26/en?") {
		t.Fatalf("expected english property path in link, got %q", link)
	}
}
