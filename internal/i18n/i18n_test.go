package i18n

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Locale
	}{
		{"hu", Hungarian},
		{"en", English},
		{"en-US", English},
		{"DE", German},
		{"zh-Hans", Chinese},
		{"he", Hebrew},
		{"vi", Vietnamese},
		{"ru", Russian},
		{"", Default},
		{"not a tag!", Default},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			if got := Parse(tc.in); got != tc.want {
				t.Fatalf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestPathSuffix(t *testing.T) {
	if got := Hungarian.PathSuffix(); got != "" {
		t.Fatalf("hungarian should carry no path segment, got %q", got)
	}
	if got := German.PathSuffix(); got != "/de" {
		t.Fatalf("expected /de, got %q", got)
	}
}

func TestIsSupported(t *testing.T) {
	if !IsSupported("hu") {
		t.Fatal("hu should be supported")
	}
	if IsSupported("fr") {
		t.Fatal("fr is not a published locale")
	}
	if IsSupported("en-US") {
		t.Fatal("IsSupported matches exact codes only")
	}
}

func TestLabelFallbacks(t *testing.T) {
	const unknown = Locale("fr")
	if got := PresentedBy(unknown); got != PresentedBy(English) {
		t.Fatalf("expected english fallback, got %q", got)
	}
	if got := ShareTitle(unknown); got != ShareTitle(English) {
		t.Fatalf("expected english fallback, got %q", got)
	}
	if got := EmbedCTA(unknown); got != "View Property" {
		t.Fatalf("expected english embed CTA, got %q", got)
	}
}

func TestLabelsCoverAllLocales(t *testing.T) {
	for _, l := range Supported {
		if PresentedBy(l) == "" || ShareTitle(l) == "" || EmbedCTA(l) == "" {
			t.Fatalf("locale %s is missing a label", l)
		}
	}
}
