// Package i18n defines the closed set of locales the site is published in
// and the small label dictionaries the backend needs when it generates
// user-visible text (co-branding banners, share titles, embed widgets).
//
// Lookups go through Resolve-style helpers with an explicit fallback rather
// than relying on map misses.
package i18n

import "golang.org/x/text/language"

// Locale is a supported site locale code.
type Locale string

const (
	Hungarian  Locale = "hu"
	English    Locale = "en"
	German     Locale = "de"
	Chinese    Locale = "zh"
	Hebrew     Locale = "he"
	Vietnamese Locale = "vi"
	Russian    Locale = "ru"
)

// Default is the fallback locale for labels that are not translated.
const Default = English

// PathDefault is the locale that carries no URL path prefix. The property
// site's primary market is Hungary, so Hungarian pages live at the root and
// every other locale gets a /{lang} segment.
const PathDefault = Hungarian

// Supported lists all published locales in display order.
var Supported = []Locale{Hungarian, English, German, Chinese, Hebrew, Vietnamese, Russian}

var matcher = language.NewMatcher([]language.Tag{
	language.Hungarian,
	language.English,
	language.German,
	language.Chinese,
	language.Hebrew,
	language.Vietnamese,
	language.Russian,
})

// Parse normalizes an arbitrary language tag ("en-US", "DE", "zh-Hans") to a
// supported Locale. Unknown or empty input resolves to Default.
func Parse(s string) Locale {
	if s == "" {
		return Default
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Default
	}
	_, index, conf := matcher.Match(tag)
	if conf == language.No {
		return Default
	}
	return Supported[index]
}

// IsSupported reports whether the exact code is a published locale.
func IsSupported(s string) bool {
	for _, l := range Supported {
		if string(l) == s {
			return true
		}
	}
	return false
}

// PathSuffix returns the URL path segment for a locale: "" for the path
// default, "/{lang}" for everything else. Property pages carry it after the
// slug ("/properties/bem-rakpart-26/de").
func (l Locale) PathSuffix() string {
	if l == PathDefault {
		return ""
	}
	return "/" + string(l)
}

var presentedBy = map[Locale]string{
	Hungarian:  "Bemutatja",
	English:    "Presented by",
	German:     "Präsentiert von",
	Chinese:    "推荐人",
	Hebrew:     "מוצג על ידי",
	Vietnamese: "Giới thiệu bởi",
	Russian:    "Представлено",
}

// PresentedBy returns the co-branding banner prefix for a locale.
func PresentedBy(l Locale) string {
	if s, ok := presentedBy[l]; ok {
		return s
	}
	return presentedBy[Default]
}

var shareTitles = map[Locale]string{
	Hungarian:  "Nézd meg ezt a luxus ingatlant",
	English:    "Check out this luxury property",
	German:     "Sehen Sie sich diese Luxusimmobilie an",
	Chinese:    "看看这个豪华房产",
	Hebrew:     "צפה בנכס היוקרה הזה",
	Vietnamese: "Xem bất động sản cao cấp này",
	Russian:    "Посмотрите эту элитную недвижимость",
}

// ShareTitle returns the localized share message headline.
func ShareTitle(l Locale) string {
	if s, ok := shareTitles[l]; ok {
		return s
	}
	return shareTitles[Default]
}

var embedCTAs = map[Locale]string{
	Hungarian:  "Megtekintés",
	English:    "View Property",
	German:     "Immobilie ansehen",
	Chinese:    "查看详情",
	Hebrew:     "צפה בנכס",
	Vietnamese: "Xem chi tiết",
	Russian:    "Подробнее",
}

// EmbedCTA returns the call-to-action label for the embeddable widget.
func EmbedCTA(l Locale) string {
	if s, ok := embedCTAs[l]; ok {
		return s
	}
	return embedCTAs[Default]
}
