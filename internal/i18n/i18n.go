// Package i18n holds the translated UI strings for the board.
package i18n

import "strings"

// DefaultLang is used when no supported language is requested.
const DefaultLang = "en"

var messages = map[string]map[string]string{
	"en": {
		"title":        "Random profiles",
		"subtitle":     "Pick a card. Fate decides.",
		"close":        "Close",
		"theme_light":  "Light",
		"theme_dark":   "Dark",
		"open_profile": "Open profile",
		"language":     "Language",
	},
	"fr": {
		"title":        "Profils aléatoires",
		"subtitle":     "Choisissez une carte. Le hasard décide.",
		"close":        "Fermer",
		"theme_light":  "Clair",
		"theme_dark":   "Sombre",
		"open_profile": "Ouvrir le profil",
		"language":     "Langue",
	},
}

// Supported reports whether lang has a translation table.
func Supported(lang string) bool {
	_, ok := messages[lang]
	return ok
}

// T translates code into lang. Unknown languages fall back to DefaultLang,
// unknown codes to the code itself.
func T(lang, code string) string {
	if m, ok := messages[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := messages[DefaultLang][code]; ok {
		return s
	}
	return code
}

// DetectLanguage picks the first supported primary tag of an Accept-Language header.
func DetectLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		primary, _, _ := strings.Cut(tag, "-")
		primary = strings.ToLower(strings.TrimSpace(primary))
		if Supported(primary) {
			return primary
		}
	}
	return DefaultLang
}
