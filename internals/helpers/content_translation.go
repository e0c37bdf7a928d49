package helper

import "strings"

// Supported content languages. Catalan is the primary site language,
// Spanish the secondary; the unsuffixed legacy column predates i18n.
const (
	LangCatalan = "ca"
	LangSpanish = "es"
	LangEnglish = "en"
)

// ResolveContent picks the best available localized value for a base field.
// Precedence: requested language, Catalan, Spanish, then the legacy
// unsuffixed value. The first step holding a non-empty trimmed string wins;
// when none qualifies the result is "".
func ResolveContent(fields map[string]string, base, lang string) string {
	keys := []string{
		base + "_" + lang,
		base + "_" + LangCatalan,
		base + "_" + LangSpanish,
		base,
	}
	for _, k := range keys {
		if v := strings.TrimSpace(fields[k]); v != "" {
			return v
		}
	}
	return ""
}

// NormalizeLang clamps a ?lang= query value to a supported code.
func NormalizeLang(lang string) string {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case LangSpanish:
		return LangSpanish
	case LangEnglish:
		return LangEnglish
	default:
		return LangCatalan
	}
}
