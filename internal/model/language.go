// internal/model/language.go
package model

import "strings"

// BaseLanguage is the language canonical words are written in. It is never
// shown as a translation.
const BaseLanguage = "en"

// Language is one of the languages a learner can study.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

var supportedLanguages = []Language{
	{Code: "en", Name: "English", Flag: "🇺🇸"},
	{Code: "es", Name: "Spanish", Flag: "🇪🇸"},
	{Code: "fr", Name: "French", Flag: "🇫🇷"},
	{Code: "de", Name: "German", Flag: "🇩🇪"},
	{Code: "it", Name: "Italian", Flag: "🇮🇹"},
	{Code: "pt", Name: "Portuguese", Flag: "🇵🇹"},
	{Code: "ru", Name: "Russian", Flag: "🇷🇺"},
	{Code: "zh", Name: "Chinese", Flag: "🇨🇳"},
	{Code: "ja", Name: "Japanese", Flag: "🇯🇵"},
	{Code: "ko", Name: "Korean", Flag: "🇰🇷"},
	{Code: "ar", Name: "Arabic", Flag: "🇸🇦"},
	{Code: "hi", Name: "Hindi", Flag: "🇮🇳"},
}

// SupportedLanguages returns the selectable languages in display order.
func SupportedLanguages() []Language {
	out := make([]Language, len(supportedLanguages))
	copy(out, supportedLanguages)
	return out
}

// LookupLanguage finds a supported language by code (case-insensitive).
func LookupLanguage(code string) (Language, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, l := range supportedLanguages {
		if l.Code == code {
			return l, true
		}
	}
	return Language{}, false
}

// LanguageName returns the English name for code, or code itself if unknown.
func LanguageName(code string) string {
	if l, ok := LookupLanguage(code); ok {
		return l.Name
	}
	return code
}

// LanguageFlag returns the flag for code, or a globe for unknown codes.
func LanguageFlag(code string) string {
	if l, ok := LookupLanguage(code); ok {
		return l.Flag
	}
	return "🌐"
}

// ExcludeBase returns languages without the base language, keeping order.
func ExcludeBase(languages []string) []string {
	out := make([]string, 0, len(languages))
	for _, l := range languages {
		if l != BaseLanguage {
			out = append(out, l)
		}
	}
	return out
}
