package surface

import (
	"strings"

	"lexiscope/internal/model"
)

// Separator joins the word and its translations in a label.
const Separator = " / "

// DisplayText builds a hotspot label: the canonical word followed by one
// translation per study language other than the base language, in study order.
// A missing translation repeats the canonical word.
func DisplayText(h model.Hotspot, studyLanguages []string) string {
	langs := model.ExcludeBase(studyLanguages)
	if len(langs) == 0 {
		return h.Word
	}
	parts := make([]string, 0, len(langs)+1)
	parts = append(parts, h.Word)
	for _, code := range langs {
		parts = append(parts, h.TranslationOrWord(code))
	}
	return strings.Join(parts, Separator)
}
