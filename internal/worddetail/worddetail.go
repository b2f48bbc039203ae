// Package worddetail builds the detail shown when a hotspot is activated.
package worddetail

import (
	"fmt"
	"maps"

	"lexiscope/internal/model"
)

// Unavailable is shown in place of a missing translation.
const Unavailable = "Translation not available"

const partOfSpeechNoun = "noun"

// Builder creates word details. Readers are keyed by language code.
type Builder struct {
	readers map[string]Reader
}

// NewBuilder takes optional pronunciation readers per language, e.g. {"ja": kana}.
func NewBuilder(readers map[string]Reader) *Builder {
	return &Builder{readers: maps.Clone(readers)}
}

// Build generates the detail of hotspotID in category c.
func (b *Builder) Build(c model.Category, hotspotID string) (model.WordDetail, error) {
	h, ok := c.Hotspot(hotspotID)
	if !ok {
		return model.WordDetail{}, fmt.Errorf("hotspot %q in category %q: %w", hotspotID, c.ID, model.ErrInvalidInput)
	}
	return model.WordDetail{
		ID:           h.ID,
		CategoryID:   c.ID,
		Word:         h.Word,
		Translations: h.Translations,
		Definition:   fmt.Sprintf("A %s is an important part of the %s.", h.Word, c.Title),
		PartOfSpeech: partOfSpeechNoun,
		Examples: []string{
			fmt.Sprintf("Point to the %s.", h.Word),
			fmt.Sprintf("The %s is essential for daily activities.", h.Word),
		},
		Pronunciation: fmt.Sprintf("/ˈ%s/", h.Word),
	}, nil
}

// View lays out the three tabs of d for the given study languages.
func (b *Builder) View(d model.WordDetail, studyLanguages []string, saved bool) model.WordDetailView {
	langs := model.ExcludeBase(studyLanguages)
	rows := make([]model.TranslationRow, 0, len(langs))
	for _, code := range langs {
		row := model.TranslationRow{
			Code: code,
			Name: model.LanguageName(code),
			Flag: model.LanguageFlag(code),
			Text: Unavailable,
		}
		if text, ok := d.Translations[code]; ok {
			row.Text = text
			row.Available = true
			if r, ok := b.readers[code]; ok {
				row.Reading = r.Reading(text)
			}
		}
		rows = append(rows, row)
	}

	examples := d.Examples
	if examples == nil {
		examples = []string{}
	}
	return model.WordDetailView{
		Detail: d,
		Overview: model.WordOverview{
			Word:          d.Word,
			PartOfSpeech:  d.PartOfSpeech,
			Pronunciation: d.Pronunciation,
			Definition:    d.Definition,
			Saved:         saved,
		},
		Translations: rows,
		Examples:     examples,
	}
}
