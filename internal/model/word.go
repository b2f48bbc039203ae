// internal/model/word.go
package model

// WordDetail is built when a hotspot is activated and dropped when the detail
// view closes. Only a copy of it is ever persisted, as a flashcard.
type WordDetail struct {
	ID            string            `json:"id"`
	CategoryID    string            `json:"category_id"`
	Word          string            `json:"word"`
	Translations  map[string]string `json:"translations"`
	Definition    string            `json:"definition"`
	PartOfSpeech  string            `json:"part_of_speech"`
	Examples      []string          `json:"examples"`
	Pronunciation string            `json:"pronunciation"`
	Audio         *string           `json:"audio"`
}

// WordOverview is the first tab of the detail view.
type WordOverview struct {
	Word          string `json:"word"`
	PartOfSpeech  string `json:"part_of_speech"`
	Pronunciation string `json:"pronunciation"`
	Definition    string `json:"definition"`
	Saved         bool   `json:"saved"`
}

// TranslationRow is one study language in the translations tab.
type TranslationRow struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Flag      string `json:"flag"`
	Text      string `json:"text"`
	Available bool   `json:"available"`
	Reading   string `json:"reading,omitempty"`
}

// WordDetailView bundles the three tabs of the detail view.
type WordDetailView struct {
	Detail       WordDetail       `json:"detail"`
	Overview     WordOverview     `json:"overview"`
	Translations []TranslationRow `json:"translations"`
	Examples     []string         `json:"examples"`
}

// ActivationResponse is returned when a hotspot is activated: the detail view
// and the category progress after recording the view.
type ActivationResponse struct {
	View     WordDetailView   `json:"view"`
	Progress CategoryProgress `json:"progress"`
}
