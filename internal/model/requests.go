// internal/model/requests.go
package model

// SetNativeLanguageRequest is the body of PUT /preferences/native-language.
type SetNativeLanguageRequest struct {
	Code string `json:"code" validate:"required,len=2,lowercase"`
}

// SaveFlashcardRequest is the body of POST /flashcards.
type SaveFlashcardRequest struct {
	CategoryID string `json:"category_id" validate:"required,max=64"`
	HotspotID  string `json:"hotspot_id" validate:"required,max=64"`
}

// SaveFlashcardResponse reports the saved card and whether it already existed.
type SaveFlashcardResponse struct {
	Card         WordDetail `json:"card"`
	AlreadySaved bool       `json:"already_saved"`
}

// PreferencesResponse adds display data to the stored preferences.
type PreferencesResponse struct {
	LanguagePreferences
	Languages []Language `json:"languages"`
}

// CategoryCard is one entry of the category listing.
type CategoryCard struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Difficulty    Difficulty        `json:"difficulty,omitempty"`
	Presentation  Presentation      `json:"presentation"`
	TotalHotspots int               `json:"total_hotspots"`
	Progress      *CategoryProgress `json:"progress,omitempty"`
}

// NewCategoryCard builds a listing card. progress may be nil.
func NewCategoryCard(c Category, progress *CategoryProgress) CategoryCard {
	return CategoryCard{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		Difficulty:    c.Difficulty,
		Presentation:  c.Presentation,
		TotalHotspots: c.TotalHotspots(),
		Progress:      progress,
	}
}

// Stats is the summary shown above the category listing.
type Stats struct {
	TotalWords        int           `json:"total_words"`
	WordsLearned      int           `json:"words_learned"`
	Languages         int           `json:"languages"`
	CategoriesStarted int           `json:"categories_started"`
	TotalCategories   int           `json:"total_categories"`
	FlashcardsSaved   int           `json:"flashcards_saved"`
	Achievements      []Achievement `json:"achievements"`
}

// Achievement is a milestone derived from stored progress and preferences.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}
