// internal/model/catalog.go
package model

import (
	"fmt"
	"maps"
	"strings"
)

// Presentation is the closed set of ways a category can be shown.
type Presentation string

const (
	PresentationImage   Presentation = "image"
	PresentationModel3D Presentation = "model3d"
	PresentationBoth    Presentation = "both"
)

// ParsePresentation accepts the canonical names plus the "3d" spelling used by
// older catalog files.
func ParsePresentation(s string) (Presentation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "image":
		return PresentationImage, nil
	case "model3d", "3d":
		return PresentationModel3D, nil
	case "both":
		return PresentationBoth, nil
	}
	return "", fmt.Errorf("unknown presentation %q: %w", s, ErrInvalidInput)
}

func (p Presentation) HasImage() bool { return p == PresentationImage || p == PresentationBoth }
func (p Presentation) HasModel() bool { return p == PresentationModel3D || p == PresentationBoth }

// Difficulty is the level shown on the category cards.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

func (d Difficulty) valid() bool {
	switch d {
	case "", DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Position is a point on a surface in percent of its width and height.
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (p Position) valid() bool {
	return p.X >= 0 && p.X <= 100 && p.Y >= 0 && p.Y <= 100
}

// Hotspot is a labeled point of interest on an image or model.
type Hotspot struct {
	ID           string            `json:"id"`
	Position     Position          `json:"position"`
	Word         string            `json:"word"`
	Translations map[string]string `json:"translations"`
}

// NewHotspot validates the coordinates and the canonical word and copies the
// translation map so the caller cannot mutate the result.
func NewHotspot(id string, pos Position, word string, translations map[string]string) (Hotspot, error) {
	id = strings.TrimSpace(id)
	word = strings.TrimSpace(word)
	if id == "" {
		return Hotspot{}, fmt.Errorf("hotspot id is empty: %w", ErrInvalidInput)
	}
	if word == "" {
		return Hotspot{}, fmt.Errorf("hotspot %q: word is empty: %w", id, ErrInvalidInput)
	}
	if !pos.valid() {
		return Hotspot{}, fmt.Errorf("hotspot %q: position (%g,%g) outside [0,100]: %w", id, pos.X, pos.Y, ErrInvalidInput)
	}
	tr := make(map[string]string, len(translations))
	for code, text := range translations {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" || strings.TrimSpace(text) == "" {
			continue
		}
		tr[code] = text
	}
	return Hotspot{ID: id, Position: pos, Word: word, Translations: tr}, nil
}

// Translation returns the stored translation for code, if any.
func (h Hotspot) Translation(code string) (string, bool) {
	t, ok := h.Translations[code]
	return t, ok
}

// TranslationOrWord falls back to the canonical word.
func (h Hotspot) TranslationOrWord(code string) string {
	if t, ok := h.Translations[code]; ok {
		return t
	}
	return h.Word
}

func (h Hotspot) clone() Hotspot {
	h.Translations = maps.Clone(h.Translations)
	return h
}

// Category groups hotspots on one image and/or 3D model.
type Category struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Difficulty   Difficulty   `json:"difficulty,omitempty"`
	Presentation Presentation `json:"presentation"`
	ImageAsset   string       `json:"image_asset,omitempty"`
	ModelAsset   string       `json:"model_asset,omitempty"`
	Hotspots     []Hotspot    `json:"hotspots"`
}

// CategorySpec is the unchecked input of NewCategory.
type CategorySpec struct {
	ID           string
	Title        string
	Description  string
	Difficulty   Difficulty
	Presentation Presentation
	ImageAsset   string
	ModelAsset   string
	Hotspots     []Hotspot
}

// NewCategory enforces the per-presentation asset rules: an image asset is
// required for image and both, forbidden for model3d, and symmetrically for
// the model asset. Hotspot ids must be unique.
func NewCategory(spec CategorySpec) (Category, error) {
	id := strings.TrimSpace(spec.ID)
	if id == "" {
		return Category{}, fmt.Errorf("category id is empty: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(spec.Title) == "" {
		return Category{}, fmt.Errorf("category %q: title is empty: %w", id, ErrInvalidInput)
	}
	if !spec.Difficulty.valid() {
		return Category{}, fmt.Errorf("category %q: unknown difficulty %q: %w", id, spec.Difficulty, ErrInvalidInput)
	}
	p := spec.Presentation
	switch p {
	case PresentationImage, PresentationModel3D, PresentationBoth:
	default:
		return Category{}, fmt.Errorf("category %q: unknown presentation %q: %w", id, p, ErrInvalidInput)
	}
	if p.HasImage() != (spec.ImageAsset != "") {
		return Category{}, fmt.Errorf("category %q: image asset does not match presentation %q: %w", id, p, ErrInvalidInput)
	}
	if p.HasModel() != (spec.ModelAsset != "") {
		return Category{}, fmt.Errorf("category %q: model asset does not match presentation %q: %w", id, p, ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(spec.Hotspots))
	hotspots := make([]Hotspot, 0, len(spec.Hotspots))
	for _, h := range spec.Hotspots {
		checked, err := NewHotspot(h.ID, h.Position, h.Word, h.Translations)
		if err != nil {
			return Category{}, fmt.Errorf("category %q: %w", id, err)
		}
		if _, dup := seen[checked.ID]; dup {
			return Category{}, fmt.Errorf("category %q: duplicate hotspot %q: %w", id, checked.ID, ErrInvalidInput)
		}
		seen[checked.ID] = struct{}{}
		hotspots = append(hotspots, checked)
	}

	return Category{
		ID:           id,
		Title:        strings.TrimSpace(spec.Title),
		Description:  strings.TrimSpace(spec.Description),
		Difficulty:   spec.Difficulty,
		Presentation: p,
		ImageAsset:   spec.ImageAsset,
		ModelAsset:   spec.ModelAsset,
		Hotspots:     hotspots,
	}, nil
}

// Hotspot looks up a hotspot of the category by id.
func (c Category) Hotspot(id string) (Hotspot, bool) {
	for _, h := range c.Hotspots {
		if h.ID == id {
			return h.clone(), true
		}
	}
	return Hotspot{}, false
}

// HasHotspot reports whether id belongs to the category.
func (c Category) HasHotspot(id string) bool {
	_, ok := c.Hotspot(id)
	return ok
}

func (c Category) TotalHotspots() int { return len(c.Hotspots) }

// Clone returns a deep copy so callers can't reach the catalog's own slices.
func (c Category) Clone() Category {
	hs := make([]Hotspot, len(c.Hotspots))
	for i, h := range c.Hotspots {
		hs[i] = h.clone()
	}
	c.Hotspots = hs
	return c
}
