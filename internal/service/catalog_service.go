// internal/service/catalog_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"lexiscope/internal/catalog"
	"lexiscope/internal/middleware"
	"lexiscope/internal/model"
	"lexiscope/internal/storage"
	"lexiscope/internal/surface"

	"github.com/google/uuid"
)

// SurfaceQuery selects how a category surface is rendered.
type SurfaceQuery struct {
	Variant        string
	ShowLabels     bool
	Quiz           bool
	Hover          string
	StudyLanguages []string
}

// SurfaceResponse is a rendered surface plus the tabs the category offers.
type SurfaceResponse struct {
	CategoryID string            `json:"category_id"`
	Variants   []surface.Variant `json:"variants"`
	View       surface.View      `json:"view"`
}

type CatalogService interface {
	// ListCategories filters the catalog by query. Cards carry progress only
	// when profileID is not uuid.Nil.
	ListCategories(ctx context.Context, profileID uuid.UUID, query string) ([]model.CategoryCard, error)
	GetCategory(ctx context.Context, categoryID string) (model.Category, error)
	Surface(ctx context.Context, categoryID string, q SurfaceQuery) (*SurfaceResponse, error)
	Stats(ctx context.Context, profileID uuid.UUID) (*model.Stats, error)
}

type catalogService struct {
	catalog  *catalog.Catalog
	progress *storage.ProgressStore
	prefs    *storage.PreferencesStore
	cards    *storage.FlashcardStore
}

func NewCatalogService(cat *catalog.Catalog, progress *storage.ProgressStore, prefs *storage.PreferencesStore, cards *storage.FlashcardStore) CatalogService {
	return &catalogService{catalog: cat, progress: progress, prefs: prefs, cards: cards}
}

func (s *catalogService) ListCategories(ctx context.Context, profileID uuid.UUID, query string) ([]model.CategoryCard, error) {
	categories := s.catalog.Search(query)

	var rec model.ProgressRecord
	if profileID != uuid.Nil {
		var err error
		rec, err = s.progress.Load(ctx, profileID)
		if err != nil {
			middleware.GetLogger(ctx).Error("Failed to load progress", "error", err)
			return nil, model.ErrInternalServer
		}
	}

	cards := make([]model.CategoryCard, 0, len(categories))
	for _, c := range categories {
		var p *model.CategoryProgress
		if r, ok := rec[c.ID]; ok {
			cp := model.NewCategoryProgress(c.ID, r, c.TotalHotspots())
			p = &cp
		}
		cards = append(cards, model.NewCategoryCard(c, p))
	}
	return cards, nil
}

func (s *catalogService) GetCategory(_ context.Context, categoryID string) (model.Category, error) {
	return s.catalog.Get(categoryID)
}

// Surface renders one variant of a category. An empty variant picks the
// category's default tab. Quiz mode hides every label that is not hovered.
func (s *catalogService) Surface(_ context.Context, categoryID string, q SurfaceQuery) (*SurfaceResponse, error) {
	c, err := s.catalog.Get(categoryID)
	if err != nil {
		return nil, err
	}

	variant := surface.DefaultVariant(c)
	if strings.TrimSpace(q.Variant) != "" {
		variant, err = surface.ParseVariant(q.Variant)
		if err != nil {
			return nil, model.NewAppError("INVALID_VARIANT", err.Error(), "variant", model.ErrInvalidInput)
		}
	}

	// Query values are free text: normalize case, drop unknown and repeated
	// codes, fall back to the defaults when nothing is left.
	langs := model.LanguagePreferences{StudyLanguages: q.StudyLanguages}.Sanitize().StudyLanguages
	surf, err := surface.New(c, variant, surface.Options{
		ShowLabels:     q.ShowLabels && !q.Quiz,
		StudyLanguages: langs,
	})
	if err != nil {
		return nil, model.NewAppError("VARIANT_NOT_AVAILABLE",
			fmt.Sprintf("Category %q has no %s view.", categoryID, variant),
			"variant", model.ErrInvalidInput)
	}
	if q.Hover != "" {
		if err := surf.Hover(q.Hover); err != nil {
			return nil, model.NewAppError("UNKNOWN_HOTSPOT",
				fmt.Sprintf("Hotspot %q is not part of category %q.", q.Hover, categoryID),
				"hover", model.ErrInvalidInput)
		}
	}

	return &SurfaceResponse{
		CategoryID: c.ID,
		Variants:   surface.Variants(c),
		View:       surf.Render(),
	}, nil
}

const polyglotLanguages = 3

func (s *catalogService) Stats(ctx context.Context, profileID uuid.UUID) (*model.Stats, error) {
	logger := middleware.GetLogger(ctx)

	rec, err := s.progress.Load(ctx, profileID)
	if err != nil {
		logger.Error("Failed to load progress", "error", err)
		return nil, model.ErrInternalServer
	}
	prefs, err := s.prefs.Load(ctx, profileID)
	if err != nil {
		logger.Error("Failed to load preferences", "error", err)
		return nil, model.ErrInternalServer
	}
	cards, err := s.cards.Load(ctx, profileID)
	if err != nil {
		logger.Error("Failed to load flashcards", "error", err)
		return nil, model.ErrInternalServer
	}

	stats := &model.Stats{
		TotalWords:      s.catalog.TotalWords(),
		Languages:       len(model.SupportedLanguages()),
		TotalCategories: s.catalog.Len(),
		FlashcardsSaved: len(cards),
	}
	mastered := false
	for _, c := range s.catalog.List() {
		learned := rec.Learned(c.ID)
		stats.WordsLearned += learned
		if learned > 0 {
			stats.CategoriesStarted++
		}
		if c.TotalHotspots() > 0 && learned >= c.TotalHotspots() {
			mastered = true
		}
	}
	stats.Achievements = []model.Achievement{
		{
			ID:          "first-word",
			Title:       "First Word",
			Description: "Open the detail of any word.",
			Unlocked:    stats.WordsLearned > 0,
		},
		{
			ID:          "category-master",
			Title:       "Category Master",
			Description: "Learn every word of a category.",
			Unlocked:    mastered,
		},
		{
			ID:          "polyglot",
			Title:       "Polyglot",
			Description: fmt.Sprintf("Study %d or more languages at once.", polyglotLanguages),
			Unlocked:    len(prefs.StudyLanguages) >= polyglotLanguages,
		},
	}
	return stats, nil
}
