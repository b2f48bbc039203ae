// internal/service/word_service.go
package service

import (
	"context"
	"fmt"

	"lexiscope/internal/catalog"
	"lexiscope/internal/middleware"
	"lexiscope/internal/model"
	"lexiscope/internal/storage"
	"lexiscope/internal/surface"
	"lexiscope/internal/worddetail"

	"github.com/google/uuid"
)

// WordService opens the word detail of a hotspot.
type WordService interface {
	Activate(ctx context.Context, profileID uuid.UUID, categoryID, hotspotID string) (*model.ActivationResponse, error)
}

type wordService struct {
	catalog  *catalog.Catalog
	builder  *worddetail.Builder
	progress ProgressService
	prefs    *storage.PreferencesStore
	cards    *storage.FlashcardStore
}

func NewWordService(cat *catalog.Catalog, builder *worddetail.Builder, progress ProgressService, prefs *storage.PreferencesStore, cards *storage.FlashcardStore) WordService {
	return &wordService{
		catalog:  cat,
		builder:  builder,
		progress: progress,
		prefs:    prefs,
		cards:    cards,
	}
}

// Activate mounts the category's default surface and activates the hotspot
// on it. The surface callback records the view; the detail is then laid out
// for the profile's study languages.
func (s *wordService) Activate(ctx context.Context, profileID uuid.UUID, categoryID, hotspotID string) (*model.ActivationResponse, error) {
	logger := middleware.GetLogger(ctx)

	c, err := s.catalog.Get(categoryID)
	if err != nil {
		return nil, err
	}

	var (
		progress  model.CategoryProgress
		recordErr error
	)
	surf, err := surface.New(c, surface.DefaultVariant(c), surface.Options{
		OnActivate: func(h model.Hotspot) {
			progress, recordErr = s.progress.RecordView(ctx, profileID, c.ID, h.ID)
		},
	})
	if err != nil {
		logger.Error("Failed to mount surface", "category_id", c.ID, "error", err)
		return nil, model.ErrInternalServer
	}
	h, err := surf.Activate(hotspotID)
	if err != nil {
		return nil, model.NewAppError("UNKNOWN_HOTSPOT",
			fmt.Sprintf("Hotspot %q is not part of category %q.", hotspotID, categoryID),
			"hotspot_id", model.ErrInvalidInput)
	}
	if recordErr != nil {
		return nil, recordErr
	}

	detail, err := s.builder.Build(c, h.ID)
	if err != nil {
		logger.Error("Failed to build word detail", "hotspot_id", h.ID, "error", err)
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

	return &model.ActivationResponse{
		View:     s.builder.View(detail, prefs.StudyLanguages, cards.Contains(detail.ID)),
		Progress: progress,
	}, nil
}
