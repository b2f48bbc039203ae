// internal/service/flashcard_service.go
package service

import (
	"context"
	"fmt"

	"lexiscope/internal/catalog"
	"lexiscope/internal/middleware"
	"lexiscope/internal/model"
	"lexiscope/internal/storage"
	"lexiscope/internal/worddetail"

	"github.com/google/uuid"
)

type FlashcardService interface {
	ListFlashcards(ctx context.Context, profileID uuid.UUID) (model.FlashcardSet, error)
	SaveFlashcard(ctx context.Context, profileID uuid.UUID, req *model.SaveFlashcardRequest) (*model.SaveFlashcardResponse, error)
	RemoveFlashcard(ctx context.Context, profileID uuid.UUID, hotspotID string) error
}

type flashcardService struct {
	catalog *catalog.Catalog
	builder *worddetail.Builder
	cards   *storage.FlashcardStore
	locks   *ProfileLocks
}

func NewFlashcardService(cat *catalog.Catalog, builder *worddetail.Builder, cards *storage.FlashcardStore, locks *ProfileLocks) FlashcardService {
	return &flashcardService{catalog: cat, builder: builder, cards: cards, locks: locks}
}

func (s *flashcardService) ListFlashcards(ctx context.Context, profileID uuid.UUID) (model.FlashcardSet, error) {
	set, err := s.cards.Load(ctx, profileID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load flashcards", "error", err)
		return nil, model.ErrInternalServer
	}
	return set, nil
}

// SaveFlashcard stores a snapshot of the word detail. Saving a hotspot that is
// already in the set changes nothing and reports AlreadySaved.
func (s *flashcardService) SaveFlashcard(ctx context.Context, profileID uuid.UUID, req *model.SaveFlashcardRequest) (*model.SaveFlashcardResponse, error) {
	logger := middleware.GetLogger(ctx)

	c, err := s.catalog.Get(req.CategoryID)
	if err != nil {
		return nil, err
	}
	detail, err := s.builder.Build(c, req.HotspotID)
	if err != nil {
		return nil, model.NewAppError("UNKNOWN_HOTSPOT",
			fmt.Sprintf("Hotspot %q is not part of category %q.", req.HotspotID, req.CategoryID),
			"hotspot_id", err)
	}

	unlock := s.locks.Lock(profileID)
	defer unlock()

	set, err := s.cards.Load(ctx, profileID)
	if err != nil {
		logger.Error("Failed to load flashcards", "error", err)
		return nil, model.ErrInternalServer
	}
	next, alreadySaved := set.Add(detail)
	if !alreadySaved {
		if err := s.cards.Save(ctx, profileID, next); err != nil {
			logger.Error("Failed to save flashcards", "error", err)
			return nil, model.ErrInternalServer
		}
		logger.Info("Flashcard saved", "hotspot_id", detail.ID, "count", len(next))
	}
	return &model.SaveFlashcardResponse{Card: detail, AlreadySaved: alreadySaved}, nil
}

func (s *flashcardService) RemoveFlashcard(ctx context.Context, profileID uuid.UUID, hotspotID string) error {
	logger := middleware.GetLogger(ctx)

	unlock := s.locks.Lock(profileID)
	defer unlock()

	set, err := s.cards.Load(ctx, profileID)
	if err != nil {
		logger.Error("Failed to load flashcards", "error", err)
		return model.ErrInternalServer
	}
	next, removed := set.Remove(hotspotID)
	if !removed {
		return model.NewAppError("FLASHCARD_NOT_FOUND", "No flashcard is saved for this word.", "hotspot_id", model.ErrNotFound)
	}
	if err := s.cards.Save(ctx, profileID, next); err != nil {
		logger.Error("Failed to save flashcards", "error", err)
		return model.ErrInternalServer
	}
	logger.Info("Flashcard removed", "hotspot_id", hotspotID, "count", len(next))
	return nil
}
