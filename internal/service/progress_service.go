// internal/service/progress_service.go
package service

import (
	"context"
	"fmt"

	"lexiscope/internal/catalog"
	"lexiscope/internal/middleware"
	"lexiscope/internal/model"
	"lexiscope/internal/storage"

	"github.com/google/uuid"
)

type ProgressService interface {
	RecordView(ctx context.Context, profileID uuid.UUID, categoryID, hotspotID string) (model.CategoryProgress, error)
	CategoryProgress(ctx context.Context, profileID uuid.UUID, categoryID string) (model.CategoryProgress, error)
}

type progressService struct {
	catalog  *catalog.Catalog
	progress *storage.ProgressStore
	locks    *ProfileLocks
}

func NewProgressService(cat *catalog.Catalog, progress *storage.ProgressStore, locks *ProfileLocks) ProgressService {
	return &progressService{catalog: cat, progress: progress, locks: locks}
}

// RecordView marks a hotspot as viewed. Viewing the same hotspot again leaves
// the record unchanged and skips the write.
func (s *progressService) RecordView(ctx context.Context, profileID uuid.UUID, categoryID, hotspotID string) (model.CategoryProgress, error) {
	logger := middleware.GetLogger(ctx)

	c, err := s.catalog.Get(categoryID)
	if err != nil {
		return model.CategoryProgress{}, err
	}
	if !c.HasHotspot(hotspotID) {
		return model.CategoryProgress{}, model.NewAppError("UNKNOWN_HOTSPOT",
			fmt.Sprintf("Hotspot %q is not part of category %q.", hotspotID, categoryID),
			"hotspot_id", model.ErrInvalidInput)
	}

	unlock := s.locks.Lock(profileID)
	defer unlock()

	rec, err := s.progress.Load(ctx, profileID)
	if err != nil {
		logger.Error("Failed to load progress", "error", err)
		return model.CategoryProgress{}, model.ErrInternalServer
	}
	if rec.RecordView(categoryID, hotspotID) {
		if err := s.progress.Save(ctx, profileID, rec); err != nil {
			logger.Error("Failed to save progress", "error", err)
			return model.CategoryProgress{}, model.ErrInternalServer
		}
		logger.Debug("Hotspot view recorded", "category_id", categoryID, "hotspot_id", hotspotID)
	}
	return model.NewCategoryProgress(categoryID, rec[categoryID], c.TotalHotspots()), nil
}

func (s *progressService) CategoryProgress(ctx context.Context, profileID uuid.UUID, categoryID string) (model.CategoryProgress, error) {
	c, err := s.catalog.Get(categoryID)
	if err != nil {
		return model.CategoryProgress{}, err
	}
	rec, err := s.progress.Load(ctx, profileID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load progress", "error", err)
		return model.CategoryProgress{}, model.ErrInternalServer
	}
	return model.NewCategoryProgress(categoryID, rec[categoryID], c.TotalHotspots()), nil
}
