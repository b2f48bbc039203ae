//go:generate mockery --name ProfileRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"lexiscope/internal/middleware"
	"lexiscope/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, db *gorm.DB, profile *model.Profile) error
	FindByID(ctx context.Context, db *gorm.DB, profileID uuid.UUID) (*model.Profile, error)
	Delete(ctx context.Context, db *gorm.DB, profileID uuid.UUID) error
}

type gormProfileRepository struct{}

func NewGormProfileRepository() ProfileRepository {
	return &gormProfileRepository{}
}

func (r *gormProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *model.Profile) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			logger.Warn("Duplicate key error on create profile",
				"error", result.Error,
				"profile_id", profile.ProfileID.String(),
			)
			return model.ErrConflict
		}
		logger.Error("Error creating profile in DB",
			"error", result.Error,
			"profile_name", profile.Name,
		)
		return fmt.Errorf("gormProfileRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormProfileRepository) FindByID(ctx context.Context, db *gorm.DB, profileID uuid.UUID) (*model.Profile, error) {
	logger := middleware.GetLogger(ctx)
	var profile model.Profile

	result := db.WithContext(ctx).Where("profile_id = ?", profileID).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding profile by ID in DB",
			"error", result.Error,
			"profile_id", profileID.String(),
		)
		return nil, fmt.Errorf("gormProfileRepository.FindByID: %w", result.Error)
	}
	return &profile, nil
}

// Delete soft-deletes the profile.
func (r *gormProfileRepository) Delete(ctx context.Context, db *gorm.DB, profileID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Where("profile_id = ?", profileID).Delete(&model.Profile{})
	if result.Error != nil {
		logger.Error("Error deleting profile in DB",
			"error", result.Error,
			"profile_id", profileID.String(),
		)
		return fmt.Errorf("gormProfileRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		logger.Warn("Profile not found for deletion (idempotent)", "profile_id", profileID.String())
	}
	return nil
}
