package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"lexiscope/internal/middleware"
	"lexiscope/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLStore keeps blobs in the storage_entries table. Values must be valid JSON
// because the column is JSON (JSONB on PostgreSQL).
type SQLStore struct {
	db *gorm.DB
}

func NewSQLStore(db *gorm.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(ctx context.Context, profileID uuid.UUID, key string) (string, bool, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.StorageEntry

	result := s.db.WithContext(ctx).
		Where("profile_id = ? AND blob_key = ?", profileID, key).
		First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		logger.Error("Error reading storage entry",
			"error", result.Error,
			"profile_id", profileID.String(),
			"key", key,
		)
		return "", false, fmt.Errorf("SQLStore.Get: %w", result.Error)
	}
	return string(entry.Value), true, nil
}

func (s *SQLStore) Set(ctx context.Context, profileID uuid.UUID, key, value string) error {
	logger := middleware.GetLogger(ctx)
	if !json.Valid([]byte(value)) {
		return fmt.Errorf("SQLStore.Set: value of %q is not JSON: %w", key, model.ErrInvalidInput)
	}

	entry := model.StorageEntry{
		ProfileID: profileID,
		Key:       key,
		Value:     datatypes.JSON(value),
	}
	result := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "profile_id"}, {Name: "blob_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry)
	if result.Error != nil {
		logger.Error("Error writing storage entry",
			"error", result.Error,
			"profile_id", profileID.String(),
			"key", key,
		)
		return fmt.Errorf("SQLStore.Set: %w", result.Error)
	}
	return nil
}

func (s *SQLStore) Delete(ctx context.Context, profileID uuid.UUID, key string) error {
	logger := middleware.GetLogger(ctx)
	result := s.db.WithContext(ctx).
		Where("profile_id = ? AND blob_key = ?", profileID, key).
		Delete(&model.StorageEntry{})
	if result.Error != nil {
		logger.Error("Error deleting storage entry",
			"error", result.Error,
			"profile_id", profileID.String(),
			"key", key,
		)
		return fmt.Errorf("SQLStore.Delete: %w", result.Error)
	}
	return nil
}
