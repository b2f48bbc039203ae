// internal/model/storage_entry.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StorageEntry is one persisted blob of a profile.
type StorageEntry struct {
	ProfileID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"profile_id"`
	Key       string         `gorm:"column:blob_key;primaryKey;size:64" json:"key"`
	Value     datatypes.JSON `gorm:"not null" json:"value"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (StorageEntry) TableName() string {
	return "storage_entries"
}
