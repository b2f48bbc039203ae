// internal/model/profile.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is the namespace every stored blob belongs to, the server side
// counterpart of one browser's local storage.
type Profile struct {
	ProfileID uuid.UUID      `gorm:"type:uuid;primaryKey" json:"profile_id"`
	Name      string         `gorm:"not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Profile) TableName() string {
	return "profiles"
}

type ContextKey string

const (
	ProfileIDKey ContextKey = "profileID"
)

// CreateProfileRequest is the body of POST /profiles.
type CreateProfileRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// ProfileResponse is returned once, on creation, with the bearer token.
type ProfileResponse struct {
	ProfileID uuid.UUID `json:"profile_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}
