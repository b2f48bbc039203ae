// internal/service/profile_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lexiscope/internal/middleware"
	"lexiscope/internal/model"
	"lexiscope/internal/repository"
	"lexiscope/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileService interface {
	CreateProfile(ctx context.Context, name string) (*model.ProfileResponse, error)
	GetProfile(ctx context.Context, profileID uuid.UUID) (*model.Profile, error)
	DeleteProfile(ctx context.Context, profileID uuid.UUID) error
}

// TokenConfig configures the bearer tokens handed out on profile creation.
// An empty Secret disables token issuing.
type TokenConfig struct {
	Issuer string
	Secret []byte
	TTL    time.Duration
}

type profileService struct {
	db          *gorm.DB
	profileRepo repository.ProfileRepository
	store       storage.Store
	locks       *ProfileLocks
	token       TokenConfig
	now         func() time.Time
}

func NewProfileService(db *gorm.DB, repo repository.ProfileRepository, store storage.Store, locks *ProfileLocks, token TokenConfig) ProfileService {
	return &profileService{
		db:          db,
		profileRepo: repo,
		store:       store,
		locks:       locks,
		token:       token,
		now:         time.Now,
	}
}

func (s *profileService) CreateProfile(ctx context.Context, name string) (*model.ProfileResponse, error) {
	logger := middleware.GetLogger(ctx)
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.NewAppError("INVALID_NAME", "Profile name is required.", "name", model.ErrInvalidInput)
	}

	profile := &model.Profile{
		ProfileID: uuid.New(),
		Name:      name,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.profileRepo.Create(ctx, tx, profile)
	})
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return nil, err
		}
		logger.Error("Failed to create profile", "error", err)
		return nil, model.ErrInternalServer
	}

	resp := &model.ProfileResponse{
		ProfileID: profile.ProfileID,
		Name:      profile.Name,
		CreatedAt: profile.CreatedAt,
	}
	if len(s.token.Secret) > 0 {
		token, expiresAt, err := s.issueToken(profile.ProfileID)
		if err != nil {
			logger.Error("Failed to sign profile token", "error", err, "profile_id", profile.ProfileID)
			return nil, model.ErrInternalServer
		}
		resp.Token = token
		resp.ExpiresAt = expiresAt
	}

	logger.Info("Profile created", "profile_id", profile.ProfileID)
	return resp, nil
}

func (s *profileService) issueToken(profileID uuid.UUID) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.token.TTL)
	claims := &jwt.RegisteredClaims{
		Issuer:    s.token.Issuer,
		Subject:   profileID.String(),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.token.Secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// GetProfile is used by the auth middleware to check that a token's subject still exists.
func (s *profileService) GetProfile(ctx context.Context, profileID uuid.UUID) (*model.Profile, error) {
	return s.profileRepo.FindByID(ctx, s.db.WithContext(ctx), profileID)
}

// DeleteProfile removes every stored blob of the profile, then the profile itself.
func (s *profileService) DeleteProfile(ctx context.Context, profileID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)

	unlock := s.locks.Lock(profileID)
	defer unlock()

	for _, key := range storage.Keys {
		if err := s.store.Delete(ctx, profileID, key); err != nil {
			logger.Error("Failed to delete stored value", "key", key, "error", err)
			return model.ErrInternalServer
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.profileRepo.Delete(ctx, tx, profileID)
	})
	if err != nil {
		logger.Error("Failed to delete profile", "error", err)
		return model.ErrInternalServer
	}
	logger.Info("Profile deleted", "profile_id", profileID)
	return nil
}
