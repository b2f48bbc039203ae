// internal/service/preference_service.go
package service

import (
	"context"

	"lexiscope/internal/middleware"
	"lexiscope/internal/model"
	"lexiscope/internal/storage"

	"github.com/google/uuid"
)

type PreferenceService interface {
	GetPreferences(ctx context.Context, profileID uuid.UUID) (*model.PreferencesResponse, error)
	ToggleStudyLanguage(ctx context.Context, profileID uuid.UUID, code string) (*model.PreferencesResponse, error)
	SetNativeLanguage(ctx context.Context, profileID uuid.UUID, code string) (*model.PreferencesResponse, error)
}

type preferenceService struct {
	prefs *storage.PreferencesStore
	locks *ProfileLocks
}

func NewPreferenceService(prefs *storage.PreferencesStore, locks *ProfileLocks) PreferenceService {
	return &preferenceService{prefs: prefs, locks: locks}
}

func newPreferencesResponse(p model.LanguagePreferences) *model.PreferencesResponse {
	return &model.PreferencesResponse{
		LanguagePreferences: p,
		Languages:           model.SupportedLanguages(),
	}
}

func (s *preferenceService) GetPreferences(ctx context.Context, profileID uuid.UUID) (*model.PreferencesResponse, error) {
	p, err := s.prefs.Load(ctx, profileID)
	if err != nil {
		middleware.GetLogger(ctx).Error("Failed to load preferences", "error", err)
		return nil, model.ErrInternalServer
	}
	return newPreferencesResponse(p), nil
}

func (s *preferenceService) ToggleStudyLanguage(ctx context.Context, profileID uuid.UUID, code string) (*model.PreferencesResponse, error) {
	return s.update(ctx, profileID, func(p model.LanguagePreferences) (model.LanguagePreferences, error) {
		return p.Toggle(code)
	})
}

func (s *preferenceService) SetNativeLanguage(ctx context.Context, profileID uuid.UUID, code string) (*model.PreferencesResponse, error) {
	return s.update(ctx, profileID, func(p model.LanguagePreferences) (model.LanguagePreferences, error) {
		return p.SetNative(code)
	})
}

// update applies fn under the profile lock and persists the result right away.
func (s *preferenceService) update(ctx context.Context, profileID uuid.UUID, fn func(model.LanguagePreferences) (model.LanguagePreferences, error)) (*model.PreferencesResponse, error) {
	logger := middleware.GetLogger(ctx)

	unlock := s.locks.Lock(profileID)
	defer unlock()

	p, err := s.prefs.Load(ctx, profileID)
	if err != nil {
		logger.Error("Failed to load preferences", "error", err)
		return nil, model.ErrInternalServer
	}
	next, err := fn(p)
	if err != nil {
		return nil, model.NewAppError("UNSUPPORTED_LANGUAGE", "Language is not supported.", "code", err)
	}
	if err := s.prefs.Save(ctx, profileID, next); err != nil {
		logger.Error("Failed to save preferences", "error", err)
		return nil, model.ErrInternalServer
	}
	logger.Info("Language preferences updated",
		"study_languages", next.StudyLanguages,
		"native_language", next.NativeLanguage,
	)
	return newPreferencesResponse(next), nil
}
