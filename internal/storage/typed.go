package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"lexiscope/internal/middleware"
	"lexiscope/internal/model"

	"github.com/google/uuid"
)

// loadJSON decodes key into dst. A missing or malformed value leaves dst
// untouched and reports false; only backend failures are returned as errors.
func loadJSON(ctx context.Context, store Store, profileID uuid.UUID, key string, dst any) (bool, error) {
	raw, found, err := store.Get(ctx, profileID, key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		middleware.GetLogger(ctx).Warn("Discarding malformed stored value",
			"key", key,
			"profile_id", profileID.String(),
			"error", err,
		)
		return false, nil
	}
	return true, nil
}

func saveJSON(ctx context.Context, store Store, profileID uuid.UUID, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Set(ctx, profileID, key, string(raw))
}

// ProgressStore loads and saves the progress record.
type ProgressStore struct {
	store Store
}

func NewProgressStore(store Store) *ProgressStore {
	return &ProgressStore{store: store}
}

// Load never returns a nil record. Viewed ids are deduplicated and learned
// counts recomputed so a hand-edited record cannot break the invariants.
func (s *ProgressStore) Load(ctx context.Context, profileID uuid.UUID) (model.ProgressRecord, error) {
	var rec model.ProgressRecord
	ok, err := loadJSON(ctx, s.store, profileID, KeyProgress, &rec)
	if err != nil {
		return nil, err
	}
	if !ok || rec == nil {
		return model.ProgressRecord{}, nil
	}
	for id, cr := range rec {
		viewed := make([]string, 0, len(cr.ViewedHotspotIDs))
		for _, h := range cr.ViewedHotspotIDs {
			if h != "" && !slices.Contains(viewed, h) {
				viewed = append(viewed, h)
			}
		}
		rec[id] = model.CategoryRecord{LearnedCount: len(viewed), ViewedHotspotIDs: viewed}
	}
	return rec, nil
}

func (s *ProgressStore) Save(ctx context.Context, profileID uuid.UUID, rec model.ProgressRecord) error {
	return saveJSON(ctx, s.store, profileID, KeyProgress, rec)
}

// PreferencesStore keeps the study languages and the native language under
// separate keys.
type PreferencesStore struct {
	store Store
}

func NewPreferencesStore(store Store) *PreferencesStore {
	return &PreferencesStore{store: store}
}

func (s *PreferencesStore) Load(ctx context.Context, profileID uuid.UUID) (model.LanguagePreferences, error) {
	prefs := model.DefaultPreferences()

	var study []string
	ok, err := loadJSON(ctx, s.store, profileID, KeyStudyLanguages, &study)
	if err != nil {
		return model.LanguagePreferences{}, err
	}
	if ok {
		prefs.StudyLanguages = study
	}

	raw, found, err := s.store.Get(ctx, profileID, KeyNativeLanguage)
	if err != nil {
		return model.LanguagePreferences{}, err
	}
	if found {
		// Older clients wrote the bare code instead of a JSON string.
		var native string
		if json.Unmarshal([]byte(raw), &native) != nil {
			native = raw
		}
		prefs.NativeLanguage = native
	}
	return prefs.Sanitize(), nil
}

func (s *PreferencesStore) Save(ctx context.Context, profileID uuid.UUID, prefs model.LanguagePreferences) error {
	if err := saveJSON(ctx, s.store, profileID, KeyStudyLanguages, prefs.StudyLanguages); err != nil {
		return err
	}
	return saveJSON(ctx, s.store, profileID, KeyNativeLanguage, prefs.NativeLanguage)
}

// FlashcardStore loads and saves the saved word details.
type FlashcardStore struct {
	store Store
}

func NewFlashcardStore(store Store) *FlashcardStore {
	return &FlashcardStore{store: store}
}

func (s *FlashcardStore) Load(ctx context.Context, profileID uuid.UUID) (model.FlashcardSet, error) {
	var set model.FlashcardSet
	ok, err := loadJSON(ctx, s.store, profileID, KeyFlashcards, &set)
	if err != nil {
		return nil, err
	}
	if !ok {
		return model.FlashcardSet{}, nil
	}
	return set.Dedup(), nil
}

func (s *FlashcardStore) Save(ctx context.Context, profileID uuid.UUID, set model.FlashcardSet) error {
	if set == nil {
		set = model.FlashcardSet{}
	}
	return saveJSON(ctx, s.store, profileID, KeyFlashcards, set)
}
