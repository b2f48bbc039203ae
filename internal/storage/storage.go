// Package storage keeps string keyed JSON blobs per profile. It plays the part
// browser local storage played for a single user: every profile has its own
// namespace and each key holds one JSON document.
package storage

import (
	"context"

	"github.com/google/uuid"
)

// Keys of the persisted blobs.
const (
	KeyStudyLanguages = "lexiscope-languages"
	KeyNativeLanguage = "lexiscope-native-language"
	KeyProgress       = "lexiscope-progress"
	KeyFlashcards     = "lexiscope-flashcards"
)

// Store is the blob store backends implement. Get reports found=false for a
// missing key; err is reserved for backend failures.
type Store interface {
	Get(ctx context.Context, profileID uuid.UUID, key string) (value string, found bool, err error)
	Set(ctx context.Context, profileID uuid.UUID, key, value string) error
	Delete(ctx context.Context, profileID uuid.UUID, key string) error
}

// Keys lists every key a profile can own.
var Keys = []string{KeyStudyLanguages, KeyNativeLanguage, KeyProgress, KeyFlashcards}
