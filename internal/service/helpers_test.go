package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"lexiscope/internal/catalog"
	"lexiscope/internal/storage"
	"lexiscope/internal/worddetail"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixture wires every service on top of one in-memory store and the built-in catalog.
type fixture struct {
	store      *storage.MemoryStore
	catalog    *catalog.Catalog
	progress   ProgressService
	prefs      PreferenceService
	flashcards FlashcardService
	words      WordService
	catalogSvc CatalogService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	store := storage.NewMemoryStore()
	return newFixtureWithStore(t, cat, store, store)
}

func newFixtureWithStore(t *testing.T, cat *catalog.Catalog, mem *storage.MemoryStore, store storage.Store) *fixture {
	t.Helper()
	locks := NewProfileLocks()
	builder := worddetail.NewBuilder(nil)
	progressStore := storage.NewProgressStore(store)
	prefsStore := storage.NewPreferencesStore(store)
	cardStore := storage.NewFlashcardStore(store)

	progress := NewProgressService(cat, progressStore, locks)
	return &fixture{
		store:      mem,
		catalog:    cat,
		progress:   progress,
		prefs:      NewPreferenceService(prefsStore, locks),
		flashcards: NewFlashcardService(cat, builder, cardStore, locks),
		words:      NewWordService(cat, builder, progress, prefsStore, cardStore),
		catalogSvc: NewCatalogService(cat, progressStore, prefsStore, cardStore),
	}
}

// brokenStore fails every call, standing in for an unreachable backend.
type brokenStore struct{}

var errBackendDown = errors.New("backend down")

func (brokenStore) Get(context.Context, uuid.UUID, string) (string, bool, error) {
	return "", false, errBackendDown
}
func (brokenStore) Set(context.Context, uuid.UUID, string, string) error { return errBackendDown }
func (brokenStore) Delete(context.Context, uuid.UUID, string) error      { return errBackendDown }

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}
