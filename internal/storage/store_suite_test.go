package storage_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"lexiscope/internal/model"
	"lexiscope/internal/repository"
	"lexiscope/internal/storage"

	"github.com/google/uuid"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// storeSuite checks the behaviour every backend must share.
type storeSuite struct {
	suite.Suite
	newStore func() storage.Store
	store    storage.Store
}

func (s *storeSuite) SetupTest() {
	s.store = s.newStore()
}

func (s *storeSuite) TestMissingKey() {
	_, found, err := s.store.Get(context.Background(), uuid.New(), storage.KeyProgress)
	s.Require().NoError(err)
	s.False(found)
}

func (s *storeSuite) TestSetGetOverwrite() {
	ctx := context.Background()
	id := uuid.New()

	s.Require().NoError(s.store.Set(ctx, id, storage.KeyStudyLanguages, `["en","es"]`))
	s.Require().NoError(s.store.Set(ctx, id, storage.KeyStudyLanguages, `["en","fr"]`))

	var got []string
	ok, err := loadStrings(ctx, s.store, id, storage.KeyStudyLanguages, &got)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal([]string{"en", "fr"}, got)
}

func (s *storeSuite) TestProfilesAreIsolated() {
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	s.Require().NoError(s.store.Set(ctx, a, storage.KeyFlashcards, `[]`))
	_, found, err := s.store.Get(ctx, b, storage.KeyFlashcards)
	s.Require().NoError(err)
	s.False(found)
}

func (s *storeSuite) TestDelete() {
	ctx := context.Background()
	id := uuid.New()

	s.Require().NoError(s.store.Set(ctx, id, storage.KeyProgress, `{}`))
	s.Require().NoError(s.store.Delete(ctx, id, storage.KeyProgress))
	_, found, err := s.store.Get(ctx, id, storage.KeyProgress)
	s.Require().NoError(err)
	s.False(found)

	s.NoError(s.store.Delete(ctx, id, storage.KeyProgress), "deleting a missing key is fine")
}

func (s *storeSuite) TestTypedRoundTrip() {
	ctx := context.Background()
	id := uuid.New()

	progress := storage.NewProgressStore(s.store)
	rec := model.ProgressRecord{}
	rec.RecordView("kitchen", "stove")
	rec.RecordView("kitchen", "sink")
	s.Require().NoError(progress.Save(ctx, id, rec))
	loaded, err := progress.Load(ctx, id)
	s.Require().NoError(err)
	s.Equal(rec, loaded)

	prefs := storage.NewPreferencesStore(s.store)
	want := model.LanguagePreferences{StudyLanguages: []string{"en", "es", "fr"}, NativeLanguage: "ja"}
	s.Require().NoError(prefs.Save(ctx, id, want))
	gotPrefs, err := prefs.Load(ctx, id)
	s.Require().NoError(err)
	s.Equal(want, gotPrefs)

	cards := storage.NewFlashcardStore(s.store)
	set, _ := model.FlashcardSet{}.Add(model.WordDetail{ID: "eye", Word: "eye", Examples: []string{"Point to the eye."}})
	s.Require().NoError(cards.Save(ctx, id, set))
	gotCards, err := cards.Load(ctx, id)
	s.Require().NoError(err)
	s.Require().Len(gotCards, 1)
	s.Equal("eye", gotCards[0].ID)
	s.Equal([]string{"Point to the eye."}, gotCards[0].Examples)
}

func loadStrings(ctx context.Context, store storage.Store, id uuid.UUID, key string, dst *[]string) (bool, error) {
	raw, found, err := store.Get(ctx, id, key)
	if err != nil || !found {
		return found, err
	}
	return true, jsonUnmarshal(raw, dst)
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &storeSuite{newStore: func() storage.Store { return storage.NewMemoryStore() }})
}

func TestSQLStore_SQLite(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.Run(t, &storeSuite{newStore: func() storage.Store {
		// A fresh named in-memory database per test.
		dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
		db, err := repository.NewDB(repository.DriverSQLite, dsn, logger)
		require.NoError(t, err)
		return storage.NewSQLStore(db)
	}})
}

func TestSQLStore_RejectsNonJSON(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := repository.NewDB(repository.DriverSQLite, "file:rejects?mode=memory&cache=shared", logger)
	require.NoError(t, err)

	err = storage.NewSQLStore(db).Set(context.Background(), uuid.New(), storage.KeyNativeLanguage, "en")
	require.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("LEXISCOPE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("LEXISCOPE_TEST_REDIS_ADDR not set")
	}
	rdb, err := storage.DialRedis(context.Background(), addr, "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	suite.Run(t, &storeSuite{newStore: func() storage.Store {
		return storage.NewRedisStore(rdb, "lexiscope-test-"+uuid.NewString())
	}})
}

func TestSQLStore_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("starts a PostgreSQL container")
	}
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker not available: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=lexiscope",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("host=localhost port=%s user=user password=secret dbname=lexiscope sslmode=disable",
		resource.GetPort("5432/tcp"))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var store storage.Store
	require.NoError(t, pool.Retry(func() error {
		db, err := repository.NewDB(repository.DriverPostgres, dsn, logger)
		if err != nil {
			return err
		}
		store = storage.NewSQLStore(db)
		return nil
	}))

	suite.Run(t, &storeSuite{newStore: func() storage.Store { return store }})
}
