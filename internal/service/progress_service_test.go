package service

import (
	"context"
	"sync"
	"testing"

	"lexiscope/internal/model"
	"lexiscope/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_progressService_RecordView(t *testing.T) {
	ctx := context.Background()

	t.Run("repeated views count once", func(t *testing.T) {
		f := newFixture(t)
		profileID := uuid.New()

		for _, hs := range []string{"stove", "sink", "stove"} {
			_, err := f.progress.RecordView(ctx, profileID, "kitchen", hs)
			require.NoError(t, err)
		}

		got, err := f.progress.CategoryProgress(ctx, profileID, "kitchen")
		require.NoError(t, err)
		assert.Equal(t, 2, got.Learned)
		assert.Equal(t, 6, got.Total)
		assert.Equal(t, 33, got.Percent)
		assert.ElementsMatch(t, []string{"stove", "sink"}, got.Viewed)
	})

	t.Run("persists under the progress key", func(t *testing.T) {
		f := newFixture(t)
		profileID := uuid.New()

		_, err := f.progress.RecordView(ctx, profileID, "forest", "owl")
		require.NoError(t, err)

		raw, found, err := f.store.Get(ctx, profileID, storage.KeyProgress)
		require.NoError(t, err)
		require.True(t, found)
		assert.JSONEq(t, `{"forest":{"learned":1,"viewed":["owl"]}}`, raw)
	})

	t.Run("profiles are isolated", func(t *testing.T) {
		f := newFixture(t)
		a, b := uuid.New(), uuid.New()

		_, err := f.progress.RecordView(ctx, a, "kitchen", "sink")
		require.NoError(t, err)

		got, err := f.progress.CategoryProgress(ctx, b, "kitchen")
		require.NoError(t, err)
		assert.Zero(t, got.Learned)
		assert.Empty(t, got.Viewed)
	})

	t.Run("errors", func(t *testing.T) {
		f := newFixture(t)
		tests := []struct {
			name       string
			categoryID string
			hotspotID  string
			wantErr    error
		}{
			{name: "unknown category", categoryID: "garage", hotspotID: "stove", wantErr: model.ErrNotFound},
			{name: "hotspot of another category", categoryID: "kitchen", hotspotID: "owl", wantErr: model.ErrInvalidInput},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := f.progress.RecordView(ctx, uuid.New(), tc.categoryID, tc.hotspotID)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})

	t.Run("backend failure is internal", func(t *testing.T) {
		f := newFixtureWithStore(t, newFixture(t).catalog, nil, brokenStore{})
		_, err := f.progress.RecordView(ctx, uuid.New(), "kitchen", "sink")
		assert.ErrorIs(t, err, model.ErrInternalServer)
	})
}

func Test_progressService_ConcurrentViews(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	profileID := uuid.New()

	c, err := f.catalog.Get("human-body")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, h := range c.Hotspots {
		for range 3 {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				_, err := f.progress.RecordView(ctx, profileID, c.ID, id)
				assert.NoError(t, err)
			}(h.ID)
		}
	}
	wg.Wait()

	got, err := f.progress.CategoryProgress(ctx, profileID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.TotalHotspots(), got.Learned)
	assert.Equal(t, 100, got.Percent)
}

func TestProfileLocks_ReleasesEntries(t *testing.T) {
	locks := NewProfileLocks()
	id := uuid.New()

	unlock := locks.Lock(id)
	assert.Equal(t, 1, locks.len())
	unlock()
	assert.Zero(t, locks.len())
}
