package storage_test

import (
	"context"
	"encoding/json"
	"testing"

	"lexiscope/internal/model"
	"lexiscope/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonUnmarshal(raw string, dst any) error {
	return json.Unmarshal([]byte(raw), dst)
}

func TestProgressStore_FailOpen(t *testing.T) {
	tests := []struct {
		name string
		raw  *string
		want model.ProgressRecord
	}{
		{name: "missing", raw: nil, want: model.ProgressRecord{}},
		{name: "malformed", raw: ptr("{not json"), want: model.ProgressRecord{}},
		{name: "wrong shape", raw: ptr(`["kitchen"]`), want: model.ProgressRecord{}},
		{name: "null", raw: ptr("null"), want: model.ProgressRecord{}},
		{
			name: "browser format with stale count",
			raw:  ptr(`{"kitchen":{"learned":7,"viewed":["stove","sink","stove"]}}`),
			want: model.ProgressRecord{"kitchen": {LearnedCount: 2, ViewedHotspotIDs: []string{"stove", "sink"}}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			mem := storage.NewMemoryStore()
			id := uuid.New()
			if tc.raw != nil {
				require.NoError(t, mem.Set(ctx, id, storage.KeyProgress, *tc.raw))
			}

			got, err := storage.NewProgressStore(mem).Load(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPreferencesStore_FailOpen(t *testing.T) {
	tests := []struct {
		name   string
		study  *string
		native *string
		want   model.LanguagePreferences
	}{
		{name: "nothing stored", want: model.DefaultPreferences()},
		{
			name:  "malformed study list",
			study: ptr("en,es"),
			want:  model.DefaultPreferences(),
		},
		{
			name:  "empty study list",
			study: ptr("[]"),
			want:  model.DefaultPreferences(),
		},
		{
			name:   "bare native code",
			study:  ptr(`["en","de"]`),
			native: ptr("fr"),
			want:   model.LanguagePreferences{StudyLanguages: []string{"en", "de"}, NativeLanguage: "fr"},
		},
		{
			name:   "json native code",
			native: ptr(`"ko"`),
			want:   model.LanguagePreferences{StudyLanguages: []string{"en", "es"}, NativeLanguage: "ko"},
		},
		{
			name:   "unknown native code",
			native: ptr(`"tlh"`),
			want:   model.DefaultPreferences(),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			mem := storage.NewMemoryStore()
			id := uuid.New()
			if tc.study != nil {
				require.NoError(t, mem.Set(ctx, id, storage.KeyStudyLanguages, *tc.study))
			}
			if tc.native != nil {
				require.NoError(t, mem.Set(ctx, id, storage.KeyNativeLanguage, *tc.native))
			}

			got, err := storage.NewPreferencesStore(mem).Load(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFlashcardStore_FailOpenAndDedup(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	id := uuid.New()
	cards := storage.NewFlashcardStore(mem)

	require.NoError(t, mem.Set(ctx, id, storage.KeyFlashcards, `{"oops":true}`))
	got, err := cards.Load(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, mem.Set(ctx, id, storage.KeyFlashcards, `[{"id":"eye","word":"eye"},{"id":"eye","word":"eye"}]`))
	got, err = cards.Load(ctx, id)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestPreferencesStore_WritesJSONString(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	id := uuid.New()

	require.NoError(t, storage.NewPreferencesStore(mem).Save(ctx, id, model.DefaultPreferences()))
	raw, found, err := mem.Get(ctx, id, storage.KeyNativeLanguage)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `"en"`, raw)
}

func ptr(s string) *string { return &s }
