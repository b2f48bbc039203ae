package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"lexiscope/internal/model"
	"lexiscope/internal/repository/mocks"
	"lexiscope/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-0123456789")

func Test_profileService_CreateProfile(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	tests := []struct {
		name      string
		input     string
		setupMock func(repo *mocks.ProfileRepository)
		wantErr   error
	}{
		{
			name:  "success",
			input: "  Ana ",
			setupMock: func(repo *mocks.ProfileRepository) {
				repo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(p *model.Profile) bool {
					return p.Name == "Ana" && p.ProfileID != uuid.Nil
				})).Return(nil).Once()
			},
		},
		{
			name:      "blank name",
			input:     "   ",
			setupMock: func(repo *mocks.ProfileRepository) {},
			wantErr:   model.ErrInvalidInput,
		},
		{
			name:  "conflict is passed through",
			input: "Ana",
			setupMock: func(repo *mocks.ProfileRepository) {
				repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(model.ErrConflict).Once()
			},
			wantErr: model.ErrConflict,
		},
		{
			name:  "repository failure is internal",
			input: "Ana",
			setupMock: func(repo *mocks.ProfileRepository) {
				repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewProfileRepository(t)
			tc.setupMock(repo)
			svc := NewProfileService(db, repo, storage.NewMemoryStore(), NewProfileLocks(), TokenConfig{
				Issuer: "lexiscope-test",
				Secret: testSecret,
				TTL:    time.Hour,
			})

			got, err := svc.CreateProfile(ctx, tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Ana", got.Name)
			require.NotEmpty(t, got.Token)

			claims := &jwt.RegisteredClaims{}
			_, err = jwt.ParseWithClaims(got.Token, claims, func(*jwt.Token) (interface{}, error) {
				return testSecret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			require.NoError(t, err)
			assert.Equal(t, got.ProfileID.String(), claims.Subject)
			assert.Equal(t, "lexiscope-test", claims.Issuer)
			assert.WithinDuration(t, time.Now().Add(time.Hour), got.ExpiresAt, time.Minute)
		})
	}
}

func Test_profileService_CreateProfile_WithoutSecret(t *testing.T) {
	repo := mocks.NewProfileRepository(t)
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	svc := NewProfileService(setupTestDB(t), repo, storage.NewMemoryStore(), NewProfileLocks(), TokenConfig{})

	got, err := svc.CreateProfile(context.Background(), "Ana")
	require.NoError(t, err)
	assert.Empty(t, got.Token)
	assert.True(t, got.ExpiresAt.IsZero())
}

func Test_profileService_DeleteProfile(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()
	other := uuid.New()

	store := storage.NewMemoryStore()
	for _, key := range storage.Keys {
		require.NoError(t, store.Set(ctx, profileID, key, `"x"`))
	}
	require.NoError(t, store.Set(ctx, other, storage.KeyProgress, `{}`))

	repo := mocks.NewProfileRepository(t)
	repo.On("Delete", mock.Anything, mock.Anything, profileID).Return(nil).Once()
	svc := NewProfileService(setupTestDB(t), repo, store, NewProfileLocks(), TokenConfig{})

	require.NoError(t, svc.DeleteProfile(ctx, profileID))

	for _, key := range storage.Keys {
		_, found, err := store.Get(ctx, profileID, key)
		require.NoError(t, err)
		assert.False(t, found, key)
	}
	_, found, err := store.Get(ctx, other, storage.KeyProgress)
	require.NoError(t, err)
	assert.True(t, found)
}

func Test_profileService_GetProfile(t *testing.T) {
	profileID := uuid.New()
	repo := mocks.NewProfileRepository(t)
	repo.On("FindByID", mock.Anything, mock.Anything, profileID).Return(nil, model.ErrNotFound).Once()
	svc := NewProfileService(setupTestDB(t), repo, storage.NewMemoryStore(), NewProfileLocks(), TokenConfig{})

	_, err := svc.GetProfile(context.Background(), profileID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
