// internal/handlers/profile_handler_test.go
package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lexiscope/internal/handlers"
	"lexiscope/internal/model"
	"lexiscope/internal/service/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileHandler_CreateProfile(t *testing.T) {
	created := &model.ProfileResponse{
		ProfileID: uuid.New(),
		Name:      "Ana",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Token:     "signed.token.value",
	}

	tests := []struct {
		name         string
		body         interface{}
		setupMock    func(s *mocks.MockProfileService)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "Success",
			body: model.CreateProfileRequest{Name: "Ana"},
			setupMock: func(s *mocks.MockProfileService) {
				s.On("CreateProfile", mock.Anything, "Ana").Return(created, nil).Once()
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Validation error - empty name",
			body:         model.CreateProfileRequest{Name: ""},
			setupMock:    func(s *mocks.MockProfileService) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "VALIDATION_ERROR",
		},
		{
			name:         "Invalid body - unknown field",
			body:         `{"name":"Ana","admin":true}`,
			setupMock:    func(s *mocks.MockProfileService) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "INVALID_BODY",
		},
		{
			name: "Conflict from service",
			body: model.CreateProfileRequest{Name: "Ana"},
			setupMock: func(s *mocks.MockProfileService) {
				s.On("CreateProfile", mock.Anything, "Ana").Return(nil, model.ErrConflict).Once()
			},
			expectedCode: http.StatusConflict,
			expectedErr:  "CONFLICT",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockProfileService(t)
			tc.setupMock(svc)
			h := handlers.NewProfileHandler(svc)
			r := chi.NewRouter()
			r.Post("/api/v1/profiles", h.CreateProfile)
			server := httptest.NewServer(r)
			defer server.Close()

			body := sendRequest(t, server, httpRequestDetails{Method: http.MethodPost, Path: "/api/v1/profiles", Body: tc.body}, tc.expectedCode)
			if tc.expectedErr != "" {
				verifyErrorCode(t, body, tc.expectedErr)
				return
			}
			var got model.ProfileResponse
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, created.ProfileID, got.ProfileID)
			assert.Equal(t, created.Token, got.Token)
		})
	}
}

func TestProfileHandler_DeleteProfile(t *testing.T) {
	profileID := uuid.New()
	svc := mocks.NewMockProfileService(t)
	h := handlers.NewProfileHandler(svc)
	server := newDevRouter(func(r chi.Router) { r.Delete("/api/v1/profile", h.DeleteProfile) })
	defer server.Close()

	t.Run("Success", func(t *testing.T) {
		svc.On("DeleteProfile", mock.Anything, profileID).Return(nil).Once()
		sendRequest(t, server, httpRequestDetails{Method: http.MethodDelete, Path: "/api/v1/profile", Headers: profileHeader(profileID.String())}, http.StatusNoContent)
	})

	t.Run("Missing profile header", func(t *testing.T) {
		body := sendRequest(t, server, httpRequestDetails{Method: http.MethodDelete, Path: "/api/v1/profile"}, http.StatusUnauthorized)
		verifyErrorCode(t, body, "UNAUTHORIZED")
	})

	t.Run("Malformed profile header", func(t *testing.T) {
		sendRequest(t, server, httpRequestDetails{Method: http.MethodDelete, Path: "/api/v1/profile", Headers: profileHeader("not-a-uuid")}, http.StatusUnauthorized)
	})
}
