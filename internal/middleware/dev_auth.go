package middleware

import (
	"context"
	"net/http"

	"lexiscope/internal/model"
	"lexiscope/internal/webutil"

	"github.com/google/uuid"
)

// ProfileIDHeader carries the profile id when auth is disabled.
const ProfileIDHeader = "X-Profile-ID"

// DevProfileContextMiddleware is for development only. It trusts the
// X-Profile-ID header and does not check that the profile exists.
func DevProfileContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		raw := r.Header.Get(ProfileIDHeader)
		if raw == "" {
			logger.Warn("[DEV AUTH] X-Profile-ID header missing")
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Profile-ID header is required.", "", model.ErrUnauthorized))
			return
		}
		profileID, err := uuid.Parse(raw)
		if err != nil {
			logger.Warn("[DEV AUTH] Invalid X-Profile-ID format", "value", raw)
			webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "[DEV] X-Profile-ID must be a UUID.", ProfileIDHeader, model.ErrUnauthorized))
			return
		}

		logger.Debug("[DEV AUTH] profile set from header (no validation)", "profile_id", profileID.String())
		ctx := context.WithValue(r.Context(), model.ProfileIDKey, profileID)
		ctx = WithLogger(ctx, logger.With("profile_id", profileID.String()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
