// internal/handlers/context.go
package handlers

import (
	"log/slog"
	"net/http"

	"lexiscope/internal/middleware"
	"lexiscope/internal/model"
	"lexiscope/internal/webutil"

	"github.com/google/uuid"
)

// requireProfile reads the profile set by the auth middleware. It writes the
// error response itself and reports false when there is none.
func requireProfile(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	profileID, err := middleware.GetProfileIDFromContext(r.Context())
	if err != nil {
		logger.Warn("Profile missing from request context", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("UNAUTHORIZED", "Authentication required.", "", model.ErrUnauthorized))
		return uuid.Nil, false
	}
	return profileID, true
}

// optionalProfile returns uuid.Nil for anonymous requests.
func optionalProfile(r *http.Request) uuid.UUID {
	profileID, err := middleware.GetProfileIDFromContext(r.Context())
	if err != nil {
		return uuid.Nil
	}
	return profileID
}
