// internal/handlers/profile_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"lexiscope/internal/middleware"
	"lexiscope/internal/model"
	"lexiscope/internal/service"
	"lexiscope/internal/webutil"
)

type ProfileHandler struct {
	service service.ProfileService
}

func NewProfileHandler(s service.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: s}
}

// CreateProfile handles POST /api/v1/profiles.
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "CreateProfile"))

	var req model.CreateProfileRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid create profile request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	profile, err := h.service.CreateProfile(r.Context(), req.Name)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Profile created successfully", slog.String("profile_id", profile.ProfileID.String()))
	webutil.RespondWithJSON(w, logger, http.StatusCreated, profile)
}

// DeleteProfile handles DELETE /api/v1/profile and wipes every stored blob.
func (h *ProfileHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "DeleteProfile"))
	profileID, ok := requireProfile(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.DeleteProfile(r.Context(), profileID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
