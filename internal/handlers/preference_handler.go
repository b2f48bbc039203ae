// internal/handlers/preference_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"lexiscope/internal/middleware"
	"lexiscope/internal/model"
	"lexiscope/internal/service"
	"lexiscope/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type PreferenceHandler struct {
	service service.PreferenceService
}

func NewPreferenceHandler(s service.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{service: s}
}

// GetPreferences handles GET /api/v1/preferences.
func (h *PreferenceHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetPreferences"))
	profileID, ok := requireProfile(w, r, logger)
	if !ok {
		return
	}

	prefs, err := h.service.GetPreferences(r.Context(), profileID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, logger, http.StatusOK, prefs)
}

// ToggleStudyLanguage handles POST /api/v1/preferences/study-languages/{code}.
func (h *PreferenceHandler) ToggleStudyLanguage(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ToggleStudyLanguage"))
	profileID, ok := requireProfile(w, r, logger)
	if !ok {
		return
	}

	code := chi.URLParam(r, "code")
	prefs, err := h.service.ToggleStudyLanguage(r.Context(), profileID, code)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, logger, http.StatusOK, prefs)
}

// SetNativeLanguage handles PUT /api/v1/preferences/native-language.
func (h *PreferenceHandler) SetNativeLanguage(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "SetNativeLanguage"))
	profileID, ok := requireProfile(w, r, logger)
	if !ok {
		return
	}

	var req model.SetNativeLanguageRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid native language request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	prefs, err := h.service.SetNativeLanguage(r.Context(), profileID, req.Code)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, logger, http.StatusOK, prefs)
}
