// internal/handlers/word_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"lexiscope/internal/middleware"
	"lexiscope/internal/service"
	"lexiscope/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type WordHandler struct {
	service service.WordService
}

func NewWordHandler(s service.WordService) *WordHandler {
	return &WordHandler{service: s}
}

// ActivateHotspot handles POST /api/v1/categories/{categoryID}/hotspots/{hotspotID}/activate.
// It opens the word detail and records the view.
func (h *WordHandler) ActivateHotspot(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ActivateHotspot"))
	profileID, ok := requireProfile(w, r, logger)
	if !ok {
		return
	}

	categoryID := chi.URLParam(r, "categoryID")
	hotspotID := chi.URLParam(r, "hotspotID")
	logger = logger.With(slog.String("category_id", categoryID), slog.String("hotspot_id", hotspotID))

	resp, err := h.service.Activate(r.Context(), profileID, categoryID, hotspotID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Hotspot activated", slog.Int("learned", resp.Progress.Learned), slog.Int("total", resp.Progress.Total))
	webutil.RespondWithJSON(w, logger, http.StatusOK, resp)
}
