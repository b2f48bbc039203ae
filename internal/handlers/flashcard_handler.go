// internal/handlers/flashcard_handler.go
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

type FlashcardHandler struct {
	service service.FlashcardService
}

func NewFlashcardHandler(s service.FlashcardService) *FlashcardHandler {
	return &FlashcardHandler{service: s}
}

// ListFlashcards handles GET /api/v1/flashcards.
func (h *FlashcardHandler) ListFlashcards(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListFlashcards"))
	profileID, ok := requireProfile(w, r, logger)
	if !ok {
		return
	}

	cards, err := h.service.ListFlashcards(r.Context(), profileID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if cards == nil {
		cards = model.FlashcardSet{}
	}
	webutil.RespondWithJSON(w, logger, http.StatusOK, cards)
}

// SaveFlashcard handles POST /api/v1/flashcards. A new card answers 201, an
// existing one 200 with already_saved set.
func (h *FlashcardHandler) SaveFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "SaveFlashcard"))
	profileID, ok := requireProfile(w, r, logger)
	if !ok {
		return
	}

	var req model.SaveFlashcardRequest
	if err := webutil.DecodeAndValidate(w, r, &req); err != nil {
		logger.Warn("Invalid save flashcard request", slog.String("error", err.Error()))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.SaveFlashcard(r.Context(), profileID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	status := http.StatusCreated
	if resp.AlreadySaved {
		status = http.StatusOK
	}
	webutil.RespondWithJSON(w, logger, status, resp)
}

// RemoveFlashcard handles DELETE /api/v1/flashcards/{hotspotID}.
func (h *FlashcardHandler) RemoveFlashcard(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "RemoveFlashcard"))
	profileID, ok := requireProfile(w, r, logger)
	if !ok {
		return
	}

	if err := h.service.RemoveFlashcard(r.Context(), profileID, chi.URLParam(r, "hotspotID")); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
