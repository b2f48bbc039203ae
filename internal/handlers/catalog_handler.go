// internal/handlers/catalog_handler.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"lexiscope/internal/middleware"
	"lexiscope/internal/model"
	"lexiscope/internal/service"
	"lexiscope/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalog  service.CatalogService
	progress service.ProgressService
	prefs    service.PreferenceService
}

func NewCatalogHandler(c service.CatalogService, p service.ProgressService, prefs service.PreferenceService) *CatalogHandler {
	return &CatalogHandler{catalog: c, progress: p, prefs: prefs}
}

// ListCategories handles GET /api/v1/categories?q=.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "ListCategories"))

	cards, err := h.catalog.ListCategories(r.Context(), optionalProfile(r), r.URL.Query().Get("q"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Debug("Categories listed", slog.Int("count", len(cards)))
	webutil.RespondWithJSON(w, logger, http.StatusOK, cards)
}

// GetCategory handles GET /api/v1/categories/{categoryID}.
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetCategory"))

	c, err := h.catalog.GetCategory(r.Context(), chi.URLParam(r, "categoryID"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, logger, http.StatusOK, c)
}

// GetSurface handles GET /api/v1/categories/{categoryID}/surface.
//
// Query parameters: variant (image|3d), labels (default true), quiz, hover
// (a hotspot id) and langs (comma separated study languages). Without langs
// the caller's stored study languages are used, or the defaults for
// anonymous requests.
func (h *CatalogHandler) GetSurface(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetSurface"))
	q := r.URL.Query()

	labels, err := boolParam(q.Get("labels"), "labels", true)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	quiz, err := boolParam(q.Get("quiz"), "quiz", false)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	langs := splitList(q.Get("langs"))
	if len(langs) == 0 {
		if profileID := optionalProfile(r); profileID != uuid.Nil {
			prefs, err := h.prefs.GetPreferences(r.Context(), profileID)
			if err != nil {
				webutil.HandleError(w, logger, err)
				return
			}
			langs = prefs.StudyLanguages
		}
	}

	resp, err := h.catalog.Surface(r.Context(), chi.URLParam(r, "categoryID"), service.SurfaceQuery{
		Variant:        q.Get("variant"),
		ShowLabels:     labels,
		Quiz:           quiz,
		Hover:          q.Get("hover"),
		StudyLanguages: langs,
	})
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, logger, http.StatusOK, resp)
}

// GetCategoryProgress handles GET /api/v1/categories/{categoryID}/progress.
func (h *CatalogHandler) GetCategoryProgress(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetCategoryProgress"))
	profileID, ok := requireProfile(w, r, logger)
	if !ok {
		return
	}

	p, err := h.progress.CategoryProgress(r.Context(), profileID, chi.URLParam(r, "categoryID"))
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, logger, http.StatusOK, p)
}

// GetStats handles GET /api/v1/stats.
func (h *CatalogHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "GetStats"))
	profileID, ok := requireProfile(w, r, logger)
	if !ok {
		return
	}

	stats, err := h.catalog.Stats(r.Context(), profileID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, logger, http.StatusOK, stats)
}

func boolParam(raw, name string, def bool) (bool, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, model.NewAppError("INVALID_QUERY", fmt.Sprintf("%s must be true or false.", name), name, model.ErrInvalidInput)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
