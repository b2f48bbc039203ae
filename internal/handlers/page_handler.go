// internal/handlers/page_handler.go
package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"lexiscope/internal/middleware"
	"lexiscope/internal/model"
	"lexiscope/internal/service"
	"lexiscope/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"markdown": webutil.RenderMarkdown,
	"presentation": func(p model.Presentation) string {
		switch p {
		case model.PresentationImage:
			return "Image"
		case model.PresentationModel3D:
			return "3D Model"
		case model.PresentationBoth:
			return "Image + 3D"
		}
		return string(p)
	},
}

func parsePage(name string) *template.Template {
	return template.Must(template.New(name).Funcs(templateFuncs).ParseFS(templateFS, "templates/base.html", "templates/"+name))
}

var (
	indexPage    = parsePage("index.html")
	categoryPage = parsePage("category.html")
	notFoundPage = parsePage("not_found.html")
)

type indexData struct {
	Query string
	Stats model.Stats
	Cards []model.CategoryCard
}

type categoryData struct {
	Category   model.Category
	Surface    *service.SurfaceResponse
	ShowLabels bool
	Quiz       bool
	Progress   *model.CategoryProgress
}

type notFoundData struct {
	ID string
}

// PageHandler serves the server rendered HTML pages. Credentials are
// optional: with a profile the pages show its progress and study languages.
type PageHandler struct {
	catalog  service.CatalogService
	progress service.ProgressService
	prefs    service.PreferenceService
}

func NewPageHandler(c service.CatalogService, p service.ProgressService, prefs service.PreferenceService) *PageHandler {
	return &PageHandler{catalog: c, progress: p, prefs: prefs}
}

// Index handles GET / with an optional ?q= search.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "Index"))
	query := r.URL.Query().Get("q")
	profileID := optionalProfile(r)

	all, err := h.catalog.ListCategories(r.Context(), profileID, "")
	if err != nil {
		h.renderError(w, logger, err)
		return
	}
	cards := all
	if query != "" {
		if cards, err = h.catalog.ListCategories(r.Context(), profileID, query); err != nil {
			h.renderError(w, logger, err)
			return
		}
	}

	stats := model.Stats{
		TotalCategories: len(all),
		Languages:       len(model.SupportedLanguages()),
	}
	for _, c := range all {
		stats.TotalWords += c.TotalHotspots
		if c.Progress != nil {
			stats.WordsLearned += c.Progress.Learned
		}
	}
	render(w, logger, indexPage, http.StatusOK, indexData{Query: query, Stats: stats, Cards: cards})
}

// Category handles GET /category/{categoryID}. ?view= selects the tab,
// ?labels= and ?quiz= toggle the labels. Invalid values fall back to the
// defaults instead of failing the page.
func (h *PageHandler) Category(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "categoryID")
	logger := middleware.GetLogger(r.Context()).With(slog.String("handler", "Category"), slog.String("category_id", id))
	q := r.URL.Query()
	profileID := optionalProfile(r)

	c, err := h.catalog.GetCategory(r.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Category page not found")
			render(w, logger, notFoundPage, http.StatusNotFound, notFoundData{ID: id})
			return
		}
		h.renderError(w, logger, err)
		return
	}

	labels, err := boolParam(q.Get("labels"), "labels", true)
	if err != nil {
		labels = true
	}
	quiz, err := boolParam(q.Get("quiz"), "quiz", false)
	if err != nil {
		quiz = false
	}

	data := categoryData{Category: c, ShowLabels: labels, Quiz: quiz}
	var langs []string
	if profileID != uuid.Nil {
		prefs, err := h.prefs.GetPreferences(r.Context(), profileID)
		if err != nil {
			h.renderError(w, logger, err)
			return
		}
		langs = prefs.StudyLanguages

		p, err := h.progress.CategoryProgress(r.Context(), profileID, id)
		if err != nil {
			h.renderError(w, logger, err)
			return
		}
		data.Progress = &p
	}

	query := service.SurfaceQuery{
		Variant:        q.Get("view"),
		ShowLabels:     labels,
		Quiz:           quiz,
		StudyLanguages: langs,
	}
	surf, err := h.catalog.Surface(r.Context(), id, query)
	if errors.Is(err, model.ErrInvalidInput) {
		// An unknown or unavailable tab falls back to the default one.
		query.Variant = ""
		surf, err = h.catalog.Surface(r.Context(), id, query)
	}
	if err != nil {
		h.renderError(w, logger, err)
		return
	}
	data.Surface = surf
	render(w, logger, categoryPage, http.StatusOK, data)
}

func (h *PageHandler) renderError(w http.ResponseWriter, logger *slog.Logger, err error) {
	logger.Error("Failed to render page", slog.Any("error", err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func render(w http.ResponseWriter, logger *slog.Logger, tmpl *template.Template, status int, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		logger.Error("Failed to execute template", slog.String("template", tmpl.Name()), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn("Failed to write page", slog.Any("error", err))
	}
}
