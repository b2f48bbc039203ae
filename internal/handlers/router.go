// internal/handlers/router.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"lexiscope/internal/middleware"
	"lexiscope/internal/service"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// RouterConfig carries everything NewRouter wires together.
type RouterConfig struct {
	Logger *slog.Logger
	CORS   cors.Options

	// AuthEnabled selects bearer tokens signed with JWTSecret. Otherwise the
	// X-Profile-ID header is trusted.
	AuthEnabled bool
	JWTSecret   []byte

	RequestTimeout time.Duration
	// HealthCheck reports whether the storage backend is reachable.
	HealthCheck func(ctx context.Context) error

	Profiles    service.ProfileService
	Catalog     service.CatalogService
	Progress    service.ProgressService
	Preferences service.PreferenceService
	Flashcards  service.FlashcardService
	Words       service.WordService
}

func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	profileHandler := NewProfileHandler(cfg.Profiles)
	catalogHandler := NewCatalogHandler(cfg.Catalog, cfg.Progress, cfg.Preferences)
	wordHandler := NewWordHandler(cfg.Words)
	preferenceHandler := NewPreferenceHandler(cfg.Preferences)
	flashcardHandler := NewFlashcardHandler(cfg.Flashcards)
	pageHandler := NewPageHandler(cfg.Catalog, cfg.Progress, cfg.Preferences)

	var auth func(http.Handler) http.Handler
	if cfg.AuthEnabled {
		logger.Info("Applying JWT authentication middleware")
		auth = middleware.JWTAuthMiddleware(cfg.JWTSecret, cfg.Profiles)
	} else {
		logger.Warn("Authentication disabled: trusting the X-Profile-ID header")
		auth = middleware.DevProfileContextMiddleware
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))
	r.Use(cors.New(cfg.CORS).Handler)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if cfg.HealthCheck != nil {
			if err := cfg.HealthCheck(r.Context()); err != nil {
				middleware.GetLogger(r.Context()).Error("Health check failed", slog.Any("error", err))
				http.Error(w, "Health check failed", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// HTMLページ: 認証は任意 (あれば進捗と学習言語を表示)
	r.Group(func(r chi.Router) {
		r.Use(optionalAuth(auth))
		r.Get("/", pageHandler.Index)
		r.Get("/category/{categoryID}", pageHandler.Category)
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes. Credentials are optional here; when present they
		// are checked and add the caller's progress and languages.
		r.Post("/profiles", profileHandler.CreateProfile)
		r.Group(func(r chi.Router) {
			r.Use(optionalAuth(auth))
			r.Get("/categories", catalogHandler.ListCategories)
			r.Get("/categories/{categoryID}", catalogHandler.GetCategory)
			r.Get("/categories/{categoryID}/surface", catalogHandler.GetSurface)
		})

		// --- Protected routes (認証必須) ---
		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Delete("/profile", profileHandler.DeleteProfile)
			r.Get("/stats", catalogHandler.GetStats)
			r.Get("/categories/{categoryID}/progress", catalogHandler.GetCategoryProgress)
			r.Post("/categories/{categoryID}/hotspots/{hotspotID}/activate", wordHandler.ActivateHotspot)

			r.Route("/preferences", func(r chi.Router) {
				r.Get("/", preferenceHandler.GetPreferences)
				r.Post("/study-languages/{code}", preferenceHandler.ToggleStudyLanguage)
				r.Put("/native-language", preferenceHandler.SetNativeLanguage)
			})

			r.Route("/flashcards", func(r chi.Router) {
				r.Get("/", flashcardHandler.ListFlashcards)
				r.Post("/", flashcardHandler.SaveFlashcard)
				r.Delete("/{hotspotID}", flashcardHandler.RemoveFlashcard)
			})
		})
	})

	return r
}

// optionalAuth runs auth only for requests that carry credentials.
func optionalAuth(auth func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		authed := auth(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" && r.Header.Get(middleware.ProfileIDHeader) == "" {
				next.ServeHTTP(w, r)
				return
			}
			authed.ServeHTTP(w, r)
		})
	}
}
