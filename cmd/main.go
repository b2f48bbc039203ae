// cmd/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"lexiscope/internal/catalog"
	"lexiscope/internal/config"
	"lexiscope/internal/handlers"
	"lexiscope/internal/repository"
	"lexiscope/internal/service"
	"lexiscope/internal/storage"
	"lexiscope/internal/worddetail"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Configの読み込み完了後、アプリケーション全体のデフォルトロガーを設定
	logger := newLogger(tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...", slog.String("version", config.AppVersion))

	// 1. Catalog
	cat, err := catalog.Load(config.Cfg.Catalog.Path)
	if err != nil {
		slog.Error("Error loading catalog", slog.String("path", config.Cfg.Catalog.Path), slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Catalog loaded", slog.Int("categories", cat.Len()), slog.Int("words", cat.TotalWords()))

	readers := map[string]worddetail.Reader{}
	if kana, err := worddetail.NewKanaReader(); err != nil {
		slog.Warn("Japanese readings disabled", slog.Any("error", err))
	} else {
		readers["ja"] = kana // 日本語訳にカタカナの読みを付ける
	}
	builder := worddetail.NewBuilder(readers)

	// 2. Database (profiles, and blobs with the sql storage driver)
	db, err := repository.NewDB(config.Cfg.Database.Driver, config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// 3. Blob storage
	store, rdb, err := newStore(db)
	if err != nil {
		slog.Error("Error initializing storage", slog.String("driver", config.Cfg.Storage.Driver), slog.Any("error", err))
		os.Exit(1)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// 4. Dependency Injection
	locks := service.NewProfileLocks()
	progressStore := storage.NewProgressStore(store)
	prefsStore := storage.NewPreferencesStore(store)
	cardStore := storage.NewFlashcardStore(store)

	profileRepo := repository.NewGormProfileRepository()
	profileService := service.NewProfileService(db, profileRepo, store, locks, service.TokenConfig{
		Issuer: config.Cfg.App.Name,
		Secret: []byte(config.Cfg.JWT.SecretKey),
		TTL:    config.Cfg.JWT.AccessTokenTTL,
	})
	progressService := service.NewProgressService(cat, progressStore, locks)

	router := handlers.NewRouter(handlers.RouterConfig{
		Logger: logger,
		CORS: cors.Options{
			AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
			AllowedMethods:   config.Cfg.CORS.AllowedMethods,
			AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
			ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
			AllowCredentials: config.Cfg.CORS.AllowCredentials,
			MaxAge:           config.Cfg.CORS.MaxAge,
			Debug:            false, // CORSライブラリのデバッグログは常に無効
		},
		AuthEnabled:    config.Cfg.Auth.Enabled,
		JWTSecret:      []byte(config.Cfg.JWT.SecretKey),
		RequestTimeout: 60 * time.Second,
		HealthCheck: func(ctx context.Context) error {
			if err := sqlDB.PingContext(ctx); err != nil {
				return fmt.Errorf("ping database: %w", err)
			}
			if rdb != nil {
				if err := rdb.Ping(ctx).Err(); err != nil {
					return fmt.Errorf("ping redis: %w", err)
				}
			}
			return nil
		},
		Profiles:    profileService,
		Catalog:     service.NewCatalogService(cat, progressStore, prefsStore, cardStore),
		Progress:    progressService,
		Preferences: service.NewPreferenceService(prefsStore, locks),
		Flashcards:  service.NewFlashcardService(cat, builder, cardStore, locks),
		Words:       service.NewWordService(cat, builder, progressService, prefsStore, cardStore),
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 65 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

// newLogger builds the application logger: tint in APP_ENV=dev, JSON otherwise.
func newLogger(tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo) // 不明な場合はInfo
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}

// newStore opens the configured blob backend. The redis client is returned so
// main can close it and include it in health checks.
func newStore(db *gorm.DB) (storage.Store, *goredis.Client, error) {
	switch config.Cfg.Storage.Driver {
	case config.StorageSQL:
		return storage.NewSQLStore(db), nil, nil
	case config.StorageRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		rc := config.Cfg.Storage.Redis
		rdb, err := storage.DialRedis(ctx, rc.Addr, rc.Password, rc.DB)
		if err != nil {
			return nil, nil, err
		}
		return storage.NewRedisStore(rdb, rc.Prefix), rdb, nil
	case config.StorageMemory:
		slog.Warn("Using in-memory storage: data is lost on restart")
		return storage.NewMemoryStore(), nil, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", config.Cfg.Storage.Driver)
}
