// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_vocab_ai/internal/config"
	"go_5_vocab_ai/internal/events"
	"go_5_vocab_ai/internal/handlers"
	"go_5_vocab_ai/internal/llm"
	"go_5_vocab_ai/internal/middleware"
	"go_5_vocab_ai/internal/repository"
	"go_5_vocab_ai/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
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
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	if strings.ToLower(config.Cfg.App.Env) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", config.Cfg.App.Env))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", config.Cfg.App.Env))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// Database
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
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

	// Dependency Injection
	bus := events.NewBus()
	textModel := llm.NewGeminiClient(config.Cfg.Gemini.GenerationModel, config.Cfg.Gemini.EmbeddingModel)
	mailer := service.NewMailer(&config.Cfg)

	profileRepo := repository.NewGormProfileRepository()
	vocabRepo := repository.NewGormVocabularyRepository()
	categoryRepo := repository.NewGormCategoryRepository()
	tokenRepo := repository.NewGormTokenRepository()

	authService := service.NewAuthService(db, profileRepo, tokenRepo, mailer, &config.Cfg)
	profileService := service.NewProfileService(db, profileRepo)
	vocabService := service.NewVocabularyService(db, vocabRepo, bus)
	categoryService := service.NewCategoryService(db, categoryRepo, vocabRepo)
	enrichmentService := service.NewEnrichmentService(db, vocabRepo, textModel, bus, &config.Cfg)
	quizService := service.NewQuizService(db, vocabRepo, &config.Cfg)

	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	vocabHandler := handlers.NewVocabularyHandler(vocabService, logger)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	enrichmentHandler := handlers.NewEnrichmentHandler(enrichmentService)
	quizHandler := handlers.NewQuizHandler(quizService)
	eventsHandler := handlers.NewEventsHandler(bus)

	// Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)

	var authMW func(http.Handler) http.Handler
	if config.Cfg.Auth.Enabled {
		slog.Info("Applying JWT authentication middleware")
		authMW = middleware.JWTAuthMiddleware(&config.Cfg)
	} else {
		slog.Warn("Auth disabled. Applying DEV profile header middleware")
		authMW = middleware.DevProfileContextMiddleware
	}

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// SSEは接続を張り続けるため、タイムアウトの外に置く
		r.With(authMW).Get("/events", eventsHandler.Stream)

		// AI補完呼び出しを見込んだタイムアウト
		r.Group(func(r chi.Router) {
			r.Use(chimiddleware.Timeout(120 * time.Second))

			// --- Public routes ---
			r.Post("/auth/register", authHandler.Register)
			r.Get("/auth/verify", authHandler.VerifyAccount)
			r.Post("/auth/login", authHandler.Login)
			r.Post("/auth/forgot-password", authHandler.ForgotPassword)
			r.Post("/auth/reset-password", authHandler.ResetPassword)

			// --- Protected routes ---
			r.Group(func(r chi.Router) {
				r.Use(authMW)

				// Profile / credential routes
				r.Route("/profile", func(r chi.Router) {
					r.Get("/", profileHandler.GetMe)
					r.Patch("/", profileHandler.PatchMe)
					r.Put("/credential", profileHandler.PutCredential)
					r.Get("/credential", profileHandler.GetCredential)
					r.Delete("/credential", profileHandler.DeleteCredential)
				})

				// Vocabulary routes
				r.Route("/vocabularies", func(r chi.Router) {
					r.Post("/", vocabHandler.PostVocabulary)
					r.Get("/", vocabHandler.GetVocabularies)
					r.Get("/{vocabulary_id}", vocabHandler.GetVocabulary)
					r.Patch("/{vocabulary_id}", vocabHandler.PatchVocabulary)
					r.Delete("/{vocabulary_id}", vocabHandler.DeleteVocabulary)
					r.Put("/{vocabulary_id}/review", vocabHandler.SubmitReview)
				})

				// Category routes
				r.Route("/categories", func(r chi.Router) {
					r.Post("/", categoryHandler.PostCategory)
					r.Get("/", categoryHandler.GetCategories)
					r.Delete("/{category_id}", categoryHandler.DeleteCategory)
				})

				// AI enrichment
				r.Post("/enrichment", enrichmentHandler.Enrich)

				// Quiz
				r.Post("/quizzes", quizHandler.PostQuiz)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err = sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 0, // SSEストリームを切らないためWriteTimeoutは設けない
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

	slog.Info("Server exited gracefully")
}
