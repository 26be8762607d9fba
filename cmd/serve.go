package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"go_5_vocab_cards/internal/config"
	"go_5_vocab_cards/internal/handlers"
	"go_5_vocab_cards/internal/middleware"
	"go_5_vocab_cards/internal/repository"
	"go_5_vocab_cards/internal/service"
	"go_5_vocab_cards/internal/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "HTTP API サーバーを起動する",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loadConfigAndLogger()
		if err != nil {
			return err
		}
		slog.Info("Application starting...", slog.String("version", config.AppVersion))

		db, closeDB, err := openDB(logger)
		if err != nil {
			return err
		}
		defer closeDB()

		app := newApp(db, &config.Cfg, logger)

		reaper := service.NewSessionReaper(app.study, config.Cfg.App.SessionPurgeInterval, config.Cfg.App.SessionIdleTimeout, logger)
		if err := reaper.Start(); err != nil {
			return err
		}

		server := &http.Server{
			Addr:         config.Cfg.Server.Port,
			Handler:      app.router,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		}

		serverErr := make(chan error, 1)
		go func() {
			slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
		}()

		// Graceful Shutdown
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
		case err := <-serverErr:
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			reaper.Stop()
			return err
		}
		slog.Info("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server forced to shutdown", slog.Any("error", err))
		}
		reaper.Stop()
		// 非同期の進捗書き込みを DB を閉じる前に流し切る
		app.gateway.Wait()

		slog.Info("Server exiting")
		return nil
	},
}

// app は serve で組み立てた依存関係をまとめたもの
type app struct {
	router  http.Handler
	study   service.StudyService
	gateway *service.AsyncProgressGateway
}

func newApp(db *gorm.DB, cfg *config.Config, logger *slog.Logger) *app {
	// Dependency Injection
	wordRepo := repository.NewGormWordRepository()
	userRepo := repository.NewGormUserRepository()
	cardRepo := repository.NewGormCardProgressRepository()
	levelRepo := repository.NewGormLevelProgressRepository()

	wordService := service.NewWordService(db, wordRepo)
	authService := service.NewAuthService(db, userRepo, cfg)
	progressService := service.NewProgressService(db, cardRepo, levelRepo, wordRepo)

	gateway := service.NewAsyncProgressGateway(progressService, logger)
	controller := session.NewController(gateway, session.NewRandomDirections(cfg.App.RandomSeed))
	studyService := service.NewStudyService(wordService, progressService, controller, cfg)

	authHandler := handlers.NewAuthHandler(authService)
	wordHandler := handlers.NewWordHandler(wordService)
	progressHandler := handlers.NewProgressHandler(progressService)
	studyHandler := handlers.NewStudyHandler(studyService)

	// 認証ミドルウェアの選択
	requireUser := middleware.DevUserContextMiddleware(true)
	optionalUser := middleware.DevUserContextMiddleware(false)
	if cfg.Auth.Enabled {
		slog.Info("Applying JWT authentication middleware")
		requireUser = middleware.JWTAuthMiddleware(cfg.JWT)
		optionalUser = middleware.OptionalJWTAuthMiddleware(cfg.JWT)
	} else {
		slog.Warn("Authentication disabled, trusting X-User-ID header")
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
		Debug:            false,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)
		r.Get("/words/{level}", wordHandler.GetWordsByLevel)

		// --- ログインは任意 (匿名でも学習できる) ---
		r.Group(func(r chi.Router) {
			r.Use(optionalUser)
			r.Get("/levels", progressHandler.GetLevels)
			r.Post("/progress", progressHandler.RecordAnswer)

			r.Post("/study/{level}", studyHandler.StartSession)
			r.Route("/study/sessions/{session_id}", func(r chi.Router) {
				r.Get("/", studyHandler.GetSession)
				r.Delete("/", studyHandler.EndSession)
				r.Post("/answer", studyHandler.Answer)
				r.Post("/skip", studyHandler.Skip)
				r.Post("/retry", studyHandler.Retry)
				r.Post("/restart", studyHandler.Restart)
			})
		})

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			r.Use(requireUser)
			r.Get("/progress", progressHandler.GetStats)
			r.Get("/level-progress", progressHandler.GetLevelProgress)
			r.Post("/level-progress", progressHandler.PostLevelProgress)
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
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return &app{router: r, study: studyService, gateway: gateway}
}
