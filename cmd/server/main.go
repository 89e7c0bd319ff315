package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/newsdesk-cms/internal/api"
	"github.com/newsdesk-cms/internal/auth"
	"github.com/newsdesk-cms/internal/config"
	"github.com/newsdesk-cms/internal/database"
	"github.com/newsdesk-cms/internal/repository"
	"github.com/newsdesk-cms/internal/service"
	"github.com/newsdesk-cms/pkg/logger"
)

func main() {
	// Load .env if present, real environment wins
	_ = godotenv.Load()

	// Initialize logger
	log := logger.New()
	log.Info().Msg("Starting Newsdesk CMS server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize database
	db, err := database.New(&cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations
	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}
	if err := db.RunMigrations(migrationsPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	// Initialize repositories
	repos := repository.New(db)

	// Initialize services
	services := service.NewServices(repos, cfg, log)

	// The settings row must exist before the site can render
	if err := services.Settings.Ensure(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize site settings")
	}

	tokens := auth.NewTokenManager(cfg.Auth.SessionSecret)

	// Start the scheduled-publish sweep
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	go runPublishSweep(sweepCtx, services, cfg.Server.SweepInterval, log)
	log.Info().Dur("interval", cfg.Server.SweepInterval).Msg("Publish sweep started")

	// Initialize router
	router := api.NewRouter(services, cfg, tokens, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	stopSweep()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
}

// runPublishSweep periodically publishes scheduled articles whose time
// has passed.
func runPublishSweep(ctx context.Context, services *service.Services, interval time.Duration, log zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Publish sweep stopped")
			return
		case <-ticker.C:
			published, err := services.Article.PublishDue(ctx)
			if err != nil {
				log.Error().Err(err).Msg("Publish sweep failed")
				continue
			}
			if len(published) > 0 {
				log.Info().Int("count", len(published)).Msg("Published scheduled articles")
			}
		}
	}
}
