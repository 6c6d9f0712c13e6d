package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Jain-Tirth/Journalite/internal/analytics"
	"github.com/Jain-Tirth/Journalite/internal/app"
	"github.com/Jain-Tirth/Journalite/internal/config"
	"github.com/Jain-Tirth/Journalite/internal/database"
	"github.com/Jain-Tirth/Journalite/internal/domain"
	"github.com/Jain-Tirth/Journalite/internal/logging"
	"github.com/Jain-Tirth/Journalite/internal/metrics"
	"github.com/Jain-Tirth/Journalite/internal/mood"
	"github.com/Jain-Tirth/Journalite/internal/redis"
	"github.com/Jain-Tirth/Journalite/internal/server"
	"github.com/Jain-Tirth/Journalite/internal/version"
)

func setupConfig() *config.Config {
	// Missing .env is fine in production; env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupDB(cfg *config.Config) *pgxpool.Pool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return db
}

func setupRedis(ctx context.Context, cfg *config.Config) *goredis.Client {
	client, err := redis.Connect(ctx, cfg.RedisURL)
	if err != nil {
		slog.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	return client
}

// setupDetector wires the fusion detector. The classifier and generative
// collaborators are optional: each is enabled only when its configuration
// is present, and the detector degrades gracefully without them.
func setupDetector(cfg *config.Config, scorer *mood.LexicalScorer) *mood.Detector {
	var classifier domain.EmotionClassifier
	if cfg.EmotionAPIURL != "" {
		classifier = mood.NewHTTPClassifier(cfg.EmotionAPIURL, cfg.EmotionAPIToken, cfg.EmotionAPITimeout)
		slog.Info("Emotion classifier enabled", "url", cfg.EmotionAPIURL)
	} else {
		slog.Info("Emotion classifier disabled, no EMOTION_API_URL configured")
	}

	var generative domain.GenerativeAnalyzer
	if cfg.OpenAIAPIKey != "" {
		generative = mood.NewOpenAIAnalyzer(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.GenerativeRate)
		slog.Info("Generative analyzer enabled", "model", cfg.OpenAIModel)
	} else {
		slog.Info("Generative analyzer disabled, no OPENAI_API_KEY configured")
	}

	return mood.NewDetector(scorer, classifier, generative)
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	// Initialize structured logging
	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	build := version.Get()
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port, "version", build.Version)
	metrics.BuildInfo.WithLabelValues(build.Version, build.Commit, build.BuildTime, build.GoVersion).Set(1)

	pool := setupDB(cfg)
	defer pool.Close()

	redisClient := setupRedis(context.Background(), cfg)
	defer func() { _ = redisClient.Close() }()

	scorer := mood.NewLexicalScorer(nil)
	detector := setupDetector(cfg, scorer)
	engine := analytics.NewEngine(scorer)

	entryRepo := database.NewEntryRepo(pool)
	requestLog := database.NewRequestLog(pool)
	prefsRepo := database.NewPreferencesRepo(pool)
	insightsCache := redis.NewInsightsCache(redisClient)

	appSvc := app.NewService(detector, engine, entryRepo, insightsCache, requestLog, prefsRepo, clock, cfg.BatchWorkers)

	srv := server.NewServer(cfg, appSvc, pool, redisClient)

	done := runGracefulShutdown(srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
