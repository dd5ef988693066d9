package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"kuugen/internal/blobstore"
	"kuugen/internal/catalog"
	"kuugen/internal/genai"
	"kuugen/internal/http/handlers"
	httpapi "kuugen/internal/http/httpapi"
	"kuugen/internal/infra"
	"kuugen/internal/pipeline"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	store, err := newStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize blob store")
	}

	var limiter *rate.Limiter
	if cfg.GenerateRatePerMin > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.GenerateRatePerMin)), cfg.GenerateRatePerMin)
	}
	client := genai.NewClient(genai.Options{
		APIKey:      cfg.GeminiAPIKey,
		BaseURL:     cfg.GeminiBaseURL,
		Model:       cfg.GeminiModel,
		Logger:      &logger,
		MaxAttempts: cfg.GenerateMaxAttempts,
		BaseDelay:   cfg.GenerateBaseDelay,
		Limiter:     limiter,
	})

	fetcher := pipeline.NewSourceFetcher(&http.Client{Timeout: 30 * time.Second})
	coordinator := pipeline.NewCoordinator(fetcher, client, store, cfg.SourceHostSuffix, &logger)

	app := handlers.NewApp(cfg, &logger, catalog.Default(), coordinator, store, client.Model())
	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

func newStore(ctx context.Context, cfg *infra.Config) (blobstore.Store, error) {
	switch cfg.StorageDriver {
	case "s3":
		return blobstore.NewS3Store(ctx, blobstore.S3Options{
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			Bucket:        cfg.S3Bucket,
			Endpoint:      cfg.S3Endpoint,
			Region:        cfg.S3Region,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
	case "filesystem":
		return blobstore.NewFileStore(cfg.StoragePath, cfg.StorageBaseURL)
	default:
		return blobstore.NewVercelStore(blobstore.VercelOptions{
			Token:   cfg.BlobToken,
			BaseURL: cfg.BlobBaseURL,
		}), nil
	}
}
