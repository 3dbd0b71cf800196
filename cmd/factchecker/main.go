package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	"github.com/andriskumpel/combate-desinformacao/internal/analyzer"
	"github.com/andriskumpel/combate-desinformacao/internal/cache"
	"github.com/andriskumpel/combate-desinformacao/internal/classifier"
	"github.com/andriskumpel/combate-desinformacao/internal/config"
	"github.com/andriskumpel/combate-desinformacao/internal/inference"
	"github.com/andriskumpel/combate-desinformacao/internal/media"
	"github.com/andriskumpel/combate-desinformacao/internal/publisher"
	"github.com/andriskumpel/combate-desinformacao/internal/scheduler"
	"github.com/andriskumpel/combate-desinformacao/internal/server"
	"github.com/andriskumpel/combate-desinformacao/internal/service"
	"github.com/andriskumpel/combate-desinformacao/internal/storage/bolt"
	"github.com/andriskumpel/combate-desinformacao/internal/storage/postgres"
)

// @title Plataforma de Verificação de Fatos
// @version 1.0.0
// @description Fact-checking API for text, image and video content.
// @BasePath /api/v1
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, txManager, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore.Close()
	logger.Info("store ready", "driver", cfg.Storage.Driver)

	var statusCache service.StatusCache
	if cfg.Redis.URL != "" {
		rdb, err := cache.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()
		statusCache = cache.NewStatusCache(rdb, cfg.Redis.StatusTTL)
		logger.Info("status cache enabled", "ttl", cfg.Redis.StatusTTL)
	}

	var events service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	models := inference.New(inference.Config{
		TextURL:        cfg.Inference.TextURL,
		ImageURL:       cfg.Inference.ImageURL,
		APIToken:       cfg.Inference.APIToken,
		Timeout:        cfg.Inference.Timeout,
		MaxAttempts:    cfg.Inference.Retry.MaxAttempts,
		InitialBackoff: cfg.Inference.Retry.InitialBackoff,
		MaxBackoff:     cfg.Inference.Retry.MaxBackoff,
	}, logger)

	verifications := service.NewVerificationService(
		store,
		txManager,
		analyzer.New(models, models, media.NewFFProbe(cfg.Media.FFProbePath), cfg.Media.TempDir, logger),
		classifier.New(cfg.Classifier),
		statusCache,
		events,
		logger,
		cfg.Sweeper,
	)

	if cfg.Sweeper.Enabled {
		sched := scheduler.NewScheduler(verifications, cfg.Sweeper.Interval, 0, logger)
		go func() {
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
			}
		}()
	}

	httpSrv := server.NewHTTPServer(cfg.HTTP, server.New(cfg, verifications, logger))

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	logger.Info("starting fact checker",
		"addr", cfg.HTTP.Addr,
		"prefix", cfg.Project.APIPrefix,
		"version", cfg.Project.Version,
		"confidence_threshold", cfg.Classifier.ConfidenceThreshold,
		"text_model", cfg.Inference.TextModel,
		"image_model", cfg.Inference.ImageModel,
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig)
	case <-ctx.Done():
	}
	cancel()

	shutCtx, cancelShut := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShut()
	if err := httpSrv.Shutdown(shutCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
	logger.Info("stopped")
}

func openStore(ctx context.Context, cfg *config.Config) (service.VerificationStore, service.TransactionManager, io.Closer, error) {
	if cfg.Storage.Driver == "bolt" {
		db, err := bolt.Open(cfg.Storage.BoltPath)
		if err != nil {
			return nil, nil, nil, err
		}
		return bolt.NewVerificationStore(db), bolt.NewTransactionManager(db), db, nil
	}

	db, err := postgres.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, nil, nil, err
	}
	return postgres.NewVerificationStore(db), postgres.NewTransactionManager(db), db, nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
