package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopstack/ecommerce-api/internal/api"
	"github.com/shopstack/ecommerce-api/internal/infrastructure/db/mongo"
	"github.com/shopstack/ecommerce-api/internal/infrastructure/db/redis"
	"github.com/shopstack/ecommerce-api/internal/infrastructure/event"
	"github.com/shopstack/ecommerce-api/internal/pkg/config"
	"github.com/shopstack/ecommerce-api/pkg/logger"
)

const (
	shutdownTimeout   = 10 * time.Second
	lowStockThreshold = 5
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	// Unique indexes on email and sku are the authoritative uniqueness guards.
	if err := mongo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongo.NewProductRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("product index creation failed")
	}

	// --- Redis ---
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Event bus ---
	bus := event.NewBus(log)
	bus.Subscribe("audit_log", event.NewAuditLogger(log))
	bus.Subscribe("metrics", event.NewMetricsRecorder())
	bus.Subscribe("low_stock", event.NewLowStockWarner(log, lowStockThreshold))
	bus.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(db, rdb, bus, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
