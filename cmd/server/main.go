package main

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/counterapp/counter-api/internal/api"
	"github.com/counterapp/counter-api/internal/infrastructure/config"
	mongostore "github.com/counterapp/counter-api/internal/infrastructure/db/mongo"
	redisstore "github.com/counterapp/counter-api/internal/infrastructure/db/redis"
	"github.com/counterapp/counter-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// logger is not up yet; Init with defaults just to report and exit
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// An unreachable store is fatal: refuse to serve without a data layer.
	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongostore.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, readiness will omit it")
			rdb = nil
		}
	}

	e := api.NewRouter(cfg, db, rdb, log)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
