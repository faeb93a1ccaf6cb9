package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"UrbanStore/internal/cache"
	"UrbanStore/internal/catalog"
	"UrbanStore/internal/config"
	"UrbanStore/pkg/kit"
)

func main() {
	service := "storefront"

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := kit.NewLogger(service, cfg.Server.DevLog)
	defer func() { _ = log.Sync() }()

	var cacheStore cache.Store
	if cfg.Cache.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		cacheStore = cache.NewRedisStore(client)
		log.Info("response cache on redis", zap.String("addr", cfg.Cache.RedisAddr))
	} else {
		cacheStore = cache.NewMemStore()
		log.Info("response cache in memory")
	}

	limiter := kit.NewIPRateLimiter(cfg.Rate.Limit, cfg.Rate.WindowSeconds)

	s := &catalog.Server{
		Store:            catalog.NewStore(),
		Cache:            cacheStore,
		Log:              log,
		RevalidateSecret: cfg.Server.RevalidateSecret,
		RateLimit:        limiter.Middleware,
		LatencyEnabled:   cfg.Server.LatencyEnabled,
	}

	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.Server.MetricsEnabled,
		MetricsToken:   cfg.Server.MetricsToken,
	})

	if err := kit.RunHTTPServer(":"+cfg.Server.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}
