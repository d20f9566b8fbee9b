package bootstrap

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	heurekaclient "github.com/tkadlec/conversions-backend/internal/client/heureka"
	"github.com/tkadlec/conversions-backend/internal/config"
	"github.com/tkadlec/conversions-backend/internal/store"
	"github.com/tkadlec/conversions-backend/pkg/logger"
)

type Bootstrap struct {
	Log      *slog.Logger
	Heureka  *heurekaclient.Adapter
	DayCache store.DayCache
	redis    *redis.Client
}

func Run(cfg *config.Config) (*Bootstrap, error) {
	applicationCtx := context.Background()
	bs := new(Bootstrap)

	bs.Log = logger.New(cfg.LogLevel, logger.NewJSONHandler)
	bs.Heureka = heurekaclient.NewAdapter(cfg.HeurekaBaseURL, cfg.HeurekaAPIKey)

	if cfg.RedisAddr != "" {
		client, err := initRedis(applicationCtx, cfg)
		if err != nil {
			return bs, err
		}
		bs.redis = client
		bs.DayCache = store.NewRedisCache(client, cfg.CacheTTL)
		bs.Log.Info("day cache backend", "backend", "redis", "addr", cfg.RedisAddr)
	} else {
		bs.DayCache = store.NewMemoryCache(cfg.CacheTTL)
		bs.Log.Info("day cache backend", "backend", "memory")
	}

	return bs, nil
}

func (bs *Bootstrap) Close() {
	if bs.redis != nil {
		if err := bs.redis.Close(); err != nil {
			bs.Log.Warn("redis close failed", "error", err)
		}
	}
}
