package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tkadlec/conversions-backend/internal/dto"
)

const dayKeyPrefix = "conversions:day:"

// RedisCache is the shared DayCache backend, used when REDISADDR is set so
// multiple instances reuse each other's provider fetches.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, date string) ([]dto.RawConversion, bool, error) {
	b, err := c.client.Get(ctx, dayKeyPrefix+date).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var recs []dto.RawConversion
	if err := json.Unmarshal(b, &recs); err != nil {
		// stale or foreign value under our key, treat as a miss
		return nil, false, err
	}
	return recs, true, nil
}

func (c *RedisCache) Set(ctx context.Context, date string, recs []dto.RawConversion) error {
	b, err := json.Marshal(recs)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, dayKeyPrefix+date, b, c.ttl).Err()
}
