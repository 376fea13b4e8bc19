package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"nifty-advisor/internal/domain"
)

const redisKeyPrefix = "series:"

// Redis is a SeriesCache backed by a Redis instance, for deployments
// that want the freshness window shared across replicas. Entries are
// JSON-encoded and expire server-side via the key TTL.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key string) (domain.PriceSeries, bool) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("series cache get %s: %v", key, err)
		}
		return nil, false
	}
	var series domain.PriceSeries
	if err := json.Unmarshal(raw, &series); err != nil {
		log.Printf("series cache decode %s: %v", key, err)
		return nil, false
	}
	return series, true
}

func (r *Redis) Put(ctx context.Context, key string, series domain.PriceSeries) {
	raw, err := json.Marshal(series)
	if err != nil {
		log.Printf("series cache encode %s: %v", key, err)
		return
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, raw, r.ttl).Err(); err != nil {
		log.Printf("series cache put %s: %v", key, err)
	}
}
