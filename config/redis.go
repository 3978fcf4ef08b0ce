package config

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/ashishk-dev/renteasy-backend/utils"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	Ctx         = context.Background()
)

// InitRedis returns the shared listing-cache client, or nil when REDIS_ADDR
// is unset. Handlers treat a missing cache as "cache disabled".
func InitRedis() *redis.Client {
	redisOnce.Do(func() {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			utils.Logger.Info("REDIS_ADDR not set, listing cache disabled")
			return
		}

		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASS"),
			DB:       0,
		})

		if _, err := client.Ping(Ctx).Result(); err != nil {
			utils.Logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		utils.Logger.Info("Connected to Redis")
		redisClient = client
	})
	return redisClient
}

// RedisListingCache backs the controllers' ListingCache with Redis.
// A missing key reads as an empty payload, not an error.
type RedisListingCache struct {
	client *redis.Client
}

func NewListingCache(client *redis.Client) *RedisListingCache {
	return &RedisListingCache{client: client}
}

func (c *RedisListingCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (c *RedisListingCache) Set(ctx context.Context, key string, payload []byte, expiry time.Duration) error {
	return c.client.Set(ctx, key, payload, expiry).Err()
}

func (c *RedisListingCache) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
