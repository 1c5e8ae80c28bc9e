package config

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis dials REDIS_URL. On failure RedisClient stays nil and the
// caller decides whether to run without the shared cache and rate limiter.
func ConnectRedis() error {
	redisURL := getEnv("REDIS_URL", "")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
		Log.Warnf("⚠️  REDIS_URL not set, using local Redis: %s", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)
	res, err := client.Ping(Ctx).Result()
	if err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	RedisClient = client
	Log.Infof("✅ Connected to Redis: %s", res)
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		_ = RedisClient.Close()
	}
}
