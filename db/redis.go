package db

import (
	"context"
	"os"
	"time"

	"elousia-backend/utils"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis using REDIS_ADDR / REDIS_PASSWORD.
// Returns nil when Redis is not configured or unreachable; callers degrade
// gracefully by disabling response caching.
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		utils.LogError(err, "Redis unreachable, response caching disabled")
		return nil
	}

	utils.LogSuccess("Redis connection successful")
	return client
}
