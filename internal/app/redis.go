package app

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/pkamenev/go-task-manager/internal/config"
)

var globalRedisClient *redis.Client

// MustConnectRedis establishes the cache connection. The cache is an
// optimization, but an unreachable Redis at startup is treated as a
// configuration problem rather than silently degrading every read.
func MustConnectRedis() {
	cfg := config.Global().Redis

	globalRedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	err := globalRedisClient.Ping(context.Background()).Err()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to ping redis")
		panic(err)
	}
	globalLogger.Info().
		Str("addr", cfg.Addr).
		Msg("connected to redis")
}

func DisconnectRedis() {
	err := globalRedisClient.Close()
	if err != nil {
		globalLogger.Error().
			Err(err).
			Msg("failed to close redis client")
		return
	}
	globalLogger.Info().Msg("disconnected from redis")
}
