package utils

import (
	"context"
	"log"
	"time"

	"driveline/config"

	"github.com/go-redis/redis/v8"
)

var (
	// DraftCacheClient holds in-flight booking wizard drafts.
	DraftCacheClient *redis.Client
	// AuthCacheClient is the dedicated client for auth session caching.
	AuthCacheClient *redis.Client
	// DeviceCacheClient holds per-user push notification device tokens.
	DeviceCacheClient *redis.Client
)

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (DB %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients up front.
func InitRedis() {
	DraftCacheClient = newRedisClient(config.AppConfig.RedisDraftDB)
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	DeviceCacheClient = newRedisClient(config.AppConfig.RedisDeviceDB)
}

// GetDraftCacheClient returns the Redis client for booking drafts.
func GetDraftCacheClient() *redis.Client {
	if DraftCacheClient == nil {
		DraftCacheClient = newRedisClient(config.AppConfig.RedisDraftDB)
	}
	return DraftCacheClient
}

// GetAuthCacheClient returns the Redis client for auth sessions.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetDeviceCacheClient returns the Redis client for device tokens.
func GetDeviceCacheClient() *redis.Client {
	if DeviceCacheClient == nil {
		DeviceCacheClient = newRedisClient(config.AppConfig.RedisDeviceDB)
	}
	return DeviceCacheClient
}
