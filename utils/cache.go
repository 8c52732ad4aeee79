// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"washly/config"

	"github.com/go-redis/redis/v8"
)

var (
	// PrefsCacheClient persists the small per-user settings that survive a
	// restart (balance visibility, recent locations).
	PrefsCacheClient *redis.Client
	// FlowCacheClient holds matching-flow snapshots for cross-instance reads.
	FlowCacheClient *redis.Client
)

// InitPrefsCache initializes the Redis client for persisted user preferences.
func InitPrefsCache() {
	PrefsCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisPrefsDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := PrefsCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Prefs Cache): %v", err)
	}
}

// GetPrefsCacheClient returns the preferences cache client.
func GetPrefsCacheClient() *redis.Client {
	if PrefsCacheClient == nil {
		InitPrefsCache()
	}
	return PrefsCacheClient
}

// InitFlowCache initializes the Redis client for matching-flow snapshots.
func InitFlowCache() {
	FlowCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisFlowDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := FlowCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Flow Cache): %v", err)
	}
}

// GetFlowCacheClient returns the flow snapshot cache client.
func GetFlowCacheClient() *redis.Client {
	if FlowCacheClient == nil {
		InitFlowCache()
	}
	return FlowCacheClient
}

// InitRedis eagerly initializes every Redis client at startup.
func InitRedis() {
	InitPrefsCache()
	InitFlowCache()
}
