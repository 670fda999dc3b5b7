// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"medicare/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for authorization caching. The
// admin middleware keeps decoded email -> role lookups here so every
// admin-gated request does not hit the Users collection.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// RoleCacheKey is the auth-cache key holding the cached role for an
// email. Writers of the Users collection must delete it when the role
// changes, or the admin middleware keeps serving the stale role until
// the entry expires.
func RoleCacheKey(email string) string {
	return "role:" + email
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}
