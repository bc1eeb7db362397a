package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// InitRedis connects the listing cache. The cache is optional: without
// REDIS_ADDR every lookup is a miss and writes are no-ops.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, listing cache disabled")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// CacheGet loads a cached JSON value into dest, reporting a hit.
func CacheGet(key string, dest interface{}) bool {
	if Client == nil {
		return false
	}
	raw, err := Client.Get(Ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// CacheSet stores a JSON value under key with the given TTL.
func CacheSet(key string, value interface{}, ttl time.Duration) {
	if Client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := Client.Set(Ctx, key, raw, ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

// CacheInvalidate drops cached listings so they are recomputed on the
// next view.
func CacheInvalidate(keys ...string) {
	if Client == nil || len(keys) == 0 {
		return
	}
	if err := Client.Del(Ctx, keys...).Err(); err != nil {
		log.Printf("cache invalidate: %v", err)
	}
}
