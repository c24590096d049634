package utils

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// InvalidateCache removes every cached key for the given resource type.
// Content mutations call this with "search" so stale result sets never
// outlive an edit by more than one request.
func InvalidateCache(rdb *redis.Client, resourceType string) error {
	// SCAN instead of KEYS so production Redis is never blocked
	pattern := fmt.Sprintf("%s:*", resourceType)
	iter := rdb.Scan(context.Background(), 0, pattern, 0).Iterator()

	for iter.Next(context.Background()) {
		key := iter.Val()
		err := rdb.Del(context.Background(), key).Err()
		if err != nil {
			return fmt.Errorf("failed to delete key %s: %v", key, err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("error during SCAN iteration: %v", err)
	}

	return nil
}

// InvalidateCacheAsync invalidates off the request path; a failed
// invalidation only means a slightly staler cache, never a failed write.
func InvalidateCacheAsync(rdb *redis.Client, resourceType string) {
	go func() {
		err := InvalidateCache(rdb, resourceType)
		if err != nil {
			log.Printf("Cache invalidation failed for resource type '%s': %v", resourceType, err)
		}
	}()
}
