package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
)

// GenerateQueryHash builds a deterministic Redis key for a cached query
// response. Params are sorted so map iteration order never splits the cache.
// Keys are prefixed with the resource type so invalidation can target one
// resource with a single SCAN pattern.
func GenerateQueryHash(resourceType string, params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	query := fmt.Sprintf("resource=%s", resourceType)
	for _, key := range keys {
		query += fmt.Sprintf("&%s=%s", key, params[key])
	}

	hash := sha256.New()
	hash.Write([]byte(query))
	hashStr := hex.EncodeToString(hash.Sum(nil))

	return fmt.Sprintf("%s:%s", resourceType, hashStr)
}

// SearchCacheKey is the cache key for one aggregator call.
func SearchCacheKey(query, locale, scope string, limit int) string {
	return GenerateQueryHash("search", map[string]string{
		"q":      query,
		"locale": locale,
		"type":   scope,
		"limit":  fmt.Sprintf("%d", limit),
	})
}
