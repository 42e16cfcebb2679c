package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// GridKey returns the cache key for a rendered grid, keyed by the
// normalized filter fingerprint ("full" for the unfiltered grid).
func (r *CacheKeyStruct) GridKey(filterFingerprint string) string {
	return fmt.Sprintf("grid:%s", filterFingerprint)
}

// GridVersionKey returns the key holding the monotonically increasing
// schedule version. Bumped on every ingest or clear.
func (r *CacheKeyStruct) GridVersionKey() string {
	return "grid:version"
}

// BoardChannel returns the Redis Pub/Sub channel for live board refreshes.
func (r *CacheKeyStruct) BoardChannel() string {
	return "board:refresh"
}

var CacheKey = NewCacheKeyStruct()
