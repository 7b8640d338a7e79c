// Package cache stores rendered artifacts keyed by the options that
// produced them.
//
// The preview server consults a [Cache] before running the pipeline, so
// repeated requests for the same sample, format and layout settings skip
// measure, layout and render. [FileCache] persists entries under the user
// cache directory, [RedisCache] shares them between servers and
// [NullCache] disables caching.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Cache is a byte store with optional expiry.
type Cache interface {
	// Get returns the entry for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKey derives a stable key from everything that affects an
// artifact's bytes. parts must be JSON-encodable.
func ArtifactKey(sample, format string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return "artifact:" + sample + "." + format + ":" + Hash(data)
}

// Hash computes a SHA-256 hash of the input data as 64 hex characters.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
