// Package cache holds the response cache stores used by the cartola client.
// Keys are full request URLs and values are raw JSON payloads.
package cache

import (
	"context"
	"time"
)

const DefaultTTL = 10 * time.Second

// Cache stores serialized responses with a time to live.
type Cache interface {
	// Get returns the value stored for key. A miss, including an expired
	// entry, returns a nil slice and a nil error.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// NormalizeTTL returns DefaultTTL for non-positive values.
func NormalizeTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultTTL
	}
	return ttl
}
