// Package db is the postgres backed response cache, for deployments where
// several processes should share cached Cartola responses.
package db

import (
	"context"

	"github.com/mww/cartolafc/cache"
)

type DB interface {
	cache.Cache

	// Deletes every expired response and returns how many were removed.
	Purge(ctx context.Context) (int64, error)
	Close()
}
