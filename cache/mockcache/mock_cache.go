package mockcache

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type Cache struct {
	mock.Mock
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	args := c.Called(ctx, key)

	var res []byte
	if args.Get(0) != nil {
		res = args.Get(0).([]byte)
	}

	return res, args.Error(1)
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := c.Called(ctx, key, value, ttl)
	return args.Error(0)
}
