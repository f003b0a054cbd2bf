package cache

import (
	"context"
	"time"
)

// NullCache discards everything: every Get misses and every Set is
// dropped. It stands in when caching is disabled (--no-cache) and in
// runs that should render fresh every time.
type NullCache struct{}

// NewNullCache returns the shared do-nothing cache.
func NewNullCache() *NullCache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }

func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (*NullCache) Delete(context.Context, string) error { return nil }

func (*NullCache) Close() error { return nil }

var _ Cache = (*NullCache)(nil)
