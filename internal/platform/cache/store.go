package cache

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"
)

// Backend stores raw payloads keyed by string.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Store loads payloads through a Backend, collapsing concurrent misses for
// the same key into a single loader call.
type Store struct {
	backend Backend
	ttl     time.Duration
	prefix  string
	flight  singleflight.Group
}

func NewStore(backend Backend, ttl time.Duration, prefix string) *Store {
	if backend == nil {
		backend = NewMemory()
	}
	return &Store{
		backend: backend,
		ttl:     ttl,
		prefix:  prefix,
	}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	if key == "" {
		return nil, false
	}
	value, ok, err := s.backend.Get(ctx, s.prefix+key)
	if err != nil || !ok {
		return nil, false
	}
	return value, true
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return nil
	}
	return s.backend.Set(ctx, s.prefix+key, value, s.ttl)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return s.backend.Delete(ctx, s.prefix+key)
}

// GetOrLoad returns the cached payload for key or runs loader and stores its
// result. Loader errors are never cached. A failing backend write is ignored;
// the loaded value is still returned.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) ([]byte, error)) ([]byte, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	v, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		_ = s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	value, _ := v.([]byte)
	return value, nil
}
