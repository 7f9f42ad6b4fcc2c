package persistence

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryStorage держит значения в памяти процесса, без истечения.
type MemoryStorage struct {
	cache *cache.Cache
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (s *MemoryStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	v, found := s.cache.Get(key)
	if !found {
		return "", false, nil
	}

	str, ok := v.(string)
	if !ok {
		return "", false, nil
	}

	return str, true, nil
}

func (s *MemoryStorage) SetItem(_ context.Context, key, value string) error {
	s.cache.Set(key, value, cache.NoExpiration)
	return nil
}
