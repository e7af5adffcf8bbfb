// Package caching provides an in-memory TTL cache for provider results.
package caching

import (
	"time"

	"github.com/patrickmn/go-cache"
)

type Cache struct {
	memoryCache *cache.Cache
}

// NewCache creates a cache whose entries expire after ttl.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{memoryCache: cache.New(ttl, 2*ttl)}
}

func (s *Cache) Get(key string) (string, bool) {
	v, ok := s.memoryCache.Get(key)
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

func (s *Cache) Set(key, value string) {
	s.memoryCache.SetDefault(key, value)
}
