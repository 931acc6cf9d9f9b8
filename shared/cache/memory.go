package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"hotie/config"
	"hotie/infras/otel"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/viccon/sturdyc"
)

const memoryEvictionPercentage = 10

// memoryCache keeps JSON payloads in sharded in-process stores, one per TTL
// in use, so every entry expires after the duration it was saved with. A key
// lives in at most one store.
type memoryCache struct {
	mu         sync.RWMutex
	clients    map[int]*sturdyc.Client[[]byte]
	capacity   int
	numShards  int
	defaultTTL int
	otel       otel.Otel
}

// NewMemoryCache builds a process-local Cache for single instance deployments
// and tests.
func NewMemoryCache(cfg *config.Config, ot otel.Otel) Cache {
	return &memoryCache{
		clients:    make(map[int]*sturdyc.Client[[]byte]),
		capacity:   cfg.Cache.Memory.Capacity,
		numShards:  cfg.Cache.Memory.NumShards,
		defaultTTL: cfg.Cache.TTL,
		otel:       ot,
	}
}

// store returns the client for ttl seconds, creating it on first use. A
// non-positive ttl falls back to CACHE_TTL.
func (cache *memoryCache) store(ttl int) *sturdyc.Client[[]byte] {
	if ttl <= 0 {
		ttl = cache.defaultTTL
	}

	cache.mu.RLock()
	client, ok := cache.clients[ttl]
	cache.mu.RUnlock()

	if ok {
		return client
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()

	if client, ok = cache.clients[ttl]; !ok {
		client = sturdyc.New[[]byte](cache.capacity, cache.numShards, time.Duration(ttl)*time.Second, memoryEvictionPercentage)
		cache.clients[ttl] = client
	}

	return client
}

func (cache *memoryCache) stores() []*sturdyc.Client[[]byte] {
	cache.mu.RLock()
	defer cache.mu.RUnlock()

	clients := make([]*sturdyc.Client[[]byte], 0, len(cache.clients))
	for _, client := range cache.clients {
		clients = append(clients, client)
	}

	return clients
}

func (cache *memoryCache) lookup(key string) ([]byte, bool) {
	for _, client := range cache.stores() {
		if raw, ok := client.Get(key); ok {
			return raw, true
		}
	}

	return nil, false
}

func (cache *memoryCache) Get(ctx context.Context, key string, value any) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".memory.Get")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, ok := cache.lookup(key)
	if !ok {
		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	if err := json.Unmarshal(raw, value); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Str("MemoryCache", "Get").Msg("failed to unmarshal cache")

		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

func (cache *memoryCache) Save(ctx context.Context, key string, value any, duration int) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".memory.Save")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	raw, err := json.Marshal(value)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	target := cache.store(duration)
	for _, client := range cache.stores() {
		if client != target {
			client.Delete(key)
		}
	}

	target.Set(key, raw)

	return nil
}

func (cache *memoryCache) Delete(ctx context.Context, keys ...string) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".memory.Delete")
	defer scope.End()

	scope.SetAttribute(otelCacheKeyAttribute, keys)

	for _, client := range cache.stores() {
		for _, key := range keys {
			client.Delete(key)
		}
	}

	return nil
}
