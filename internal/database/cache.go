package database

import (
	"context"
	"encoding/json"
	"fmt"
	"server/config"
	"time"

	"github.com/valkey-io/valkey-go"
)

type CacheClient valkey.Client

// Cache holds one client per domain, each pinned to its own logical database
// so keys never collide across record types.
type Cache struct {
	Assessment CacheClient
	Insurance  CacheClient
	Settings   CacheClient
}

// initializeCacheDB connects the per-domain cache clients. An empty cache
// address means the deployment runs without a cache tier; lookups then always
// go to the database.
func (s *DB) initializeCacheDB(config config.Config) error {
	log := s.log.Function("initializeCacheDB")

	if config.DatabaseCacheAddress == "" {
		log.Info("No cache address configured, running without cache")
		return nil
	}

	if config.DatabaseCachePort == 0 {
		return log.ErrMsg("cache address or port is empty")
	}

	address := fmt.Sprintf("%s:%d", config.DatabaseCacheAddress, config.DatabaseCachePort)

	clients := []struct {
		target *CacheClient
		db     int
		name   string
	}{
		{&s.Cache.Assessment, 0, "Assessment"},
		{&s.Cache.Insurance, 1, "Insurance"},
		{&s.Cache.Settings, 2, "Settings"},
	}

	for _, c := range clients {
		client, err := valkey.NewClient(valkey.ClientOption{
			InitAddress: []string{address},
			SelectDB:    c.db,
		})
		if err != nil {
			return log.Err("failed to create cache client", err, "cache", c.name)
		}
		*c.target = client
	}

	log.Info("Connected cache clients", "address", address)
	return nil
}

func (s *DB) closeCaches() {
	for _, client := range []CacheClient{
		s.Cache.Assessment,
		s.Cache.Insurance,
		s.Cache.Settings,
	} {
		if client != nil {
			client.Close()
		}
	}
}

// CacheBuilder is a small fluent wrapper over a valkey client for the
// get/set/delete of one JSON-encoded entry.
type CacheBuilder struct {
	cache CacheClient
	key   string
	value any
	ttl   time.Duration
	ctx   context.Context
}

func NewCacheBuilder(cache CacheClient, key string) *CacheBuilder {
	return &CacheBuilder{
		cache: cache,
		key:   key,
		ctx:   context.Background(),
	}
}

func (b *CacheBuilder) WithStruct(value any) *CacheBuilder {
	b.value = value
	return b
}

func (b *CacheBuilder) WithTTL(ttl time.Duration) *CacheBuilder {
	b.ttl = ttl
	return b
}

func (b *CacheBuilder) WithContext(ctx context.Context) *CacheBuilder {
	b.ctx = ctx
	return b
}

func (b *CacheBuilder) Set() error {
	if b.cache == nil {
		return nil
	}

	payload, err := json.Marshal(b.value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	cmd := b.cache.B().Set().Key(b.key).Value(string(payload))
	if b.ttl > 0 {
		return b.cache.Do(b.ctx, cmd.Ex(b.ttl).Build()).Error()
	}
	return b.cache.Do(b.ctx, cmd.Build()).Error()
}

// Get unmarshals the cached entry into dest. The bool reports whether the key
// was present; a nil cache client reads as a miss.
func (b *CacheBuilder) Get(dest any) (bool, error) {
	if b.cache == nil {
		return false, nil
	}

	resp := b.cache.Do(b.ctx, b.cache.B().Get().Key(b.key).Build())
	if err := resp.Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			return false, nil
		}
		return false, err
	}

	payload, err := resp.AsBytes()
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return true, nil
}

func (b *CacheBuilder) Delete() error {
	if b.cache == nil {
		return nil
	}

	return b.cache.Do(b.ctx, b.cache.B().Del().Key(b.key).Build()).Error()
}
