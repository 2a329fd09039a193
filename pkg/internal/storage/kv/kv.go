// Package kv provides the key-value store interface and implementations.
// The KV store backs the public share lookup cache and the HTTP response
// cache.
package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/cotishq/cloudnest/pkg/configs"
)

type Client struct {
	KVStore
}

// KVStore defines the key-value store contract.
type KVStore interface {
	// Get returns the value for key, or an error when absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores the value with an optional TTL; ttl<=0 means no expiry.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
	// Exists reports whether the key is present.
	Exists(ctx context.Context, key string) (bool, error)
	// Keys lists keys matching pattern (debugging aid).
	Keys(ctx context.Context, pattern string) ([]string, error)
	// Close releases the backing connection.
	Close() error
}

// KVType identifies a KV backend.
type KVType string

const (
	KVTypeMemory KVType = "memory"
	KVTypeRedis  KVType = "redis"
)

// KVFactory builds a KVStore from backend-specific configuration.
type KVFactory func(ctx context.Context, config any) (KVStore, error)

var kvFactories = make(map[KVType]KVFactory)

// RegisterKVFactory registers a KV backend. Backends register themselves
// from init.
func RegisterKVFactory(kvType KVType, factory KVFactory) {
	kvFactories[kvType] = factory
}

// GetRegisteredKVTypes returns the backends compiled into this binary.
func GetRegisteredKVTypes() []KVType {
	types := make([]KVType, 0, len(kvFactories))
	for kvType := range kvFactories {
		types = append(types, kvType)
	}

	return types
}

// NewKVStore builds a KVStore of the given type.
func NewKVStore(ctx context.Context, kvType KVType, config any) (KVStore, error) {
	factory, exists := kvFactories[kvType]
	if !exists {
		return nil, fmt.Errorf("unsupported KV type: %s", kvType)
	}

	return factory(ctx, config)
}

// NewKVClient builds the client selected by the KV configuration.
func NewKVClient(ctx context.Context, cfg *configs.KVConfig) (*Client, error) {
	kvType := KVType(cfg.Type)

	var backendCfg any

	switch kvType {
	case KVTypeRedis:
		backendCfg = &cfg.Redis
	case KVTypeMemory:
		backendCfg = nil
	}

	store, err := NewKVStore(ctx, kvType, backendCfg)
	if err != nil {
		return nil, err
	}

	return &Client{KVStore: store}, nil
}
