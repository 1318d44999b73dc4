// Package redis provides a Redis implementation of the storage.Store interface.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jwulff/diabeyes-go/internal/storage"
)

// DefaultNamespace prefixes every key written by the store.
const DefaultNamespace = "diabeyes"

// Store is a Redis implementation of storage.Store.
type Store struct {
	rdb       *goredis.Client
	namespace string
}

// NewStore connects to addr and verifies the connection with PING.
func NewStore(ctx context.Context, addr, namespace string) (*Store, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing redis address")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewStoreWithClient(rdb, namespace), nil
}

// NewStoreWithClient wraps an existing client.
func NewStoreWithClient(rdb *goredis.Client, namespace string) *Store {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Store{rdb: rdb, namespace: namespace}
}

// Key returns the namespaced Redis key.
func (s *Store) Key(key string) string {
	return s.namespace + ":" + key
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.rdb.Get(ctx, s.Key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, storage.ErrNotFound{Resource: "key", ID: key}
	}
	if err != nil {
		return nil, storage.Wrap("get", key, err)
	}
	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	return storage.Wrap("put", key, s.rdb.Set(ctx, s.Key(key), value, 0).Err())
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return storage.Wrap("delete", key, s.rdb.Del(ctx, s.Key(key)).Err())
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.rdb.Exists(ctx, s.Key(key)).Result()
	if err != nil {
		return false, storage.Wrap("exists", key, err)
	}
	return n > 0, nil
}

// Close closes the Redis client.
func (s *Store) Close() error {
	return s.rdb.Close()
}

// Verify interface compliance
var _ storage.Store = (*Store)(nil)
