// Package storage provides the key-value backends the session manager
// persists into.
//
// A Store is deliberately small: opaque byte values under string keys, with
// a batch write for records that must land together. Implementations:
//
//   - MemoryStore: process-local map, used in tests and as a fallback.
//   - SQLiteStore: a local file database, migrated with goose.
//   - RedisStore: a shared Redis instance.
//
// WithPrefix namespaces keys and WithFallback switches to memory after the
// first backend failure.
package storage

import (
	"context"
	"errors"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is a keyed byte store.
//
// Get returns (nil, nil) when the key is absent. Delete of a missing key is
// not an error. SetMany writes all pairs or none.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
