package storage

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophsocial/internal/logging"
)

// FallbackStore forwards to a primary store until the first error, then
// serves every later call from a process-local MemoryStore. The switch is
// one-way: the primary is not retried, and values written to it before the
// failure are not carried over.
type FallbackStore struct {
	log logging.Logger

	mu       sync.RWMutex
	primary  Store
	memory   *MemoryStore
	degraded bool
}

// WithFallback wraps primary. Operations on the result never return errors.
func WithFallback(primary Store, log logging.Logger) *FallbackStore {
	if log == nil {
		log = logging.Discard()
	}
	return &FallbackStore{primary: primary, memory: NewMemoryStore(), log: log}
}

// Degraded reports whether the store has switched to memory.
func (f *FallbackStore) Degraded() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.degraded
}

func (f *FallbackStore) current() Store {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.degraded {
		return f.memory
	}
	return f.primary
}

func (f *FallbackStore) fail(ctx context.Context, op string, err error) {
	f.mu.Lock()
	already := f.degraded
	f.degraded = true
	f.mu.Unlock()

	if !already {
		f.log.Warn(ctx, "storage unavailable, falling back to memory", "op", op, "error", err)
	}
}

func (f *FallbackStore) Get(ctx context.Context, key string) ([]byte, error) {
	s := f.current()
	v, err := s.Get(ctx, key)
	if err == nil || s == Store(f.memory) {
		return v, nil
	}
	f.fail(ctx, "get", err)
	return f.memory.Get(ctx, key)
}

func (f *FallbackStore) Set(ctx context.Context, key string, value []byte) error {
	s := f.current()
	if err := s.Set(ctx, key, value); err != nil && s != Store(f.memory) {
		f.fail(ctx, "set", err)
		return f.memory.Set(ctx, key, value)
	}
	return nil
}

func (f *FallbackStore) SetMany(ctx context.Context, values map[string][]byte) error {
	s := f.current()
	if err := s.SetMany(ctx, values); err != nil && s != Store(f.memory) {
		f.fail(ctx, "set_many", err)
		return f.memory.SetMany(ctx, values)
	}
	return nil
}

func (f *FallbackStore) Delete(ctx context.Context, keys ...string) error {
	s := f.current()
	if err := s.Delete(ctx, keys...); err != nil && s != Store(f.memory) {
		f.fail(ctx, "delete", err)
		return f.memory.Delete(ctx, keys...)
	}
	return nil
}

func (f *FallbackStore) List(ctx context.Context) (map[string][]byte, error) {
	s := f.current()
	v, err := s.List(ctx)
	if err == nil || s == Store(f.memory) {
		return v, nil
	}
	f.fail(ctx, "list", err)
	return f.memory.List(ctx)
}

func (f *FallbackStore) Clear(ctx context.Context) error {
	s := f.current()
	if err := s.Clear(ctx); err != nil && s != Store(f.memory) {
		f.fail(ctx, "clear", err)
		return f.memory.Clear(ctx)
	}
	return nil
}
