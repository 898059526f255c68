package storage

import (
	"context"
	"strings"
)

type prefixed struct {
	inner  Store
	prefix string
}

// WithPrefix returns a view of inner where every key is stored as
// prefix+key. List and Clear only see and remove keys under prefix.
func WithPrefix(inner Store, prefix string) Store {
	return &prefixed{inner: inner, prefix: prefix}
}

func (p *prefixed) Get(ctx context.Context, key string) ([]byte, error) {
	return p.inner.Get(ctx, p.prefix+key)
}

func (p *prefixed) Set(ctx context.Context, key string, value []byte) error {
	return p.inner.Set(ctx, p.prefix+key, value)
}

func (p *prefixed) SetMany(ctx context.Context, values map[string][]byte) error {
	full := make(map[string][]byte, len(values))
	for k, v := range values {
		full[p.prefix+k] = v
	}
	return p.inner.SetMany(ctx, full)
}

func (p *prefixed) Delete(ctx context.Context, keys ...string) error {
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = p.prefix + k
	}
	return p.inner.Delete(ctx, full...)
}

func (p *prefixed) List(ctx context.Context) (map[string][]byte, error) {
	all, err := p.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte)
	for k, v := range all {
		if rest, ok := strings.CutPrefix(k, p.prefix); ok {
			out[rest] = v
		}
	}
	return out, nil
}

func (p *prefixed) Clear(ctx context.Context) error {
	all, err := p.List(ctx)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	return p.Delete(ctx, keys...)
}
