package storage

import "context"

// PrefixedKV prepends a namespace to every key of an inner store, so several
// profiles can share one backend without their keys colliding.
type PrefixedKV struct {
	inner  KV
	prefix string
}

// WithPrefix wraps inner with a key prefix. An empty prefix returns inner unchanged.
func WithPrefix(inner KV, prefix string) KV {
	if prefix == "" {
		return inner
	}
	return &PrefixedKV{inner: inner, prefix: prefix}
}

// Get retrieves a prefixed value.
func (p *PrefixedKV) Get(ctx context.Context, key string) (string, bool, error) {
	return p.inner.Get(ctx, p.prefix+key)
}

// Set stores a prefixed value.
func (p *PrefixedKV) Set(ctx context.Context, key, value string) error {
	return p.inner.Set(ctx, p.prefix+key, value)
}

// Delete removes a prefixed value.
func (p *PrefixedKV) Delete(ctx context.Context, key string) error {
	return p.inner.Delete(ctx, p.prefix+key)
}

// Close closes the inner store.
func (p *PrefixedKV) Close() error {
	return p.inner.Close()
}

var _ KV = (*PrefixedKV)(nil)
