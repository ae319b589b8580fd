// Package storage provides durable key-value storage for resume session state.
//
// Values are strings (JSON documents or plain ids) keyed by fixed names.
// Every backend implements KV; the document store and the template registry
// write to it independently under different keys.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// KV is a string key-value store.
type KV interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// ErrClosed is returned by operations on a closed backend.
var ErrClosed = errors.New("storage closed")

// BackendError wraps a failure reported by a storage backend
type BackendError struct {
	Backend string
	Op      string
	Key     string
	Cause   error
}

func (e *BackendError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s storage: %s %q: %v", e.Backend, e.Op, e.Key, e.Cause)
	}
	return fmt.Sprintf("%s storage: %s: %v", e.Backend, e.Op, e.Cause)
}

func (e *BackendError) Unwrap() error {
	return e.Cause
}

func backendErr(backend, op, key string, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Backend: backend, Op: op, Key: key, Cause: err}
}
