// Package store is the durable on-device key-value store the client keeps
// its session and related records in.
package store

import "context"

// Store is a string-keyed blob store. Get returns (nil, nil) when the key is
// absent; callers treat a nil value as "not set".
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetAll writes every pair atomically: either all land or none do.
	SetAll(ctx context.Context, pairs map[string][]byte) error
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context) error
}
