// Package metadata is a small key/value store for wallet settings and device
// secrets, kept in the local SQLite database.
package metadata

import "context"

// Repository stores opaque values by key. Get returns (nil, nil) for a key
// that was never set.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
