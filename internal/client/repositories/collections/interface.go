// Package collections persists each named collection as a single opaque
// document in the local database. The store layer above it handles
// enveloping, seeding and typed access.
package collections

import "context"

type Repository interface {
	// Get returns the stored document for key, or (nil, nil) when absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
}
