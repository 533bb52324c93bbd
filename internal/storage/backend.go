package storage

import "context"

// Backend is the persistence primitive: a named-collection byte store.
// Each collection is read and written whole; Get returns (nil, nil) for a
// collection that was never written. Implementations must tolerate any
// payload shape — serialization is the caller's concern.
type Backend interface {
	Get(ctx context.Context, name string) ([]byte, error)
	Set(ctx context.Context, name string, data []byte) error
	Delete(ctx context.Context, name string) error
}
