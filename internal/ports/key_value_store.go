package ports

import "context"

// KeyValueStore persists small preference blobs. Get returns
// domain.ErrKeyNotFound when the key has never been written.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
