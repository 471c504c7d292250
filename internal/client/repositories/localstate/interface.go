// Package localstate is the client's durable key-value storage, the
// moral equivalent of a browser's localStorage. It backs the persisted
// auth envelope that survives restarts.
package localstate

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
