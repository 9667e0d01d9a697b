package repository

import "context"

// DocumentStore is a key-value store for serialized documents. It is the
// durable backing for the current project: one fixed key holding the whole
// serialized tree. Get reports presence explicitly so a missing key is a
// normal outcome, not an error.
type DocumentStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
