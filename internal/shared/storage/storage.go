// Package storage provides the local key-value persistence layer behind
// the booking, ticket and profile records: string keys, string values,
// surviving process restarts when backed by Redis.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// KV is the synchronous key-value store the record repositories are
// built on.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
}

// Error wraps a storage failure (serialization, quota, connectivity)
// with the operation and key it occurred on.
type Error struct {
	Op  string
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
