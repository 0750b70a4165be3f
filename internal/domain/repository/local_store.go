package repository

import (
	"context"
	"errors"
)

// ErrLocalKeyNotFound is returned when a local store key is absent.
var ErrLocalKeyNotFound = errors.New("local key not found")

// LocalStore is a small node-local key-value store for pending registration
// data and remembered sign-in identifiers.
type LocalStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
