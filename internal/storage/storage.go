package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound   = errors.New("storage key not found")
	ErrInvalidKey = errors.New("invalid storage key")
)

// Storage persists opaque blobs under string keys.
// Writes replace the previous value; the last writer wins.
type Storage interface {
	// Read returns the blob stored under key or ErrNotFound
	Read(ctx context.Context, key string) ([]byte, error)

	// Write stores data under key
	Write(ctx context.Context, key string, data []byte) error
}

func validateKey(key string) error {
	if key == "" || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
