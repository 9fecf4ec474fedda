// Package persistence сохраняет снимки партии в хранилище ключ-значение.
package persistence

import (
	"context"
	"errors"
)

// ErrNotFound — по ключу ничего не сохранено.
var ErrNotFound = errors.New("persistence: key not found")

// Storage — хранилище ключ-значение для сохранений.
type Storage interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Close() error
}
