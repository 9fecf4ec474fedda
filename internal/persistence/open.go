package persistence

import (
	"context"
	"strings"
)

// Open выбирает хранилище по строке: пусто — память, postgres:// или
// postgresql:// — PostgresStore, иначе путь к JSON-файлу.
func Open(ctx context.Context, target string) (Storage, error) {
	switch {
	case target == "":
		return NewMemoryStore(), nil
	case strings.HasPrefix(target, "postgres://"), strings.HasPrefix(target, "postgresql://"):
		return NewPostgresStore(ctx, target)
	default:
		return NewJSONStore(target)
	}
}
