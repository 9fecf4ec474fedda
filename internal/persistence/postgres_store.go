package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq" // драйвер PostgreSQL
	log "github.com/sirupsen/logrus"
)

const savesSchema = `
CREATE TABLE IF NOT EXISTS saves (
	key TEXT PRIMARY KEY,
	data JSONB NOT NULL,
	updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);`

// PostgresStore хранит сохранения в таблице saves.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore подключается к базе и создаёт таблицу, если её нет.
func NewPostgresStore(ctx context.Context, connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	log.Info("postgres store connected")
	return store, nil
}

func (ps *PostgresStore) initSchema(ctx context.Context) error {
	_, err := ps.db.ExecContext(ctx, savesSchema)
	return err
}

// Put вставляет или перезаписывает сохранение.
func (ps *PostgresStore) Put(ctx context.Context, key string, data []byte) error {
	query := `
	INSERT INTO saves (key, data) VALUES ($1, $2)
	ON CONFLICT (key)
	DO UPDATE SET data = $2, updated_at = NOW()`

	if _, err := ps.db.ExecContext(ctx, query, key, string(data)); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

// Get читает сохранение по ключу.
func (ps *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var data string
	err := ps.db.QueryRowContext(ctx, `SELECT data FROM saves WHERE key = $1`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get %q: %w", key, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return []byte(data), nil
}

func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
