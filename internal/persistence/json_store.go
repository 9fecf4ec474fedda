package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"
)

// JSONStore хранит сохранения в одном JSON-файле.
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	data     map[string]json.RawMessage
}

// NewJSONStore открывает файл хранилища, создавая его при необходимости.
func NewJSONStore(filePath string) (*JSONStore, error) {
	store := &JSONStore{
		filePath: filePath,
		data:     make(map[string]json.RawMessage),
	}

	if _, err := os.Stat(filePath); err == nil {
		if err := store.loadFromFile(); err != nil {
			return nil, fmt.Errorf("load json store %s: %w", filePath, err)
		}
	} else if err := store.saveToFile(); err != nil {
		return nil, fmt.Errorf("create json store %s: %w", filePath, err)
	}

	log.WithField("path", filePath).Debug("json store opened")
	return store, nil
}

func (js *JSONStore) loadFromFile() error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	file, err := os.ReadFile(js.filePath)
	if err != nil {
		return err
	}
	if len(file) == 0 {
		return nil
	}
	return json.Unmarshal(file, &js.data)
}

// saveToFile вызывается под блокировкой.
func (js *JSONStore) saveToFile() error {
	data, err := json.MarshalIndent(js.data, "", "  ")
	if err != nil {
		return err
	}

	tmp := js.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, js.filePath)
}

// Put записывает значение и сбрасывает файл на диск.
func (js *JSONStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !json.Valid(data) {
		return fmt.Errorf("put %q: value is not valid JSON", key)
	}

	js.mutex.Lock()
	defer js.mutex.Unlock()

	js.data[key] = json.RawMessage(append([]byte(nil), data...))
	if err := js.saveToFile(); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

// Get возвращает значение или ErrNotFound.
func (js *JSONStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	js.mutex.RLock()
	defer js.mutex.RUnlock()

	raw, ok := js.data[key]
	if !ok {
		return nil, fmt.Errorf("get %q: %w", key, ErrNotFound)
	}
	return append([]byte(nil), raw...), nil
}

func (js *JSONStore) Close() error {
	return nil
}
