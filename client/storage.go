package client

import (
	"os"
	"path/filepath"
)

// Storage is the local persistence behind the cart and the menu cache, the
// counterpart of the browser's localStorage: a flat key-value store that
// survives restarts, with no expiry of its own.
type Storage interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// FileStorage keeps each key as a JSON file inside a directory.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (fs *FileStorage) Get(key string) ([]byte, bool) {
	data, err := os.ReadFile(filepath.Join(fs.dir, key+".json"))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (fs *FileStorage) Set(key string, value []byte) error {
	if err := os.MkdirAll(fs.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(fs.dir, key+".json"), value, 0o644)
}

// MemoryStorage is an in-process Storage, handy for tests.
type MemoryStorage struct {
	values map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

func (ms *MemoryStorage) Get(key string) ([]byte, bool) {
	value, ok := ms.values[key]
	return value, ok
}

func (ms *MemoryStorage) Set(key string, value []byte) error {
	ms.values[key] = value
	return nil
}
