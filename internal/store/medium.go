package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Medium is a key-value storage backend holding one serialized value per key.
type Medium interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// FileMedium keeps each key in <dir>/<key>.json.
type FileMedium struct {
	dir string
}

// NewFileMedium returns a medium rooted at dir. The directory is created on first write.
func NewFileMedium(dir string) *FileMedium {
	return &FileMedium{dir: dir}
}

// Dir returns the directory backing the medium.
func (m *FileMedium) Dir() string { return m.dir }

func (m *FileMedium) path(key string) string {
	return filepath.Join(m.dir, key+".json")
}

// Get returns the stored bytes for key, or ok=false when nothing is stored.
func (m *FileMedium) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(m.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store.FileMedium.Get %s: %w", key, err)
	}
	return data, true, nil
}

// Set writes value atomically: a temp file in the same directory is renamed over the target.
func (m *FileMedium) Set(key string, value []byte) error {
	if err := os.MkdirAll(m.dir, 0700); err != nil {
		return fmt.Errorf("store.FileMedium.Set %s: create dir: %w", key, err)
	}
	tmp, err := os.CreateTemp(m.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("store.FileMedium.Set %s: %w", key, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(value); err != nil {
		tmp.Close() //nolint:errcheck
		return fmt.Errorf("store.FileMedium.Set %s: write: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store.FileMedium.Set %s: close: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), m.path(key)); err != nil {
		return fmt.Errorf("store.FileMedium.Set %s: rename: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (m *FileMedium) Delete(key string) error {
	err := os.Remove(m.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("store.FileMedium.Delete %s: %w", key, err)
	}
	return nil
}

// MemMedium is an in-memory Medium.
type MemMedium struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemMedium() *MemMedium {
	return &MemMedium{m: map[string][]byte{}}
}

func (m *MemMedium) Get(key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.m[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemMedium) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.m[key] = v
	return nil
}
