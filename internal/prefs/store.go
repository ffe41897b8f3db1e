// Package prefs stores small user preferences, such as the sort order of
// editor tables, outside the league file.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is where preferences live unless configured otherwise.
const DefaultPath = "~/.lset/prefs.toml"

// Store is a string key-value store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Memory is an in-process Store.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory returns an empty in-process store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value for key.
func (m *Memory) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// File is a Store persisted as a flat TOML table. Every Set rewrites the file.
type File struct {
	path string
	mem  *Memory
}

// OpenFile loads preferences from path, expanding a leading ~.
// A missing file yields an empty store.
func OpenFile(path string) (*File, error) {
	if path == "" {
		path = DefaultPath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", path, err)
	}
	store := &File{path: expanded, mem: NewMemory()}
	data, err := os.ReadFile(expanded)
	if errors.Is(err, fs.ErrNotExist) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", expanded, err)
	}
	if err := toml.Unmarshal(data, &store.mem.values); err != nil {
		return nil, fmt.Errorf("decode %s: %w", expanded, err)
	}
	if store.mem.values == nil {
		store.mem.values = make(map[string]string)
	}
	return store, nil
}

// Path returns the resolved file path.
func (f *File) Path() string { return f.path }

// Get returns the value for key.
func (f *File) Get(key string) (string, bool) { return f.mem.Get(key) }

// Set stores value under key and writes the file.
func (f *File) Set(key, value string) error {
	f.mem.mu.Lock()
	defer f.mem.mu.Unlock()
	f.mem.values[key] = value
	data, err := toml.Marshal(f.mem.values)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(f.path), err)
	}
	return writeAtomic(f.path, data)
}

// writeAtomic replaces path with data via a temp file in the same directory.
func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmp.Name())
		}
	}()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	committed = true
	return nil
}
