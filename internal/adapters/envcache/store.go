// Package envcache persists captured toolchain environments between runs.
package envcache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// entries is the on-disk layout: one entry per host/target key.
type entries map[string]domain.CachedEnvironment

// Store implements ports.EnvironmentStore using a flat JSON file under the
// repository's cache directory.
type Store struct {
	mu sync.RWMutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the entry stored under key. A missing or unreadable cache file
// yields no entry; the environment is simply captured again.
func (s *Store) Get(root, key string) (*domain.CachedEnvironment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cache, err := load(domain.EnvCachePath(root))
	if err != nil {
		return nil, nil //nolint:nilerr // a corrupt cache is treated as empty
	}

	entry, ok := cache[key]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

// Put stores entry under key and keeps the entries for other keys.
func (s *Store) Put(root, key string, entry domain.CachedEnvironment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := domain.EnvCachePath(root)
	cache, err := load(path)
	if err != nil {
		cache = entries{}
	}
	cache[key] = entry

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrEnvCacheWriteFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEnvCacheWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // path is built from the repository root
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEnvCacheWriteFailed.Error()), "path", path)
	}
	return nil
}

func load(path string) (entries, error) {
	//nolint:gosec // path is built from the repository root
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries{}, nil
		}
		return nil, zerr.Wrap(err, domain.ErrEnvCacheReadFailed.Error())
	}

	if len(data) == 0 {
		return entries{}, nil
	}

	cache := entries{}
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, zerr.Wrap(err, domain.ErrEnvCacheReadFailed.Error())
	}
	return cache, nil
}
