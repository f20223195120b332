package ports

import "go.trai.ch/kiln/internal/core/domain"

// EnvironmentStore persists captured toolchain environments.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type EnvironmentStore interface {
	// Get returns the entry stored under key in root's cache.
	// Returns nil, nil if there is no usable entry.
	Get(root, key string) (*domain.CachedEnvironment, error)

	// Put stores entry under key, keeping other keys intact.
	Put(root, key string, entry domain.CachedEnvironment) error
}
