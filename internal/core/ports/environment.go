package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// EnvironmentFactory prepares the native toolchain environment.
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentFactory interface {
	// Import returns the variables the toolchain adds to or changes in base
	// when targeting target from host. The result is an overlay, not a full
	// environment. A toolchain that cannot be found or loaded is reported to
	// the user and yields an empty overlay; the returned error is reserved for
	// cancellation.
	Import(ctx context.Context, root string, host domain.Host, target domain.Arch, base domain.Environment) (domain.Environment, error)
}
