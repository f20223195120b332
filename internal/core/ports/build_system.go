package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// BuildSystem drives CMake.
//
//go:generate go run go.uber.org/mock/mockgen -source=build_system.go -destination=mocks/mock_build_system.go -package=mocks
type BuildSystem interface {
	// Generators reports the default and Visual Studio generators known to CMake.
	Generators(ctx context.Context, env domain.Environment) (domain.Generators, error)

	// Fetch builds the external dependency project, configuring it first when
	// the build directory is not usable yet.
	Fetch(ctx context.Context, spec domain.FetchSpec, env domain.Environment) error

	// Configure generates the build script in spec.BuildDir.
	Configure(ctx context.Context, spec domain.ConfigureSpec, env domain.Environment) error

	// Build compiles the configured project.
	Build(ctx context.Context, spec domain.BuildSpec, env domain.Environment) error
}
