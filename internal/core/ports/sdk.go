package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// SDKManager installs and activates a cross-compilation SDK.
//
//go:generate go run go.uber.org/mock/mockgen -source=sdk.go -destination=mocks/mock_sdk.go -package=mocks
type SDKManager interface {
	// Activate makes version available under dir and returns the CMake
	// toolchain file to configure with.
	Activate(ctx context.Context, dir, version string, env domain.Environment) (string, error)
}
