// Package emsdk installs and activates the Emscripten SDK.
package emsdk

import (
	"context"
	"path/filepath"
	"runtime"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// Manager implements ports.SDKManager for the emsdk checkout under external/.
type Manager struct {
	runner ports.Runner
	goos   string
}

// NewManager creates a new Manager for the current host.
func NewManager(runner ports.Runner) *Manager {
	return &Manager{runner: runner, goos: runtime.GOOS}
}

// NewManagerForOS creates a Manager that behaves as if running on goos.
func NewManagerForOS(runner ports.Runner, goos string) *Manager {
	return &Manager{runner: runner, goos: goos}
}

// Activate runs `emsdk install` and `emsdk activate` for version in dir and
// returns the Emscripten CMake toolchain file.
func (m *Manager) Activate(ctx context.Context, dir, version string, env domain.Environment) (string, error) {
	emsdk := filepath.Join(dir, "emsdk")
	if m.goos == domain.OSWindows {
		emsdk += ".bat"
	}

	for _, step := range []string{"install", "activate"} {
		cmd := domain.Command{Name: emsdk, Args: []string{step, version}, Dir: dir, Env: env}
		if err := m.runner.Run(ctx, cmd); err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrSDKSetupFailed.Error()), "step", step)
			return "", zerr.With(err, "version", version)
		}
	}

	return ToolchainFile(dir), nil
}

// ToolchainFile returns the CMake toolchain file shipped with the SDK in dir.
func ToolchainFile(dir string) string {
	return filepath.Join(dir, "upstream", "emscripten", "cmake", "Modules", "Platform", "Emscripten.cmake")
}
