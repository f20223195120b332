package renderdoc

import "go.trai.ch/kiln/internal/core/ports"

// NewDebuggerForOS creates a Debugger that behaves as if running on goos
// with the given environment lookup.
func NewDebuggerForOS(runner ports.Runner, logger ports.Logger, goos string, getenv func(string) string) *Debugger {
	return &Debugger{runner: runner, logger: logger, goos: goos, getenv: getenv}
}
