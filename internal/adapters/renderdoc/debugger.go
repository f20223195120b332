// Package renderdoc launches the RenderDoc graphics debugger on the game.
package renderdoc

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

const qrenderdoc = "qrenderdoc"

// Debugger implements ports.Debugger.
type Debugger struct {
	runner ports.Runner
	logger ports.Logger
	goos   string
	getenv func(string) string
}

// NewDebugger creates a new Debugger.
func NewDebugger(runner ports.Runner, logger ports.Logger) *Debugger {
	return &Debugger{runner: runner, logger: logger, goos: runtime.GOOS, getenv: os.Getenv}
}

// Launch writes a capture settings file for executable and opens it in
// qrenderdoc without waiting for it.
func (d *Debugger) Launch(ctx context.Context, root, executable string, env domain.Environment) error {
	program, err := d.find(env)
	if err != nil {
		return err
	}

	absExecutable, err := filepath.Abs(executable)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve executable path"), "path", executable)
	}
	settings, err := CaptureSettings(absExecutable, root)
	if err != nil {
		return err
	}

	capture := domain.RenderDocCapturePath(root)
	if err := os.MkdirAll(filepath.Dir(capture), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create cache directory"), "path", capture)
	}
	//nolint:gosec // path is built from the repository root
	if err := os.WriteFile(capture, settings, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write RenderDoc capture settings"), "path", capture)
	}

	cmd := domain.Command{Name: program, Args: []string{capture}, Env: env}
	d.logger.Info("Launching RenderDoc: " + cmd.String())
	return d.runner.Start(ctx, cmd)
}

// find prefers qrenderdoc on PATH and falls back to the default install
// location on Windows.
func (d *Debugger) find(env domain.Environment) (string, error) {
	if _, ok := d.runner.LookPath(qrenderdoc, env); ok {
		return qrenderdoc, nil
	}
	if d.goos == domain.OSWindows {
		candidate := filepath.Join(d.getenv("PROGRAMFILES"), "RenderDoc", qrenderdoc+".exe")
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}
	return "", domain.ErrRenderDocNotFound
}
