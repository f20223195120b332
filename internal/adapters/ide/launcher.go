// Package ide opens generated projects in Visual Studio or Xcode.
package ide

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// Launcher implements ports.IDELauncher.
type Launcher struct {
	runner ports.Runner
	logger ports.Logger
}

// NewLauncher creates a new Launcher.
func NewLauncher(runner ports.Runner, logger ports.Logger) *Launcher {
	return &Launcher{runner: runner, logger: logger}
}

// Open starts the IDE for the host in req without waiting for it.
func (l *Launcher) Open(ctx context.Context, req domain.IDERequest) error {
	switch req.HostOS {
	case domain.OSWindows:
		return l.openVisualStudio(ctx, req)
	case domain.OSDarwin:
		return l.openXcode(ctx, req)
	default:
		l.logger.Warn("Launching an IDE is not supported on " + req.HostOS)
		return nil
	}
}

func (l *Launcher) openVisualStudio(ctx context.Context, req domain.IDERequest) error {
	cmd := domain.Command{
		Name: "devenv.exe",
		Args: []string{filepath.Join(req.BuildDir, req.Project.Name+".sln")},
	}
	l.logger.Info("Launching Visual Studio: " + cmd.String())
	return l.runner.Start(ctx, cmd)
}

func (l *Launcher) openXcode(ctx context.Context, req domain.IDERequest) error {
	project := filepath.Join(req.BuildDir, req.Project.Name+".xcodeproj")
	// Schemes are named after the target, not the project.
	scheme := filepath.Join(project, "xcshareddata", "xcschemes", req.Project.Target+".xcscheme")

	if err := l.setWorkingDirectory(scheme, req.Root); err != nil {
		return err
	}

	cmd := domain.Command{Name: "open", Args: []string{project}}
	l.logger.Info("Launching Xcode: " + cmd.String())
	return l.runner.Start(ctx, cmd)
}

// setWorkingDirectory makes Xcode run the game from the repository root.
func (l *Launcher) setWorkingDirectory(scheme, root string) error {
	data, err := os.ReadFile(scheme) //nolint:gosec // path is built from the build directory
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSchemeNotFound.Error()), "path", scheme)
	}

	patched, edited, err := PatchScheme(data, root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSchemeWriteFailed.Error()), "path", scheme)
	}
	if !edited {
		l.logger.Warn("Didn't find useCustomWorkingDirectory in " + scheme)
		return nil
	}

	//nolint:gosec // path is built from the build directory
	if err := os.WriteFile(scheme, patched, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSchemeWriteFailed.Error()), "path", scheme)
	}
	l.logger.Info("Edited " + scheme + " to set working directory")
	return nil
}
