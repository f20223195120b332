package cmake

import (
	"context"
	"os"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

const executable = "cmake"

// BuildSystem implements ports.BuildSystem on the cmake command line tool.
type BuildSystem struct {
	runner ports.Runner
	logger ports.Logger
}

// NewBuildSystem creates a new BuildSystem.
func NewBuildSystem(runner ports.Runner, logger ports.Logger) *BuildSystem {
	return &BuildSystem{runner: runner, logger: logger}
}

// Generators runs `cmake -G` and parses the generator list from its help
// text. cmake exits non-zero here because no generator argument is given, so
// the exit status only matters when nothing was printed.
func (b *BuildSystem) Generators(ctx context.Context, env domain.Environment) (domain.Generators, error) {
	out, err := b.runner.Output(ctx, domain.Command{Name: executable, Args: []string{"-G"}, Env: env})
	if err != nil && out == "" {
		return domain.Generators{}, zerr.Wrap(err, "failed to list CMake generators")
	}
	return domain.ParseGenerators(out), nil
}

// Fetch builds the external dependency project in spec.Dir. When that fails
// the project is configured from spec.Source and built again.
func (b *BuildSystem) Fetch(ctx context.Context, spec domain.FetchSpec, env domain.Environment) error {
	if err := os.MkdirAll(spec.Dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDependencyFetchFailed.Error()), "path", spec.Dir)
	}

	build := domain.Command{Name: executable, Args: spec.BuildArgs(), Dir: spec.Dir, Env: env}
	if err := b.runner.Run(ctx, build); err == nil {
		return nil
	}

	configure := domain.Command{Name: executable, Args: spec.ConfigureArgs(), Dir: spec.Dir, Env: env}
	if err := b.runner.Run(ctx, configure); err != nil {
		return zerr.Wrap(err, domain.ErrDependencyFetchFailed.Error())
	}
	if err := b.runner.Run(ctx, build); err != nil {
		return zerr.Wrap(err, domain.ErrDependencyFetchFailed.Error())
	}
	return nil
}

// Configure runs cmake in spec.BuildDir.
func (b *BuildSystem) Configure(ctx context.Context, spec domain.ConfigureSpec, env domain.Environment) error {
	cmd := domain.Command{Name: executable, Args: spec.Args(), Dir: spec.BuildDir, Env: env}
	b.logger.Info("Generating build script: " + cmd.String())

	if err := b.runner.Run(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigureFailed.Error()), "build_dir", spec.BuildDir)
	}
	return nil
}

// Build runs `cmake --build` in spec.BuildDir.
func (b *BuildSystem) Build(ctx context.Context, spec domain.BuildSpec, env domain.Environment) error {
	cmd := domain.Command{Name: executable, Args: spec.Args(), Dir: spec.BuildDir, Env: env}
	b.logger.Info("Building: " + cmd.String())

	if err := b.runner.Run(ctx, cmd); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "build_dir", spec.BuildDir)
	}
	return nil
}
