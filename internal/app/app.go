// Package app implements the application layer for kiln.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/engine/orchestrator"
	"go.trai.ch/zerr"
)

// Pipeline runs one build request.
type Pipeline interface {
	Run(ctx context.Context, req orchestrator.Request) error
}

// App represents the main application logic.
type App struct {
	pipeline Pipeline
	logger   ports.Logger
	getwd    func() (string, error)
}

// New creates a new App instance.
func New(pipeline Pipeline, log ports.Logger) *App {
	return &App{
		pipeline: pipeline,
		logger:   log,
		getwd:    os.Getwd,
	}
}

// WithRoot pins the repository root instead of using the working directory.
// This is primarily used for testing.
func (a *App) WithRoot(root string) *App {
	a.getwd = func() (string, error) { return root, nil }
	return a
}

// BuildOptions holds the build flags as given on the command line.
type BuildOptions struct {
	Platform    domain.Platform
	Arch        string
	Release     bool
	Clean       bool
	Reconfigure bool
	Generator   string
	// Variables are VAR=VALUE entries from -D.
	Variables []string
	Action    domain.Action
	GameArgs  []string
}

// Build validates opts and runs the build pipeline in the repository root.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	var arch domain.Arch
	if opts.Arch != "" {
		parsed, err := domain.ParseArch(opts.Arch)
		if err != nil {
			return err
		}
		arch = parsed
	}

	vars, err := domain.ParseVariables(opts.Variables)
	if err != nil {
		return err
	}

	root, err := a.root()
	if err != nil {
		return err
	}

	return a.pipeline.Run(ctx, orchestrator.Request{
		Root:        root,
		Platform:    opts.Platform,
		Arch:        arch,
		Release:     opts.Release,
		Clean:       opts.Clean,
		Reconfigure: opts.Reconfigure,
		Generator:   opts.Generator,
		Variables:   vars,
		Action:      opts.Action,
		GameArgs:    opts.GameArgs,
	})
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Env removes the toolchain environment cache only.
	Env bool
	// All removes the whole cache directory.
	All bool
}

// Clean removes build directories and caches based on the provided options.
// By default every build directory is removed while the dependency build and
// the shared caches are kept.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	root, err := a.root()
	if err != nil {
		return err
	}

	var errs error
	remove := func(path, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)), "path", path))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	switch {
	case options.All:
		remove(domain.CachePath(root), domain.CacheDirName)
	case options.Env:
		remove(domain.EnvCachePath(root), "environment cache")
	default:
		entries, err := os.ReadDir(domain.CachePath(root))
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to read cache directory"), "path", domain.CachePath(root))
		}
		for _, entry := range entries {
			if !entry.IsDir() || entry.Name() == domain.ExternalFetchDirName {
				continue
			}
			remove(domain.BuildDirPath(root, entry.Name()), filepath.Join(domain.CacheDirName, entry.Name()))
		}
	}

	return errs
}

func (a *App) root() (string, error) {
	wd, err := a.getwd()
	if err != nil {
		return "", zerr.Wrap(err, "failed to determine working directory")
	}
	return filepath.Abs(wd)
}
