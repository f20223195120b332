package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// WebServer serves a web build for local play.
//
//go:generate go run go.uber.org/mock/mockgen -source=actions.go -destination=mocks/mock_actions.go -package=mocks
type WebServer interface {
	// Serve serves dir on addr until ctx is cancelled. page is the entry
	// point announced to the user. Cancellation is not an error.
	Serve(ctx context.Context, dir, addr, page string) error
}

// IDELauncher opens the generated project in the platform IDE.
type IDELauncher interface {
	Open(ctx context.Context, req domain.IDERequest) error
}

// Debugger launches a GPU debugger on the built game.
type Debugger interface {
	Launch(ctx context.Context, root, executable string, env domain.Environment) error
}

// Packager assembles a web build for distribution.
type Packager interface {
	// Package copies the web artifacts of project from buildDir into outDir.
	Package(buildDir, outDir string, project domain.Project) error
}
