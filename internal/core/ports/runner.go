// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/kiln/internal/core/domain"
)

// Runner executes subprocesses.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes cmd with inherited standard streams and waits for it.
	// A non-zero exit is returned as an error that carries the exit code.
	Run(ctx context.Context, cmd domain.Command) error

	// Output executes cmd and returns its combined stdout and stderr. The
	// output is returned even when the command fails.
	Output(ctx context.Context, cmd domain.Command) (string, error)

	// Start launches cmd without waiting for it to exit.
	Start(ctx context.Context, cmd domain.Command) error

	// LookPath resolves name against the PATH of the process environment
	// merged with env.
	LookPath(name string, env domain.Environment) (string, bool)
}
