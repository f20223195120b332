// Package shell provides the subprocess runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// interruptGrace is how long a canceled command may take to exit after the
// interrupt before it is killed.
const interruptGrace = 5 * time.Second

// Runner implements ports.Runner using os/exec.
type Runner struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	environ  func() []string
	foldCase bool
}

// NewRunner creates a Runner attached to the process' standard streams.
func NewRunner() *Runner {
	return &Runner{
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		environ:  os.Environ,
		foldCase: runtime.GOOS == domain.OSWindows,
	}
}

// Run executes cmd with the runner's standard streams and waits for it.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) error {
	c := r.command(ctx, cmd)
	c.Stdin = r.stdin
	c.Stdout = r.stdout
	c.Stderr = r.stderr

	if err := c.Run(); err != nil {
		return commandError(err, cmd)
	}
	return nil
}

// Output executes cmd and returns its combined output, also on failure.
func (r *Runner) Output(ctx context.Context, cmd domain.Command) (string, error) {
	var buf bytes.Buffer
	c := r.command(ctx, cmd)
	c.Stdout = &buf
	c.Stderr = &buf

	if err := c.Run(); err != nil {
		return buf.String(), commandError(err, cmd)
	}
	return buf.String(), nil
}

// Start launches cmd detached from the runner. The process outlives ctx.
func (r *Runner) Start(_ context.Context, cmd domain.Command) error {
	env := r.resolveEnvironment(cmd.Env)
	c := exec.Command(r.resolveExecutable(cmd.Name, env), cmd.Args...) //nolint:gosec // commands are built by kiln
	c.Args[0] = cmd.Name
	c.Dir = cmd.Dir
	c.Env = env.Slice()

	if err := c.Start(); err != nil {
		return commandError(err, cmd)
	}
	return c.Process.Release()
}

// LookPath resolves name against the PATH of the process environment merged with env.
func (r *Runner) LookPath(name string, env domain.Environment) (string, bool) {
	path, err := lookPath(name, r.resolveEnvironment(env))
	return path, err == nil
}

func (r *Runner) command(ctx context.Context, cmd domain.Command) *exec.Cmd {
	env := r.resolveEnvironment(cmd.Env)
	c := exec.CommandContext(ctx, r.resolveExecutable(cmd.Name, env), cmd.Args...) //nolint:gosec // commands are built by kiln

	// Keep the name as invoked in Args[0]; CommandContext puts the resolved path there.
	c.Args[0] = cmd.Name
	c.Dir = cmd.Dir
	c.Env = env.Slice()
	c.Cancel = func() error {
		if err := c.Process.Signal(os.Interrupt); err != nil {
			return c.Process.Kill()
		}
		return nil
	}
	c.WaitDelay = interruptGrace
	return c
}

// resolveEnvironment applies overlay on top of the process environment.
func (r *Runner) resolveEnvironment(overlay domain.Environment) domain.Environment {
	return domain.EnvironmentFromSlice(r.environ()).Merge(overlay, r.foldCase)
}

// resolveExecutable looks name up in the PATH of env, which may differ from
// the PATH of the kiln process itself.
func (r *Runner) resolveExecutable(name string, env domain.Environment) string {
	if filepath.IsAbs(name) || filepath.Base(name) != name {
		return name
	}
	if path, err := lookPath(name, env); err == nil {
		return path
	}
	return name
}

func commandError(err error, cmd domain.Command) error {
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	wrapped := zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()), "command", cmd.Name)
	return zerr.With(wrapped, "exit_code", exitCode)
}
