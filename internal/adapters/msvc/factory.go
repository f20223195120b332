// Package msvc imports the Visual Studio developer environment on Windows.
package msvc

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// vswhere ships with the repository's external dependencies.
const vswhere = "vswhere.exe"

// Factory implements ports.EnvironmentFactory with vswhere and VsDevCmd.
// Captured environments are cached per host/target pair because VsDevCmd is slow.
type Factory struct {
	runner ports.Runner
	store  ports.EnvironmentStore
	logger ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(runner ports.Runner, store ports.EnvironmentStore, logger ports.Logger) *Factory {
	return &Factory{runner: runner, store: store, logger: logger}
}

// Import returns the variables VsDevCmd adds to or changes in base.
func (f *Factory) Import(
	ctx context.Context,
	root string,
	host domain.Host,
	target domain.Arch,
	base domain.Environment,
) (domain.Environment, error) {
	key := domain.EnvironmentKey(host.Arch, target)
	originalPath := base.Path()

	if entry, err := f.store.Get(root, key); err == nil && entry.Matches(originalPath) {
		return entry.NewEnvironment.Clone(), nil
	}

	installation, err := f.installationPath(ctx, root)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		f.logger.Warn("Skipping Visual Studio environment setup as no usable version could be found.")
		return domain.Environment{}, nil
	}

	overlay, err := f.capture(ctx, installation, host.Arch, target, base)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		f.logger.Warn("Failed to load Visual Studio environment:")
		f.logger.Error(err)
		return domain.Environment{}, nil
	}

	if len(overlay) > 0 {
		entry := domain.CachedEnvironment{OriginalPath: originalPath, NewEnvironment: overlay}
		if err := f.store.Put(root, key, entry); err != nil {
			f.logger.Warn("Failed to cache Visual Studio environment: " + err.Error())
		}
	}

	if _, ok := f.runner.LookPath("cl", overlay); ok {
		f.logger.Info("Loaded Visual Studio environment from VsDevCmd (will be cached)")
	} else {
		f.logger.Warn("Imported Visual Studio environment but MSVC is not available.")
		f.logger.Warn("Make sure you've installed the appropriate C++ development workloads.")
	}
	return overlay, nil
}

// installationPath asks vswhere for the newest supported Visual Studio, prereleases included.
func (f *Factory) installationPath(ctx context.Context, root string) (string, error) {
	cmd := domain.Command{
		Name: filepath.Join(domain.ExternalPath(root), vswhere),
		Args: []string{
			"-version", "[" + strconv.Itoa(domain.MinVisualStudioVersion) + ",)",
			"-latest", "-prerelease", "-utf8",
			"-property", "installationPath",
		},
	}

	out, err := f.runner.Output(ctx, cmd)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrToolchainUnavailable.Error())
	}
	installation := strings.TrimSpace(out)
	if installation == "" {
		return "", domain.ErrToolchainUnavailable
	}
	return installation, nil
}

// capture runs VsDevCmd followed by `set` and returns the variables that differ from base.
func (f *Factory) capture(
	ctx context.Context,
	installation string,
	host, target domain.Arch,
	base domain.Environment,
) (domain.Environment, error) {
	cmd := domain.Command{
		Name: filepath.Join(installation, "Common7", "Tools", "vsdevcmd.bat"),
		Args: []string{
			"-no_logo",
			"-host_arch=" + host.VSDevCmd(),
			"-arch=" + target.VSDevCmd(),
			"&&", "set",
		},
	}

	out, err := f.runner.Output(ctx, cmd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrToolchainEnvFailed.Error()), "output", strings.TrimSpace(out))
	}

	return ParseSet(out).Diff(base), nil
}

// ParseSet parses the output of the cmd.exe `set` builtin.
func ParseSet(out string) domain.Environment {
	var entries []string
	for line := range strings.Lines(out) {
		entries = append(entries, strings.TrimRight(line, "\r\n"))
	}
	return domain.EnvironmentFromSlice(entries)
}
