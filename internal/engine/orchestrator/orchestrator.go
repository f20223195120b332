// Package orchestrator implements the build pipeline: resolve the build,
// prepare the toolchain, configure and build with CMake, then run the
// requested post-build action.
package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

// Request describes one build invocation.
type Request struct {
	// Root is the absolute repository root holding CMakeLists.txt.
	Root     string
	Platform domain.Platform
	// Arch is the target architecture. Empty means the host architecture.
	Arch        domain.Arch
	Release     bool
	Clean       bool
	Reconfigure bool
	// Generator overrides the generator from kiln.yaml and auto-selection.
	Generator string
	Variables domain.Variables
	Action    domain.Action
	// GameArgs are passed verbatim to the game by ActionRun.
	GameArgs []string
}

// Ports bundles the adapters the pipeline drives.
type Ports struct {
	Logger      ports.Logger
	Runner      ports.Runner
	Host        ports.HostDetector
	Projects    ports.ProjectLoader
	Settings    ports.SettingsLoader
	Toolchain   ports.EnvironmentFactory
	BuildSystem ports.BuildSystem
	SDK         ports.SDKManager
	Artifacts   ports.ArtifactSyncer
	WebServer   ports.WebServer
	IDE         ports.IDELauncher
	Debugger    ports.Debugger
	Packager    ports.Packager
	Telemetry   ports.Telemetry
}

// Orchestrator runs the build pipeline.
type Orchestrator struct {
	Ports
}

// New creates a new Orchestrator.
func New(p Ports) *Orchestrator {
	return &Orchestrator{Ports: p}
}

// build is the state resolved for one invocation.
type build struct {
	req           Request
	host          domain.Host
	project       *domain.Project
	settings      domain.Settings
	arch          domain.Arch
	configuration domain.Configuration
	env           domain.Environment
	toolchainFile string
	generator     string
	name          string
	dir           string
}

func (b *build) native() bool { return b.req.Platform.IsNative() }

func (b *build) ide() bool { return b.req.Action == domain.ActionIDE }

// displayDir is the build directory relative to the repository root.
func (b *build) displayDir() string {
	return filepath.Join(domain.CacheDirName, b.name)
}

// Run executes the pipeline for req.
func (o *Orchestrator) Run(ctx context.Context, req Request) error {
	if err := req.Platform.Validate(); err != nil {
		return err
	}
	if req.Action == domain.ActionRenderDoc && !req.Platform.IsNative() {
		return zerr.With(domain.ErrRenderDocRequiresNative, "platform", req.Platform.String())
	}

	b, err := o.resolve(req)
	if err != nil {
		return err
	}

	steps := []struct {
		name string
		run  stepFunc
	}{
		{"toolchain", o.importToolchain},
		{"dependencies", o.fetchDependencies},
		{"sdk", o.setupSDK},
		{"generator", o.selectGenerator},
		{"build-directory", o.prepareBuildDir},
		{"configure", o.configure},
		{"build", o.compile},
	}
	for _, s := range steps {
		if err = o.step(ctx, s.name, b, s.run); err != nil {
			break
		}
	}
	// The summary is reported before the action, which may run for a long time.
	if closeErr := o.Telemetry.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	return o.dispatch(ctx, b)
}

// stepFunc runs one pipeline step. skipped reports that the step had nothing to do.
type stepFunc func(ctx context.Context, b *build) (skipped bool, err error)

func (o *Orchestrator) step(ctx context.Context, name string, b *build, run stepFunc) error {
	ctx, vertex := o.Telemetry.Record(ctx, name)
	skipped, err := run(ctx, b)
	if skipped && err == nil {
		vertex.Cached()
	}
	vertex.Complete(err)
	return err
}

func (o *Orchestrator) resolve(req Request) (*build, error) {
	host, err := o.Host.Detect()
	if err != nil {
		return nil, err
	}
	project, err := o.Projects.Load(req.Root)
	if err != nil {
		return nil, err
	}
	settings, err := o.Settings.Load(req.Root)
	if err != nil {
		return nil, err
	}

	arch := req.Arch
	if arch == "" {
		arch = host.Arch
	}
	req.Variables = req.Variables.WithDefaults(settings.Variables)

	return &build{
		req:           req,
		host:          host,
		project:       project,
		settings:      settings,
		arch:          arch,
		configuration: domain.ResolveConfiguration(req.Release, req.Action == domain.ActionPackage, req.Platform),
		env:           domain.Environment{},
	}, nil
}

// importToolchain loads the Visual Studio environment on Windows hosts.
func (o *Orchestrator) importToolchain(ctx context.Context, b *build) (bool, error) {
	if !b.host.IsWindows() {
		return true, nil
	}
	overlay, err := o.Toolchain.Import(ctx, b.req.Root, b.host, b.arch, o.Host.Environ())
	if err != nil {
		return false, err
	}
	b.env = overlay
	return false, nil
}

func (o *Orchestrator) fetchDependencies(ctx context.Context, b *build) (bool, error) {
	o.Logger.Info("Fetching external dependencies (if needed)")

	spec := domain.FetchSpec{
		Dir:    domain.ExternalFetchPath(b.req.Root),
		Source: domain.ExternalPath(b.req.Root),
	}
	if _, ok := o.Runner.LookPath("ninja", b.env); ok {
		spec.Generator = domain.GeneratorNinja
	}

	if err := o.BuildSystem.Fetch(ctx, spec, b.env); err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		o.Logger.Warn("Failed to retrieve external dependencies.")
		o.Logger.Warn("Try deleting any failed dependencies from external/.")
		return false, err
	}
	return false, nil
}

// setupSDK activates Emscripten for web builds.
func (o *Orchestrator) setupSDK(ctx context.Context, b *build) (bool, error) {
	if b.req.Platform != domain.PlatformWeb {
		return true, nil
	}
	version := b.settings.EmsdkVersion
	o.Logger.Info("Setting up Emscripten " + version)

	toolchain, err := o.SDK.Activate(ctx, domain.EmsdkPath(b.req.Root), version, b.env)
	if err != nil {
		return false, err
	}
	b.toolchainFile = toolchain
	return false, nil
}

func (o *Orchestrator) selectGenerator(ctx context.Context, b *build) (bool, error) {
	detected, err := o.BuildSystem.Generators(ctx, b.env)
	if err != nil || detected.Default == "" {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		o.Logger.Warn("Failed to determine default CMake generator. Will let CMake select one.")
	}

	// The kiln.yaml default gives way to the IDE's generator; -G does not.
	requested := b.req.Generator
	if requested == "" && !b.ide() {
		requested = b.settings.Generator
	}
	_, ninja := o.Runner.LookPath("ninja", b.env)

	generator, err := domain.SelectGenerator(domain.GeneratorRequest{
		Requested:      requested,
		IDE:            b.ide(),
		HostOS:         b.host.OS,
		NinjaAvailable: ninja,
		Detected:       detected,
	})
	if err != nil {
		return false, err
	}

	b.generator = generator
	b.name = domain.BuildName(b.configuration, b.req.Platform, b.arch, generator)
	b.dir = domain.BuildDirPath(b.req.Root, b.name)
	return false, nil
}

func (o *Orchestrator) prepareBuildDir(_ context.Context, b *build) (bool, error) {
	if b.req.Clean {
		o.Logger.Info("Cleaning build directory: " + b.displayDir())
		_ = os.RemoveAll(b.dir)
	} else {
		o.Logger.Info("Build directory: " + b.displayDir())
	}

	if err := os.MkdirAll(b.dir, domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrBuildDirCreateFailed.Error()), "path", b.dir)
	}
	return false, nil
}

func (o *Orchestrator) configure(ctx context.Context, b *build) (bool, error) {
	if domain.ShouldSkipConfigure(b.req.Reconfigure, b.generator, fileExists(filepath.Join(b.dir, domain.NinjaBuildScript))) {
		return true, nil
	}

	source, err := filepath.Rel(b.dir, b.req.Root)
	if err != nil {
		source = b.req.Root
	}

	spec := domain.ConfigureSpec{
		Configuration: b.configuration,
		Generator:     b.generator,
		Arch:          b.arch,
		Platform:      b.req.Platform,
		IDE:           b.ide(),
		ToolchainFile: b.toolchainFile,
		Variables:     b.req.Variables,
		SourceDir:     source,
		BuildDir:      b.dir,
	}
	// Compiler checks cached by one generator are reused by the others.
	if checks := domain.ChecksCachePath(b.req.Root); fileExists(checks) {
		spec.ChecksCache = checks
	} else {
		spec.ChecksModuleDir = domain.ChecksCacheModulePath(b.req.Root)
	}

	return false, o.BuildSystem.Configure(ctx, spec, b.env)
}

// compile builds the project and syncs generated files back to the
// repository. IDE projects are built from the IDE instead.
func (o *Orchestrator) compile(ctx context.Context, b *build) (bool, error) {
	if b.req.Platform == domain.PlatformWeb {
		// CMake does not track shell.html, so the page is always relinked.
		_ = os.Remove(filepath.Join(b.dir, b.project.Name+".html"))
	}
	if b.ide() {
		return true, nil
	}

	spec := domain.BuildSpec{Configuration: b.configuration, BuildDir: b.dir}
	if err := o.BuildSystem.Build(ctx, spec, b.env); err != nil {
		return false, err
	}

	if b.native() {
		copied, err := o.Artifacts.CopyIfChanged(
			filepath.Join(b.dir, domain.CompileCommandsFileName),
			filepath.Join(b.req.Root, domain.CompileCommandsFileName),
		)
		if err != nil {
			return false, err
		}
		if copied {
			o.Logger.Info("Copied " + domain.CompileCommandsFileName + " from " + b.displayDir() + " to repository root")
		}
	}

	written, err := o.Artifacts.FilterLines(
		filepath.Join(b.dir, domain.ChecksCacheFileName),
		domain.ChecksCachePath(b.req.Root),
		domain.ChecksCacheMarker,
	)
	if err != nil {
		return false, err
	}
	if written {
		o.Logger.Info("Copied CMake checks cache from " + b.displayDir() + " to " + domain.CacheDirName)
	}
	return false, nil
}

// dispatch performs the post-build action.
func (o *Orchestrator) dispatch(ctx context.Context, b *build) error {
	if b.ide() {
		return o.IDE.Open(ctx, domain.IDERequest{
			Root:     b.req.Root,
			BuildDir: b.dir,
			Project:  *b.project,
			HostOS:   b.host.OS,
		})
	}

	if !b.native() {
		switch b.req.Action {
		case domain.ActionRun:
			return o.WebServer.Serve(ctx, b.dir, b.settings.Server.Addr(), b.project.Name+".html")
		case domain.ActionPackage:
			return o.packageGame(b)
		default:
			return nil
		}
	}

	executable, err := domain.FindExecutable(b.dir, b.configuration, b.project.Name)
	if err != nil {
		return err
	}

	switch b.req.Action {
	case domain.ActionRun:
		return o.runGame(ctx, b, executable)
	case domain.ActionRenderDoc:
		return o.Debugger.Launch(ctx, b.req.Root, executable, b.env)
	case domain.ActionPackage:
		o.Logger.Warn("Packaging is only supported for web builds.")
		return nil
	default:
		return nil
	}
}

func (o *Orchestrator) runGame(ctx context.Context, b *build, executable string) error {
	cmd := domain.Command{Name: executable, Args: b.req.GameArgs, Dir: b.req.Root, Env: b.env}
	o.Logger.Info("Launching game: " + cmd.String())

	err := o.Runner.Run(ctx, cmd)
	if err == nil || ctx.Err() != nil {
		return nil
	}
	if code, ok := domain.ExitCode(err); ok && code > 0 {
		o.Logger.Warn("Game exited with code " + strconv.Itoa(code))
		return &domain.ExitCodeError{Code: code}
	}
	return err
}

func (o *Orchestrator) packageGame(b *build) error {
	outDir := filepath.Join(b.req.Root, b.settings.PublishDir)
	o.Logger.Info("Packaging game: " + filepath.Join(b.settings.PublishDir, b.project.Name+".html"))
	return o.Packager.Package(b.dir, outDir, *b.project)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
