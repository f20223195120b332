package orchestrator_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/kiln/internal/core/ports/mocks"
	"go.trai.ch/kiln/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

var (
	project   = &domain.Project{Name: "Ingot", Target: "Main"}
	linuxHost = domain.Host{OS: domain.OSLinux, Arch: domain.ArchX64}
	makefiles = domain.Generators{Default: "Unix Makefiles"}
)

type fixture struct {
	root        string
	logger      *mocks.MockLogger
	runner      *mocks.MockRunner
	host        *mocks.MockHostDetector
	projects    *mocks.MockProjectLoader
	settings    *mocks.MockSettingsLoader
	toolchain   *mocks.MockEnvironmentFactory
	buildSystem *mocks.MockBuildSystem
	sdk         *mocks.MockSDKManager
	artifacts   *mocks.MockArtifactSyncer
	webServer   *mocks.MockWebServer
	ide         *mocks.MockIDELauncher
	debugger    *mocks.MockDebugger
	packager    *mocks.MockPackager
	sut         *orchestrator.Orchestrator

	// summarized is set once the step summary has been reported.
	summarized bool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		root:        t.TempDir(),
		logger:      mocks.NewMockLogger(ctrl),
		runner:      mocks.NewMockRunner(ctrl),
		host:        mocks.NewMockHostDetector(ctrl),
		projects:    mocks.NewMockProjectLoader(ctrl),
		settings:    mocks.NewMockSettingsLoader(ctrl),
		toolchain:   mocks.NewMockEnvironmentFactory(ctrl),
		buildSystem: mocks.NewMockBuildSystem(ctrl),
		sdk:         mocks.NewMockSDKManager(ctrl),
		artifacts:   mocks.NewMockArtifactSyncer(ctrl),
		webServer:   mocks.NewMockWebServer(ctrl),
		ide:         mocks.NewMockIDELauncher(ctrl),
		debugger:    mocks.NewMockDebugger(ctrl),
		packager:    mocks.NewMockPackager(ctrl),
	}

	telemetry := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)
	telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		}).AnyTimes()
	vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	vertex.EXPECT().Cached().AnyTimes()
	telemetry.EXPECT().Close().DoAndReturn(func() error {
		f.summarized = true
		return nil
	}).AnyTimes()

	f.sut = orchestrator.New(orchestrator.Ports{
		Logger:      f.logger,
		Runner:      f.runner,
		Host:        f.host,
		Projects:    f.projects,
		Settings:    f.settings,
		Toolchain:   f.toolchain,
		BuildSystem: f.buildSystem,
		SDK:         f.sdk,
		Artifacts:   f.artifacts,
		WebServer:   f.webServer,
		IDE:         f.ide,
		Debugger:    f.debugger,
		Packager:    f.packager,
		Telemetry:   telemetry,
	})
	return f
}

// expectResolve sets up host detection and project loading.
func (f *fixture) expectResolve(host domain.Host, settings domain.Settings) {
	f.host.EXPECT().Detect().Return(host, nil)
	f.projects.EXPECT().Load(f.root).Return(project, nil)
	f.settings.EXPECT().Load(f.root).Return(settings, nil)
}

// expectTools makes ninja reachable and lets `cmake -G` report detected.
func (f *fixture) expectTools(detected domain.Generators) {
	f.runner.EXPECT().LookPath("ninja", gomock.Any()).Return("/usr/bin/ninja", true).AnyTimes()
	f.buildSystem.EXPECT().Generators(gomock.Any(), gomock.Any()).Return(detected, nil)
	f.buildSystem.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
}

// quietLogs accepts any informational output not asserted explicitly.
func (f *fixture) quietLogs() {
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
}

// expectBuild builds successfully and drops the game executable into the build dir.
func (f *fixture) expectBuild(t *testing.T) {
	t.Helper()
	f.buildSystem.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec domain.BuildSpec, _ domain.Environment) error {
			return os.WriteFile(filepath.Join(spec.BuildDir, project.Name), []byte("ELF"), 0o700) //nolint:gosec // fake game
		})
	f.artifacts.EXPECT().CopyIfChanged(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()
	f.artifacts.EXPECT().FilterLines(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
}

func TestRun_UnsupportedPlatforms(t *testing.T) {
	for _, platform := range []domain.Platform{domain.PlatformIOS, domain.PlatformAndroid} {
		t.Run(platform.String(), func(t *testing.T) {
			f := newFixture(t)

			err := f.sut.Run(context.Background(), orchestrator.Request{Root: f.root, Platform: platform})
			require.ErrorContains(t, err, domain.ErrPlatformNotSupported.Error())
			assert.NoDirExists(t, filepath.Join(f.root, "cache"))
		})
	}
}

func TestRun_RenderDocRequiresNative(t *testing.T) {
	f := newFixture(t)

	err := f.sut.Run(context.Background(), orchestrator.Request{
		Root:     f.root,
		Platform: domain.PlatformWeb,
		Action:   domain.ActionRenderDoc,
	})
	require.ErrorContains(t, err, domain.ErrRenderDocRequiresNative.Error())
}

func TestRun_ReleaseNative(t *testing.T) {
	f := newFixture(t)
	f.quietLogs()
	f.expectResolve(linuxHost, domain.DefaultSettings())
	f.expectTools(makefiles)

	buildDir := filepath.Join(f.root, "cache", "x64-relwithdebinfo-ninja")
	f.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any(), domain.Environment{}).DoAndReturn(
		func(_ context.Context, spec domain.ConfigureSpec, _ domain.Environment) error {
			assert.Equal(t, domain.ConfigRelWithDebInfo, spec.Configuration)
			assert.Equal(t, domain.GeneratorNinja, spec.Generator)
			assert.Equal(t, buildDir, spec.BuildDir)
			assert.Equal(t, filepath.Join("..", ".."), spec.SourceDir)
			assert.Equal(t, domain.ChecksCacheModulePath(f.root), spec.ChecksModuleDir)
			assert.Empty(t, spec.ChecksCache)
			assert.Empty(t, spec.ToolchainFile)
			return nil
		})
	f.buildSystem.EXPECT().Build(gomock.Any(), domain.BuildSpec{
		Configuration: domain.ConfigRelWithDebInfo,
		BuildDir:      buildDir,
	}, gomock.Any()).DoAndReturn(
		func(_ context.Context, spec domain.BuildSpec, _ domain.Environment) error {
			return os.WriteFile(filepath.Join(spec.BuildDir, "Ingot"), []byte("ELF"), 0o700) //nolint:gosec // fake game
		})
	f.artifacts.EXPECT().CopyIfChanged(
		filepath.Join(buildDir, "compile_commands.json"),
		filepath.Join(f.root, "compile_commands.json"),
	).Return(true, nil)
	f.artifacts.EXPECT().FilterLines(
		filepath.Join(buildDir, "cmake_checks_cache.txt"),
		filepath.Join(f.root, "cache", "cmake_checks_cache.txt"),
		"HAVE_",
	).Return(true, nil)

	err := f.sut.Run(context.Background(), orchestrator.Request{Root: f.root, Release: true})
	require.NoError(t, err)
	assert.DirExists(t, buildDir)
}

func TestRun_UsesChecksCacheWhenPresent(t *testing.T) {
	f := newFixture(t)
	f.quietLogs()
	f.expectResolve(linuxHost, domain.DefaultSettings())
	f.expectTools(makefiles)
	f.expectBuild(t)

	checks := domain.ChecksCachePath(f.root)
	require.NoError(t, os.MkdirAll(filepath.Dir(checks), 0o750))
	require.NoError(t, os.WriteFile(checks, []byte("set(HAVE_X 1)\n"), 0o600))

	f.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec domain.ConfigureSpec, _ domain.Environment) error {
			assert.Equal(t, checks, spec.ChecksCache)
			assert.Empty(t, spec.ChecksModuleDir)
			return nil
		})

	require.NoError(t, f.sut.Run(context.Background(), orchestrator.Request{Root: f.root}))
}

func TestRun_GeneratorDetectionFailureIsWarning(t *testing.T) {
	f := newFixture(t)
	f.expectResolve(linuxHost, domain.DefaultSettings())
	f.runner.EXPECT().LookPath("ninja", gomock.Any()).Return("", false).AnyTimes()
	f.buildSystem.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.buildSystem.EXPECT().Generators(gomock.Any(), gomock.Any()).Return(domain.Generators{}, errors.New("cmake missing"))
	f.logger.EXPECT().Warn("Failed to determine default CMake generator. Will let CMake select one.")
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.expectBuild(t)

	f.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec domain.ConfigureSpec, _ domain.Environment) error {
			assert.Empty(t, spec.Generator)
			assert.Equal(t, filepath.Join(f.root, "cache", "x64-debug"), spec.BuildDir)
			return nil
		})

	require.NoError(t, f.sut.Run(context.Background(), orchestrator.Request{Root: f.root}))
}

func TestRun_CleanRemovesPreviousContents(t *testing.T) {
	f := newFixture(t)
	f.expectResolve(linuxHost, domain.DefaultSettings())
	f.expectTools(makefiles)
	f.expectBuild(t)

	buildDir := filepath.Join(f.root, "cache", "x64-debug-ninja")
	stale := filepath.Join(buildDir, "stale.o")
	require.NoError(t, os.MkdirAll(buildDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(buildDir, "build.ninja"), nil, 0o600))
	require.NoError(t, os.WriteFile(stale, nil, 0o600))

	f.logger.EXPECT().Info("Cleaning build directory: " + filepath.Join("cache", "x64-debug-ninja"))
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.ConfigureSpec, _ domain.Environment) error {
			assert.NoFileExists(t, stale)
			return nil
		})

	require.NoError(t, f.sut.Run(context.Background(), orchestrator.Request{Root: f.root, Clean: true}))
	assert.NoFileExists(t, stale)
}

func TestRun_SkipsConfigureWhenNinjaRegenerates(t *testing.T) {
	f := newFixture(t)
	f.quietLogs()
	f.expectResolve(linuxHost, domain.DefaultSettings())
	f.expectTools(makefiles)
	f.expectBuild(t)

	buildDir := filepath.Join(f.root, "cache", "x64-debug-ninja")
	require.NoError(t, os.MkdirAll(buildDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(buildDir, "build.ninja"), nil, 0o600))

	require.NoError(t, f.sut.Run(context.Background(), orchestrator.Request{Root: f.root}))
}

func TestRun_ReconfigureForcesConfigure(t *testing.T) {
	f := newFixture(t)
	f.quietLogs()
	f.expectResolve(linuxHost, domain.DefaultSettings())
	f.expectTools(makefiles)
	f.expectBuild(t)

	buildDir := filepath.Join(f.root, "cache", "x64-debug-ninja")
	require.NoError(t, os.MkdirAll(buildDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(buildDir, "build.ninja"), nil, 0o600))
	f.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.sut.Run(context.Background(), orchestrator.Request{Root: f.root, Reconfigure: true}))
}

func TestRun_FetchFailure(t *testing.T) {
	f := newFixture(t)
	f.expectResolve(linuxHost, domain.DefaultSettings())
	f.runner.EXPECT().LookPath("ninja", gomock.Any()).Return("", false)
	f.logger.EXPECT().Info("Fetching external dependencies (if needed)")
	f.buildSystem.EXPECT().Fetch(gomock.Any(), domain.FetchSpec{
		Dir:    filepath.Join(f.root, "cache", "external_fetch"),
		Source: filepath.Join(f.root, "external"),
	}, gomock.Any()).Return(domain.ErrDependencyFetchFailed)
	gomock.InOrder(
		f.logger.EXPECT().Warn("Failed to retrieve external dependencies."),
		f.logger.EXPECT().Warn("Try deleting any failed dependencies from external/."),
	)

	err := f.sut.Run(context.Background(), orchestrator.Request{Root: f.root})
	require.ErrorIs(t, err, domain.ErrDependencyFetchFailed)
	assert.True(t, f.summarized)
}

func TestRun_ToolchainOnWindows(t *testing.T) {
	f := newFixture(t)
	f.quietLogs()
	host := domain.Host{OS: domain.OSWindows, Arch: domain.ArchX64}
	f.expectResolve(host, domain.DefaultSettings())

	base := domain.Environment{"PATH": `C:\Windows`}
	overlay := domain.Environment{"INCLUDE": `C:\VS\include`}
	f.host.EXPECT().Environ().Return(base)
	f.toolchain.EXPECT().Import(gomock.Any(), f.root, host, domain.ArchX86, base).Return(overlay, nil)

	f.runner.EXPECT().LookPath("ninja", overlay).Return(`C:\VS\ninja.exe`, true).AnyTimes()
	f.buildSystem.EXPECT().Fetch(gomock.Any(), gomock.Any(), overlay).Return(nil)
	f.buildSystem.EXPECT().Generators(gomock.Any(), overlay).Return(domain.Generators{Default: "Visual Studio 17 2022"}, nil)
	f.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any(), overlay).DoAndReturn(
		func(_ context.Context, spec domain.ConfigureSpec, _ domain.Environment) error {
			assert.Equal(t, domain.ArchX86, spec.Arch)
			assert.Equal(t, filepath.Join(f.root, "cache", "x86-debug-ninja"), spec.BuildDir)
			return nil
		})
	f.expectBuild(t)

	err := f.sut.Run(context.Background(), orchestrator.Request{Root: f.root, Arch: domain.ArchX86})
	require.NoError(t, err)
}

func TestRun_MissingExecutable(t *testing.T) {
	f := newFixture(t)
	f.quietLogs()
	f.expectResolve(linuxHost, domain.DefaultSettings())
	f.expectTools(makefiles)
	f.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.buildSystem.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.artifacts.EXPECT().CopyIfChanged(gomock.Any(), gomock.Any()).Return(false, nil)
	f.artifacts.EXPECT().FilterLines(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)

	err := f.sut.Run(context.Background(), orchestrator.Request{Root: f.root})
	require.ErrorContains(t, err, domain.ErrExecutableNotFound.Error())
}

type exitError int

func (exitError) Error() string { return "exit status" }

func (e exitError) ExitCode() int { return int(e) }

func TestRun_GameExitCode(t *testing.T) {
	f := newFixture(t)
	f.expectResolve(linuxHost, domain.DefaultSettings())
	f.expectTools(makefiles)
	f.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.expectBuild(t)

	executable := filepath.Join(f.root, "cache", "x64-debug-ninja", "Ingot")
	f.logger.EXPECT().Info("Launching game: " + executable + " --level 'Boss Room'")
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.runner.EXPECT().Run(gomock.Any(), domain.Command{
		Name: executable,
		Args: []string{"--level", "Boss Room"},
		Dir:  f.root,
		Env:  domain.Environment{},
	}).DoAndReturn(func(context.Context, domain.Command) error {
		assert.True(t, f.summarized, "step summary is reported before the game starts")
		return exitError(3)
	})
	f.logger.EXPECT().Warn("Game exited with code 3")

	err := f.sut.Run(context.Background(), orchestrator.Request{
		Root:     f.root,
		Action:   domain.ActionRun,
		GameArgs: []string{"--level", "Boss Room"},
	})
	var exitErr *domain.ExitCodeError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Code)
}

func TestRun_GameInterrupted(t *testing.T) {
	f := newFixture(t)
	f.quietLogs()
	f.expectResolve(linuxHost, domain.DefaultSettings())
	f.expectTools(makefiles)
	f.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.expectBuild(t)

	ctx, cancel := context.WithCancel(context.Background())
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.Command) error {
			cancel()
			return exitError(130)
		})

	require.NoError(t, f.sut.Run(ctx, orchestrator.Request{Root: f.root, Action: domain.ActionRun}))
}

func TestRun_RenderDoc(t *testing.T) {
	f := newFixture(t)
	f.quietLogs()
	f.expectResolve(linuxHost, domain.DefaultSettings())
	f.expectTools(makefiles)
	f.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.expectBuild(t)

	executable := filepath.Join(f.root, "cache", "x64-debug-ninja", "Ingot")
	f.debugger.EXPECT().Launch(gomock.Any(), f.root, executable, domain.Environment{}).Return(nil)

	require.NoError(t, f.sut.Run(context.Background(), orchestrator.Request{Root: f.root, Action: domain.ActionRenderDoc}))
}

func TestRun_PackageNativeWarns(t *testing.T) {
	f := newFixture(t)
	f.expectResolve(linuxHost, domain.DefaultSettings())
	f.expectTools(makefiles)
	f.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec domain.ConfigureSpec, _ domain.Environment) error {
			assert.Equal(t, domain.ConfigRelWithDebInfo, spec.Configuration)
			return nil
		})
	f.buildSystem.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec domain.BuildSpec, _ domain.Environment) error {
			return os.WriteFile(filepath.Join(spec.BuildDir, "Ingot"), []byte("ELF"), 0o700) //nolint:gosec // fake game
		})
	f.artifacts.EXPECT().CopyIfChanged(gomock.Any(), gomock.Any()).Return(false, nil)
	f.artifacts.EXPECT().FilterLines(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn("Packaging is only supported for web builds.")

	require.NoError(t, f.sut.Run(context.Background(), orchestrator.Request{Root: f.root, Action: domain.ActionPackage}))
}

func TestRun_WebPackage(t *testing.T) {
	f := newFixture(t)
	settings := domain.DefaultSettings()
	f.expectResolve(linuxHost, settings)
	f.expectTools(makefiles)

	emsdk := filepath.Join(f.root, "external", "emsdk")
	toolchain := filepath.Join(emsdk, "Emscripten.cmake")
	buildDir := filepath.Join(f.root, "cache", "web-release-ninja")
	html := filepath.Join(buildDir, "Ingot.html")

	f.logger.EXPECT().Info("Setting up Emscripten 3.1.46")
	f.logger.EXPECT().Info("Packaging game: " + filepath.Join("docs", "Ingot.html"))
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.sdk.EXPECT().Activate(gomock.Any(), emsdk, "3.1.46", gomock.Any()).Return(toolchain, nil)
	f.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec domain.ConfigureSpec, _ domain.Environment) error {
			assert.Equal(t, domain.ConfigRelease, spec.Configuration)
			assert.Equal(t, domain.PlatformWeb, spec.Platform)
			assert.Equal(t, toolchain, spec.ToolchainFile)
			assert.Equal(t, buildDir, spec.BuildDir)
			return os.WriteFile(html, []byte("stale"), 0o600)
		})
	f.buildSystem.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.BuildSpec, _ domain.Environment) error {
			assert.NoFileExists(t, html)
			return nil
		})
	f.artifacts.EXPECT().FilterLines(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	f.packager.EXPECT().Package(buildDir, filepath.Join(f.root, "docs"), *project).Return(nil)

	err := f.sut.Run(context.Background(), orchestrator.Request{
		Root:     f.root,
		Platform: domain.PlatformWeb,
		Action:   domain.ActionPackage,
	})
	require.NoError(t, err)
}

func TestRun_WebServe(t *testing.T) {
	f := newFixture(t)
	f.quietLogs()
	settings := domain.DefaultSettings()
	settings.Server = domain.ServerSettings{Address: "127.0.0.1", Port: 9000}
	f.expectResolve(linuxHost, settings)
	f.expectTools(makefiles)
	f.sdk.EXPECT().Activate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("Emscripten.cmake", nil)
	f.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.buildSystem.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.artifacts.EXPECT().FilterLines(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	f.webServer.EXPECT().Serve(gomock.Any(),
		filepath.Join(f.root, "cache", "web-debug-ninja"), "127.0.0.1:9000", "Ingot.html").Return(nil)

	err := f.sut.Run(context.Background(), orchestrator.Request{
		Root:     f.root,
		Platform: domain.PlatformWeb,
		Action:   domain.ActionRun,
	})
	require.NoError(t, err)
}

func TestRun_IDEOnDarwin(t *testing.T) {
	f := newFixture(t)
	f.quietLogs()
	host := domain.Host{OS: domain.OSDarwin, Arch: domain.ArchARM64}
	f.expectResolve(host, domain.DefaultSettings())
	f.expectTools(makefiles)

	buildDir := filepath.Join(f.root, "cache", "arm64-debug-xcode")
	f.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec domain.ConfigureSpec, _ domain.Environment) error {
			assert.Equal(t, domain.GeneratorXcode, spec.Generator)
			assert.True(t, spec.IDE)
			return nil
		})
	f.ide.EXPECT().Open(gomock.Any(), domain.IDERequest{
		Root:     f.root,
		BuildDir: buildDir,
		Project:  *project,
		HostOS:   domain.OSDarwin,
	}).Return(nil)

	require.NoError(t, f.sut.Run(context.Background(), orchestrator.Request{Root: f.root, Action: domain.ActionIDE}))
}

func TestRun_IDEWithoutVisualStudio(t *testing.T) {
	f := newFixture(t)
	f.quietLogs()
	host := domain.Host{OS: domain.OSWindows, Arch: domain.ArchX64}
	f.expectResolve(host, domain.DefaultSettings())
	f.host.EXPECT().Environ().Return(domain.Environment{})
	f.toolchain.EXPECT().Import(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Environment{}, nil)
	f.expectTools(domain.Generators{Default: "Ninja"})

	err := f.sut.Run(context.Background(), orchestrator.Request{Root: f.root, Action: domain.ActionIDE})
	require.ErrorIs(t, err, domain.ErrNoVisualStudioGenerator)
}

func TestRun_SettingsDefaults(t *testing.T) {
	f := newFixture(t)
	f.quietLogs()
	settings := domain.DefaultSettings()
	settings.Generator = "Unix Makefiles"
	settings.Variables = map[string]string{"GAME_ASSERTS": "ON", "GAME_PROFILE": "OFF"}
	f.expectResolve(linuxHost, settings)
	f.expectTools(makefiles)
	f.expectBuild(t)

	f.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec domain.ConfigureSpec, _ domain.Environment) error {
			assert.Equal(t, "Unix Makefiles", spec.Generator)
			assert.Equal(t, domain.Variables{
				{Name: "GAME_ASSERTS", Value: "ON"},
				{Name: "GAME_PROFILE", Value: "ON"},
			}, spec.Variables)
			assert.Equal(t, filepath.Join(f.root, "cache", "x64-debug-unixmakefiles"), spec.BuildDir)
			return nil
		})

	err := f.sut.Run(context.Background(), orchestrator.Request{
		Root:      f.root,
		Variables: domain.Variables{{Name: "GAME_PROFILE", Value: "ON"}},
	})
	require.NoError(t, err)
}

func TestRun_IDEIgnoresConfiguredGenerator(t *testing.T) {
	f := newFixture(t)
	f.quietLogs()
	host := domain.Host{OS: domain.OSDarwin, Arch: domain.ArchARM64}
	settings := domain.DefaultSettings()
	settings.Generator = domain.GeneratorNinja
	f.expectResolve(host, settings)
	f.expectTools(makefiles)

	buildDir := filepath.Join(f.root, "cache", "arm64-debug-xcode")
	f.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec domain.ConfigureSpec, _ domain.Environment) error {
			assert.Equal(t, domain.GeneratorXcode, spec.Generator)
			assert.Equal(t, buildDir, spec.BuildDir)
			return nil
		})
	f.ide.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.sut.Run(context.Background(), orchestrator.Request{Root: f.root, Action: domain.ActionIDE}))
}

func TestRun_GeneratorFlagBeatsIDE(t *testing.T) {
	f := newFixture(t)
	f.quietLogs()
	host := domain.Host{OS: domain.OSDarwin, Arch: domain.ArchARM64}
	f.expectResolve(host, domain.DefaultSettings())
	f.expectTools(makefiles)

	f.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, spec domain.ConfigureSpec, _ domain.Environment) error {
			assert.Equal(t, "Unix Makefiles", spec.Generator)
			return nil
		})
	f.ide.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil)

	err := f.sut.Run(context.Background(), orchestrator.Request{
		Root:      f.root,
		Generator: "Unix Makefiles",
		Action:    domain.ActionIDE,
	})
	require.NoError(t, err)
}
