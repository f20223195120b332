package domain

import (
	"errors"
	"fmt"

	"go.trai.ch/zerr"
)

var (
	// ErrUnknownArchitecture is returned when the host machine identifier cannot be mapped to an Arch.
	ErrUnknownArchitecture = zerr.New("unknown CPU architecture")

	// ErrInvalidArchitecture is returned when a requested target architecture is not supported.
	ErrInvalidArchitecture = zerr.New("invalid architecture, expected one of x64, x86, arm64")

	// ErrPlatformNotSupported is returned when building for a platform that is not implemented.
	ErrPlatformNotSupported = zerr.New("building for this platform is not supported")

	// ErrInvalidVariable is returned when a -D argument is not of the form VAR=VALUE.
	ErrInvalidVariable = zerr.New("invalid variable, expected VAR=VALUE")

	// ErrDuplicateVariable is returned when the same -D variable is given more than once.
	ErrDuplicateVariable = zerr.New("variable specified more than once")

	// ErrBuildDescriptionReadFailed is returned when CMakeLists.txt cannot be read.
	ErrBuildDescriptionReadFailed = zerr.New("failed to read CMakeLists.txt")

	// ErrMissingProjectStatement is returned when CMakeLists.txt has no project() statement.
	ErrMissingProjectStatement = zerr.New("couldn't find project() statement in CMakeLists.txt")

	// ErrMissingExecutableStatement is returned when CMakeLists.txt has no add_executable() statement.
	ErrMissingExecutableStatement = zerr.New("couldn't find add_executable() statement in CMakeLists.txt")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file parses but holds an unusable value.
	ErrConfigInvalid = zerr.New("invalid config file")

	// ErrConflictingFlags is returned when flags that exclude each other are given together.
	ErrConflictingFlags = zerr.New("if any flags in the group are set none of the others can be")

	// ErrEnvCacheReadFailed is returned when the toolchain environment cache cannot be read.
	ErrEnvCacheReadFailed = zerr.New("failed to read environment cache")

	// ErrEnvCacheWriteFailed is returned when the toolchain environment cache cannot be written.
	ErrEnvCacheWriteFailed = zerr.New("failed to write environment cache")

	// ErrToolchainUnavailable is returned when no usable Visual Studio installation was found.
	ErrToolchainUnavailable = zerr.New("no usable Visual Studio installation could be found")

	// ErrToolchainEnvFailed is returned when VsDevCmd could not produce an environment.
	ErrToolchainEnvFailed = zerr.New("failed to load Visual Studio environment")

	// ErrDependencyFetchFailed is returned when the external dependencies could not be retrieved.
	ErrDependencyFetchFailed = zerr.New("failed to retrieve external dependencies")

	// ErrSDKSetupFailed is returned when the Emscripten SDK cannot be installed or activated.
	ErrSDKSetupFailed = zerr.New("failed to set up Emscripten SDK")

	// ErrNoVisualStudioGenerator is returned when an IDE was requested but CMake cannot generate VS projects.
	ErrNoVisualStudioGenerator = zerr.New("your version of CMake does not support Visual Studio project generation")

	// ErrConfigureFailed is returned when the CMake configure step fails.
	ErrConfigureFailed = zerr.New("failed to generate build script")

	// ErrBuildFailed is returned when the CMake build step fails.
	ErrBuildFailed = zerr.New("build failed")

	// ErrBuildDirCreateFailed is returned when the build directory cannot be created.
	ErrBuildDirCreateFailed = zerr.New("failed to create build directory")

	// ErrExecutableNotFound is returned when the built executable is not present in the build directory.
	ErrExecutableNotFound = zerr.New("couldn't find game executable")

	// ErrRenderDocNotFound is returned when RenderDoc is not installed.
	ErrRenderDocNotFound = zerr.New("couldn't find RenderDoc, please install it or make sure qrenderdoc is in your PATH")

	// ErrRenderDocRequiresNative is returned when RenderDoc is requested for a non-native platform.
	ErrRenderDocRequiresNative = zerr.New("RenderDoc can only debug native builds")

	// ErrSchemeNotFound is returned when an Xcode scheme file cannot be read.
	ErrSchemeNotFound = zerr.New("failed to read Xcode scheme")

	// ErrSchemeWriteFailed is returned when an Xcode scheme file cannot be written.
	ErrSchemeWriteFailed = zerr.New("failed to write Xcode scheme")

	// ErrArtifactCopyFailed is returned when a build artifact cannot be copied.
	ErrArtifactCopyFailed = zerr.New("failed to copy build artifact")

	// ErrServerFailed is returned when the local web server stops with an error.
	ErrServerFailed = zerr.New("web server failed")

	// ErrCommandFailed is returned when a subprocess exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")
)

// ExitCodeError reports that the launched game exited with a non-zero status.
// main uses it to mirror the game's exit code.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("game exited with code %d", e.Code)
}

// ExitCode extracts the exit status of a failed subprocess from err. It
// understands errors exposing an ExitCode method anywhere in the chain and
// errors carrying an "exit_code" metadata entry.
func ExitCode(err error) (int, bool) {
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode(), true
	}
	var meta interface{ Metadata() map[string]any }
	if errors.As(err, &meta) {
		if code, ok := meta.Metadata()["exit_code"].(int); ok {
			return code, true
		}
	}
	return 0, false
}
