package domain

import "path/filepath"

const (
	// CacheDirName is the directory holding build directories and caches.
	CacheDirName = "cache"

	// ExternalDirName is the directory holding the dependency-fetch project and third-party SDKs.
	ExternalDirName = "external"

	// ExternalFetchDirName is the build directory of the dependency-fetch project inside the cache.
	ExternalFetchDirName = "external_fetch"

	// EnvCacheFileName is the toolchain environment cache file.
	EnvCacheFileName = "msvc_environment.json"

	// ChecksCacheFileName is the compiler-checks cache produced by CMake and kept in the cache dir.
	ChecksCacheFileName = "cmake_checks_cache.txt"

	// ChecksCacheMarker selects the lines kept in the compiler-checks cache.
	ChecksCacheMarker = "HAVE_"

	// RenderDocCaptureFileName is the generated RenderDoc capture settings file.
	RenderDocCaptureFileName = "renderdoc.cap"

	// CompileCommandsFileName is the compilation database exported by CMake.
	CompileCommandsFileName = "compile_commands.json"

	// BuildDescriptionFileName is the CMake build description at the repository root.
	BuildDescriptionFileName = "CMakeLists.txt"

	// NinjaBuildScript is the build script generated by the Ninja generator.
	NinjaBuildScript = "build.ninja"

	// ConfigFileName is the optional project configuration file.
	ConfigFileName = "kiln.yaml"

	// DefaultPublishDir is where web packages are written (expected by GitHub Pages).
	DefaultPublishDir = "docs"

	// NoJekyllFileName disables Jekyll processing on GitHub Pages.
	NoJekyllFileName = ".nojekyll"

	// PublishedEntryFileName is the name the HTML entry point is published under.
	PublishedEntryFileName = "index.html"

	// DefaultEmsdkVersion is the pinned Emscripten SDK release (2023-09-15).
	DefaultEmsdkVersion = "3.1.46"

	// DefaultServerAddress is the address the local web server listens on.
	DefaultServerAddress = "0.0.0.0"

	// DefaultServerPort is the port the local web server listens on.
	DefaultServerPort = 8000

	// MinVisualStudioVersion is the oldest Visual Studio major version accepted (2017).
	MinVisualStudioVersion = 15

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// CachePath returns the cache directory under root.
func CachePath(root string) string {
	return filepath.Join(root, CacheDirName)
}

// ExternalPath returns the external dependencies directory under root.
func ExternalPath(root string) string {
	return filepath.Join(root, ExternalDirName)
}

// ExternalFetchPath returns the build directory of the dependency-fetch project.
func ExternalFetchPath(root string) string {
	return filepath.Join(root, CacheDirName, ExternalFetchDirName)
}

// EnvCachePath returns the path of the toolchain environment cache.
func EnvCachePath(root string) string {
	return filepath.Join(root, CacheDirName, EnvCacheFileName)
}

// ChecksCachePath returns the path of the shared compiler-checks cache.
func ChecksCachePath(root string) string {
	return filepath.Join(root, CacheDirName, ChecksCacheFileName)
}

// ChecksCacheModulePath returns the CMake module directory that produces the checks cache.
func ChecksCacheModulePath(root string) string {
	return filepath.Join(root, ExternalDirName, "cmake_checks_cache", "CMakeChecksCache")
}

// RenderDocCapturePath returns the path of the generated RenderDoc capture settings.
func RenderDocCapturePath(root string) string {
	return filepath.Join(root, CacheDirName, RenderDocCaptureFileName)
}

// EmsdkPath returns the Emscripten SDK checkout under external/.
func EmsdkPath(root string) string {
	return filepath.Join(root, ExternalDirName, "emsdk")
}

// BuildDirPath returns the build directory for the given build name.
func BuildDirPath(root, buildName string) string {
	return filepath.Join(root, CacheDirName, buildName)
}
