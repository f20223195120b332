package domain

import "strings"

// Configuration is a CMake build type.
type Configuration string

const (
	// ConfigDebug is an unoptimised build with debug information.
	ConfigDebug Configuration = "Debug"
	// ConfigRelWithDebInfo is an optimised build that keeps debug information.
	ConfigRelWithDebInfo Configuration = "RelWithDebInfo"
	// ConfigRelease is a fully optimised build.
	ConfigRelease Configuration = "Release"
)

// String implements fmt.Stringer.
func (c Configuration) String() string {
	return string(c)
}

// Lower returns the configuration name in lower case, as used in build directory names.
func (c Configuration) Lower() string {
	return strings.ToLower(string(c))
}

// ResolveConfiguration picks the build type for a request. Web release builds use
// Release because Emscripten limits optimisation in RelWithDebInfo.
func ResolveConfiguration(release, pkg bool, p Platform) Configuration {
	switch {
	case (release || pkg) && p == PlatformWeb:
		return ConfigRelease
	case release || pkg:
		return ConfigRelWithDebInfo
	default:
		return ConfigDebug
	}
}
