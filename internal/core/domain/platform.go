package domain

import "go.trai.ch/zerr"

// Platform is the target the game is built for.
type Platform string

const (
	// PlatformNative builds for the host operating system.
	PlatformNative Platform = "native"
	// PlatformWeb builds WebAssembly through Emscripten.
	PlatformWeb Platform = "web"
	// PlatformIOS is reserved and not supported yet.
	PlatformIOS Platform = "ios"
	// PlatformAndroid is reserved and not supported yet.
	PlatformAndroid Platform = "android"
)

// String implements fmt.Stringer.
func (p Platform) String() string {
	return string(p)
}

// IsNative reports whether p is the host platform. The zero value counts as native.
func (p Platform) IsNative() bool {
	return p == PlatformNative || p == ""
}

// Validate fails for platforms that cannot be built.
func (p Platform) Validate() error {
	switch p {
	case PlatformNative, PlatformWeb, "":
		return nil
	default:
		return zerr.With(ErrPlatformNotSupported, "platform", string(p))
	}
}

// Host operating systems, as reported by runtime.GOOS.
const (
	OSWindows = "windows"
	OSDarwin  = "darwin"
	OSLinux   = "linux"
)

// Host describes the machine kiln runs on.
type Host struct {
	OS   string
	Arch Arch
}

// IsWindows reports whether the host runs Windows.
func (h Host) IsWindows() bool { return h.OS == OSWindows }

// IsDarwin reports whether the host runs macOS.
func (h Host) IsDarwin() bool { return h.OS == OSDarwin }
