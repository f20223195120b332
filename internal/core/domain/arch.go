package domain

import (
	"go.trai.ch/zerr"
)

// Arch is a CPU architecture the game can be built for.
type Arch string

const (
	// ArchX64 is 64-bit x86.
	ArchX64 Arch = "x64"
	// ArchX86 is 32-bit x86.
	ArchX86 Arch = "x86"
	// ArchARM64 is 64-bit ARM.
	ArchARM64 Arch = "arm64"
)

// Archs lists the supported architectures in the order they are presented to users.
var Archs = []Arch{ArchX64, ArchX86, ArchARM64}

var machineArchs = map[string]Arch{
	"AMD64":      ArchX64,
	"EM64T":      ArchX64,
	"x64":        ArchX64,
	"x86_64":     ArchX64,
	"x86":        ArchX86,
	"i686":       ArchX86,
	"i386":       ArchX86,
	"aarch64":    ArchARM64,
	"aarch64_be": ArchARM64,
	"arm64":      ArchARM64,
	"ARM64":      ArchARM64,
}

// ArchFromMachine maps a host machine identifier (as reported by uname or
// PROCESSOR_ARCHITECTURE) to an Arch.
func ArchFromMachine(machine string) (Arch, error) {
	if a, ok := machineArchs[machine]; ok {
		return a, nil
	}
	return "", zerr.With(ErrUnknownArchitecture, "machine", machine)
}

// ParseArch validates a user supplied architecture name.
func ParseArch(s string) (Arch, error) {
	for _, a := range Archs {
		if string(a) == s {
			return a, nil
		}
	}
	return "", zerr.With(ErrInvalidArchitecture, "arch", s)
}

// String implements fmt.Stringer.
func (a Arch) String() string {
	return string(a)
}

// VSDevCmd returns the architecture name understood by vsdevcmd.bat.
func (a Arch) VSDevCmd() string {
	if a == ArchX64 {
		return "amd64"
	}
	return string(a)
}

// CMakePlatform returns the value passed to CMake's -A option for Visual Studio generators.
func (a Arch) CMakePlatform() string {
	switch a {
	case ArchX86:
		return "Win32"
	case ArchARM64:
		return "ARM64"
	default:
		return "x64"
	}
}
