package domain

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Command is a subprocess invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env is applied on top of the process environment.
	Env Environment
}

// String renders the command line for log output. Arguments containing
// spaces are wrapped in single quotes.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, arg := range append([]string{c.Name}, c.Args...) {
		if strings.Contains(arg, " ") {
			arg = "'" + arg + "'"
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// Variable is a CMake cache entry passed as -D<Name>=<Value>.
type Variable struct {
	Name  string
	Value string
}

// Variables is an ordered list of CMake variables.
type Variables []Variable

// ParseVariables parses VAR=VALUE entries, keeping their order. Everything
// after the first "=" is the value.
func ParseVariables(entries []string) (Variables, error) {
	vars := make(Variables, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			return nil, zerr.With(ErrInvalidVariable, "variable", entry)
		}
		if _, dup := seen[name]; dup {
			return nil, zerr.With(ErrDuplicateVariable, "variable", name)
		}
		seen[name] = struct{}{}
		vars = append(vars, Variable{Name: name, Value: value})
	}
	return vars, nil
}

// WithDefaults prepends defaults (sorted by name) that vs does not already set.
func (vs Variables) WithDefaults(defaults map[string]string) Variables {
	if len(defaults) == 0 {
		return vs
	}
	names := make([]string, 0, len(defaults))
	for name := range defaults {
		if !slices.ContainsFunc(vs, func(v Variable) bool { return v.Name == name }) {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	out := make(Variables, 0, len(names)+len(vs))
	for _, name := range names {
		out = append(out, Variable{Name: name, Value: defaults[name]})
	}
	return append(out, vs...)
}

// Args renders the variables as -D arguments.
func (vs Variables) Args() []string {
	args := make([]string, 0, len(vs))
	for _, v := range vs {
		args = append(args, "-D"+v.Name+"="+v.Value)
	}
	return args
}

// ConfigureSpec describes a CMake configure run.
type ConfigureSpec struct {
	Configuration Configuration
	Generator     string
	Arch          Arch
	Platform      Platform
	IDE           bool
	// ToolchainFile is set for cross builds (Emscripten).
	ToolchainFile string
	Variables     Variables
	// ChecksCache is the path of an existing compiler-checks cache. When empty,
	// ChecksModuleDir is put on CMAKE_MODULE_PATH so the cache gets generated.
	ChecksCache     string
	ChecksModuleDir string
	// SourceDir is the repository root relative to BuildDir.
	SourceDir string
	BuildDir  string
}

// Args returns the cmake arguments for the configure run.
func (s ConfigureSpec) Args() []string {
	args := []string{"-DCMAKE_BUILD_TYPE=" + s.Configuration.String()}
	if s.Generator != "" {
		args = append(args, "-G", s.Generator)
		if IsVisualStudio(s.Generator) && s.Arch != "" {
			args = append(args, "-A", s.Arch.CMakePlatform())
		}
	}
	if s.Platform.IsNative() && !s.IDE {
		args = append(args, "-DCMAKE_EXPORT_COMPILE_COMMANDS=1")
	}
	if s.ToolchainFile != "" {
		args = append(args, "-DCMAKE_TOOLCHAIN_FILE="+s.ToolchainFile)
	}
	args = append(args, s.Variables.Args()...)
	if s.ChecksCache != "" {
		args = append(args, "-C", s.ChecksCache)
	} else if s.ChecksModuleDir != "" {
		args = append(args, "-DCMAKE_MODULE_PATH="+filepath.ToSlash(s.ChecksModuleDir))
	}
	return append(args, s.SourceDir)
}

// BuildSpec describes a CMake build run.
type BuildSpec struct {
	Configuration Configuration
	BuildDir      string
}

// Args returns the cmake arguments for the build run.
func (s BuildSpec) Args() []string {
	return []string{"--build", ".", "--config", s.Configuration.String()}
}

// ShouldSkipConfigure reports whether the configure run can be skipped because
// the Ninja build script regenerates itself.
func ShouldSkipConfigure(reconfigure bool, generator string, buildScriptExists bool) bool {
	return !reconfigure && generator == GeneratorNinja && buildScriptExists
}

// ExecutableCandidates lists where the game executable may be found, in
// priority order: multi-config generators on Windows, multi-config on Unix,
// single-config on Windows, single-config on Unix.
func ExecutableCandidates(buildDir string, cfg Configuration, project string) []string {
	return []string{
		filepath.Join(buildDir, cfg.String(), project+".exe"),
		filepath.Join(buildDir, cfg.String(), project),
		filepath.Join(buildDir, project+".exe"),
		filepath.Join(buildDir, project),
	}
}

// FindExecutable returns the first candidate that is a regular file.
func FindExecutable(buildDir string, cfg Configuration, project string) (string, error) {
	for _, candidate := range ExecutableCandidates(buildDir, cfg, project) {
		if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
			return candidate, nil
		}
	}
	return "", zerr.With(ErrExecutableNotFound, "build_dir", buildDir)
}

// FetchSpec describes the build of the external dependency project.
type FetchSpec struct {
	// Dir is the build directory of the dependency project.
	Dir string
	// Source is the external/ directory holding its CMakeLists.txt.
	Source string
	// Generator is used when the project has to be configured first.
	Generator string
}

// ConfigureArgs returns the cmake arguments that configure the dependency project.
func (s FetchSpec) ConfigureArgs() []string {
	var args []string
	if s.Generator != "" {
		args = append(args, "-G", s.Generator)
	}
	return append(args, s.Source)
}

// BuildArgs returns the cmake arguments that build the dependency project.
func (s FetchSpec) BuildArgs() []string {
	return []string{"--build", "."}
}
