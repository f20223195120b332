package domain

import (
	"regexp"
	"strings"
)

const (
	// GeneratorNinja is the preferred generator when ninja is installed.
	GeneratorNinja = "Ninja"
	// GeneratorXcode is used to open the project in Xcode.
	GeneratorXcode = "Xcode"

	visualStudioPrefix = "Visual Studio"
)

var (
	defaultGeneratorLine = regexp.MustCompile(`^\* ([^=]+)`)
	visualStudioLine     = regexp.MustCompile(`^\s*(Visual Studio [0-9]+ [0-9]+)`)
	visualStudioName     = regexp.MustCompile(`Visual Studio [0-9]+ ([0-9]+)`)
)

// Generators holds what `cmake -G` reports about the available generators.
type Generators struct {
	// Default is the generator CMake marks with "*", if any.
	Default string
	// FirstVisualStudio is the first "Visual Studio <n> <year>" generator listed, if any.
	FirstVisualStudio string
}

// ParseGenerators extracts the default and first Visual Studio generator from
// the help text printed by `cmake -G`.
func ParseGenerators(output string) Generators {
	var g Generators
	for line := range strings.Lines(output) {
		line = strings.TrimRight(line, "\r\n")
		if m := defaultGeneratorLine.FindStringSubmatch(line); m != nil {
			g.Default = strings.TrimSpace(m[1])
		}
		if g.FirstVisualStudio != "" {
			continue
		}
		if m := visualStudioLine.FindStringSubmatch(line); m != nil {
			g.FirstVisualStudio = m[1]
		}
	}
	return g
}

// IsVisualStudio reports whether generator is one of the Visual Studio generators.
func IsVisualStudio(generator string) bool {
	return strings.HasPrefix(generator, visualStudioPrefix)
}

// GeneratorRequest collects the inputs of SelectGenerator.
type GeneratorRequest struct {
	// Requested is the generator named on the command line or in kiln.yaml.
	Requested string
	// IDE is set when the build should produce an IDE project.
	IDE bool
	// HostOS is runtime.GOOS of the host.
	HostOS string
	// NinjaAvailable reports whether ninja is reachable on the toolchain PATH.
	NinjaAvailable bool
	// Detected is what `cmake -G` reported.
	Detected Generators
}

// SelectGenerator decides which CMake generator to use. An empty result means
// CMake picks its own default.
func SelectGenerator(req GeneratorRequest) (string, error) {
	switch {
	case req.Requested != "":
		return req.Requested, nil
	case req.IDE && req.HostOS == OSWindows:
		if IsVisualStudio(req.Detected.Default) {
			return req.Detected.Default, nil
		}
		if req.Detected.FirstVisualStudio != "" {
			return req.Detected.FirstVisualStudio, nil
		}
		return "", ErrNoVisualStudioGenerator
	case req.IDE && req.HostOS == OSDarwin:
		return GeneratorXcode, nil
	case req.NinjaAvailable:
		return GeneratorNinja, nil
	default:
		return req.Detected.Default, nil
	}
}

// NormalizeGenerator turns a generator name into a short token usable in a
// directory name, e.g. "Visual Studio 17 2022" becomes "VS2022".
func NormalizeGenerator(generator string) string {
	name := visualStudioName.ReplaceAllString(generator, "VS$1")
	name = strings.ReplaceAll(name, " - ", "")
	return strings.ReplaceAll(name, " ", "")
}
