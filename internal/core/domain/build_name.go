package domain

import "strings"

// BuildName derives the build directory name from the resolved build
// parameters. Native builds are prefixed with the target architecture, all
// other platforms with the platform name.
func BuildName(cfg Configuration, platform Platform, arch Arch, generator string) string {
	prefix := platform.String()
	if platform.IsNative() {
		prefix = arch.String()
	}

	suffix := cfg.String()
	if generator != "" {
		suffix += "-" + NormalizeGenerator(generator)
	}

	return prefix + "-" + strings.ToLower(suffix)
}
