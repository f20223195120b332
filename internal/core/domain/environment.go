package domain

import (
	"maps"
	"slices"
	"strings"
)

// Environment is a set of environment variables. Toolchain setup produces an
// Environment overlay that is passed explicitly to every subprocess instead of
// mutating the process environment.
type Environment map[string]string

// EnvironmentFromSlice parses KEY=VALUE entries as returned by os.Environ or
// `set`. Entries without "=" and Windows pseudo-variables starting with "="
// are skipped.
func EnvironmentFromSlice(entries []string) Environment {
	env := make(Environment, len(entries))
	for _, entry := range entries {
		k, v, ok := strings.Cut(entry, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = v
	}
	return env
}

// Slice returns the environment as sorted KEY=VALUE entries.
func (e Environment) Slice() []string {
	out := make([]string, 0, len(e))
	for k, v := range e {
		out = append(out, k+"="+v)
	}
	slices.Sort(out)
	return out
}

// Clone returns a copy of e.
func (e Environment) Clone() Environment {
	if e == nil {
		return Environment{}
	}
	return maps.Clone(e)
}

// Lookup returns the value of key. An exact match wins; otherwise the first
// key equal under case folding is used.
func (e Environment) Lookup(key string) (string, bool) {
	if v, ok := e[key]; ok {
		return v, true
	}
	for _, k := range slices.Sorted(maps.Keys(e)) {
		if strings.EqualFold(k, key) {
			return e[k], true
		}
	}
	return "", false
}

// Path returns the PATH variable.
func (e Environment) Path() string {
	v, _ := e.Lookup("PATH")
	return v
}

// Merge returns a new Environment with overlay applied on top of e. With
// foldCase, overlay keys replace base keys that differ only in case, which is
// how Windows treats variable names.
func (e Environment) Merge(overlay Environment, foldCase bool) Environment {
	out := e.Clone()
	for k, v := range overlay {
		if foldCase {
			for existing := range out {
				if existing != k && strings.EqualFold(existing, k) {
					delete(out, existing)
				}
			}
		}
		out[k] = v
	}
	return out
}

// Diff returns the entries of e that are missing from base or have a different value there.
func (e Environment) Diff(base Environment) Environment {
	out := Environment{}
	for k, v := range e {
		if bv, ok := base.Lookup(k); ok && bv == v {
			continue
		}
		out[k] = v
	}
	return out
}

// CachedEnvironment is a toolchain environment captured for one host/target
// pair, stored together with the PATH it was captured under.
type CachedEnvironment struct {
	OriginalPath   string      `json:"original_path"`
	NewEnvironment Environment `json:"new_environment"`
}

// Matches reports whether the entry can be reused under the given PATH.
func (c *CachedEnvironment) Matches(path string) bool {
	return c != nil && c.OriginalPath == path && len(c.NewEnvironment) > 0
}

// EnvironmentKey returns the cache key for a host/target architecture pair.
func EnvironmentKey(host, target Arch) string {
	return host.String() + "-" + target.String()
}
