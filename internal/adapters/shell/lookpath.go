package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
)

// lookPath searches for an executable in the directories named by the PATH of env.
func lookPath(file string, env domain.Environment) (string, error) {
	path := env.Path()
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		for _, candidate := range candidates(filepath.Join(dir, file), env) {
			if err := findExecutable(candidate); err == nil {
				return candidate, nil
			}
		}
	}
	return "", exec.ErrNotFound
}

// candidates returns the file names to probe for path. On Windows every
// extension from PATHEXT is tried unless path already has one.
func candidates(path string, env domain.Environment) []string {
	if runtime.GOOS != domain.OSWindows || filepath.Ext(path) != "" {
		return []string{path}
	}
	exts, ok := env.Lookup("PATHEXT")
	if !ok || exts == "" {
		exts = ".com;.exe;.bat;.cmd"
	}
	var out []string
	for _, ext := range strings.Split(exts, ";") {
		if ext != "" {
			out = append(out, path+strings.ToLower(ext))
		}
	}
	return out
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && (runtime.GOOS == domain.OSWindows || m&0o111 != 0) {
		return nil
	}
	return os.ErrPermission
}
