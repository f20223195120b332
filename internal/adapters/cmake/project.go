// Package cmake drives CMake and reads the game's CMakeLists.txt.
package cmake

import (
	"os"
	"path/filepath"
	"regexp"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	projectStatement    = regexp.MustCompile(`(?m)^project\(\s*(\w+)`)
	executableStatement = regexp.MustCompile(`add_executable\(\s*(\w+)`)
)

// ProjectLoader implements ports.ProjectLoader.
type ProjectLoader struct{}

// NewProjectLoader creates a new ProjectLoader.
func NewProjectLoader() *ProjectLoader {
	return &ProjectLoader{}
}

// Load reads the project name and the first executable target from
// root/CMakeLists.txt. The executable is named after the project, while
// Xcode schemes use the target name.
func (l *ProjectLoader) Load(root string) (*domain.Project, error) {
	path := filepath.Join(root, domain.BuildDescriptionFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is built from the repository root
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBuildDescriptionReadFailed.Error()), "path", path)
	}

	return ParseProject(string(data))
}

// ParseProject extracts the project from the contents of a CMakeLists.txt.
func ParseProject(cmakeLists string) (*domain.Project, error) {
	project := projectStatement.FindStringSubmatch(cmakeLists)
	if project == nil {
		return nil, domain.ErrMissingProjectStatement
	}

	target := executableStatement.FindStringSubmatch(cmakeLists)
	if target == nil {
		return nil, domain.ErrMissingExecutableStatement
	}

	return &domain.Project{Name: project[1], Target: target[1]}, nil
}
