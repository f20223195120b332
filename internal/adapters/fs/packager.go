package fs

import (
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Packager = (*Packager)(nil)

// Packager implements ports.Packager for static hosting such as GitHub Pages.
type Packager struct{}

// NewPackager creates a new Packager.
func NewPackager() *Packager {
	return &Packager{}
}

// Package copies the web artifacts of project into outDir. The HTML page
// becomes index.html and an empty .nojekyll marker is added.
func (p *Packager) Package(buildDir, outDir string, project domain.Project) error {
	if err := os.MkdirAll(outDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactCopyFailed.Error()), "path", outDir)
	}

	for i, artifact := range project.WebArtifacts() {
		name := artifact
		if i == 0 {
			name = domain.PublishedEntryFileName
		}
		src := filepath.Join(buildDir, artifact)
		if err := copy.Copy(src, filepath.Join(outDir, name)); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrArtifactCopyFailed.Error()), "path", src)
		}
	}

	marker := filepath.Join(outDir, domain.NoJekyllFileName)
	//nolint:gosec // Path is controlled by caller
	if err := os.WriteFile(marker, nil, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactCopyFailed.Error()), "path", marker)
	}
	return nil
}
