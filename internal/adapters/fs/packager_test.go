package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kiln/internal/adapters/fs"
	"go.trai.ch/kiln/internal/core/domain"
)

func TestPackager_Package(t *testing.T) {
	dir := t.TempDir()
	buildDir := filepath.Join(dir, "cache", "web-release-ninja")
	outDir := filepath.Join(dir, "docs")
	project := domain.Project{Name: "Ingot", Target: "Main"}

	for _, artifact := range project.WebArtifacts() {
		writeFile(t, filepath.Join(buildDir, artifact), "content of "+artifact)
	}

	require.NoError(t, fs.NewPackager().Package(buildDir, outDir, project))

	assert.Equal(t, "content of Ingot.html", readFile(t, filepath.Join(outDir, "index.html")))
	assert.Equal(t, "content of Ingot.js", readFile(t, filepath.Join(outDir, "Ingot.js")))
	assert.Equal(t, "content of Ingot.wasm", readFile(t, filepath.Join(outDir, "Ingot.wasm")))
	assert.Equal(t, "content of Ingot.data", readFile(t, filepath.Join(outDir, "Ingot.data")))
	assert.Empty(t, readFile(t, filepath.Join(outDir, ".nojekyll")))
	assert.NoFileExists(t, filepath.Join(outDir, "Ingot.html"))
}

func TestPackager_Package_MissingArtifact(t *testing.T) {
	dir := t.TempDir()
	buildDir := filepath.Join(dir, "build")
	writeFile(t, filepath.Join(buildDir, "Ingot.html"), "<html>")

	err := fs.NewPackager().Package(buildDir, filepath.Join(dir, "docs"), domain.Project{Name: "Ingot"})
	require.ErrorContains(t, err, domain.ErrArtifactCopyFailed.Error())
}
