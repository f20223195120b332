// Package fs copies build outputs out of the build directory.
package fs

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactSyncer = (*Syncer)(nil)

// Syncer implements ports.ArtifactSyncer. Destinations are compared by
// content hash and left untouched when unchanged.
type Syncer struct{}

// NewSyncer creates a new Syncer.
func NewSyncer() *Syncer {
	return &Syncer{}
}

// CopyIfChanged copies src to dst unless both have the same content.
func (s *Syncer) CopyIfChanged(src, dst string) (bool, error) {
	srcHash, ok, err := fileHash(src)
	if err != nil || !ok {
		return false, err
	}

	dstHash, ok, err := fileHash(dst)
	if err != nil {
		return false, err
	}
	if ok && dstHash == srcHash {
		return false, nil
	}

	data, err := os.ReadFile(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrArtifactCopyFailed.Error()), "path", src)
	}
	return true, write(dst, data)
}

// FilterLines writes the lines of src containing marker to dst unless dst
// already holds exactly those lines.
func (s *Syncer) FilterLines(src, dst, marker string) (bool, error) {
	f, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrArtifactCopyFailed.Error()), "path", src)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	var filtered bytes.Buffer
	reader := bufio.NewReader(f)
	for {
		line, err := reader.ReadString('\n')
		if strings.Contains(line, marker) {
			filtered.WriteString(line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return false, zerr.With(zerr.Wrap(err, domain.ErrArtifactCopyFailed.Error()), "path", src)
		}
	}

	dstHash, ok, err := fileHash(dst)
	if err != nil {
		return false, err
	}
	if ok && dstHash == xxhash.Sum64(filtered.Bytes()) {
		return false, nil
	}
	return true, write(dst, filtered.Bytes())
}

func write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactCopyFailed.Error()), "path", path)
	}
	//nolint:gosec // Path is controlled by caller
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactCopyFailed.Error()), "path", path)
	}
	return nil
}
