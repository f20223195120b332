package ports

// ArtifactSyncer copies build outputs out of the build directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifacts.go -destination=mocks/mock_artifacts.go -package=mocks
type ArtifactSyncer interface {
	// CopyIfChanged copies src to dst unless dst already has the same
	// content. It reports whether dst was written. A missing src is not an
	// error and reports false.
	CopyIfChanged(src, dst string) (bool, error)

	// FilterLines writes the lines of src containing marker to dst unless dst
	// already holds exactly those lines. It reports whether dst was written.
	// A missing src is not an error and reports false.
	FilterLines(src, dst, marker string) (bool, error)
}
