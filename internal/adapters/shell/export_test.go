package shell

import (
	"io"

	"go.trai.ch/kiln/internal/core/domain"
)

// NewRunnerForTest creates a Runner with explicit streams and base environment.
func NewRunnerForTest(stdout, stderr io.Writer, base domain.Environment) *Runner {
	return &Runner{
		stdout:  stdout,
		stderr:  stderr,
		environ: base.Slice,
	}
}
