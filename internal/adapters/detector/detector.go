// Package detector reports facts about the host machine.
package detector

import (
	"os"
	"runtime"

	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// Detector implements ports.HostDetector.
type Detector struct {
	goos    string
	machine func() (string, error)
	environ func() []string
}

// New creates a Detector for the running process.
func New() *Detector {
	return &Detector{
		goos:    runtime.GOOS,
		machine: machine,
		environ: os.Environ,
	}
}

// Detect returns the host OS and architecture.
func (d *Detector) Detect() (domain.Host, error) {
	id, err := d.machine()
	if err != nil {
		return domain.Host{}, zerr.Wrap(err, "failed to read machine identifier")
	}

	arch, err := domain.ArchFromMachine(id)
	if err != nil {
		return domain.Host{}, err
	}

	return domain.Host{OS: d.goos, Arch: arch}, nil
}

// Environ returns the process environment.
func (d *Detector) Environ() domain.Environment {
	return domain.EnvironmentFromSlice(d.environ())
}
