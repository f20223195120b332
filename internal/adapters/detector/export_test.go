package detector

// NewForTest creates a Detector with injected host facts.
func NewForTest(goos string, machineFn func() (string, error), environ func() []string) *Detector {
	return &Detector{goos: goos, machine: machineFn, environ: environ}
}
