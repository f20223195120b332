package ports

import "go.trai.ch/kiln/internal/core/domain"

// HostDetector reports facts about the machine kiln runs on.
//
//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type HostDetector interface {
	// Detect returns the host OS and CPU architecture. An unrecognised
	// machine identifier is an error.
	Detect() (domain.Host, error)

	// Environ returns the current process environment.
	Environ() domain.Environment
}
