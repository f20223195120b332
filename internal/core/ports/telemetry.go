package ports

import "context"

// Telemetry records the progress of pipeline steps.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a new step named name.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close ends the recording and reports a summary of the recorded steps.
	Close() error
}

// Vertex is a single recorded step.
type Vertex interface {
	// Complete marks the step as finished, failed when err is non-nil.
	Complete(err error)
	// Cached marks the step as satisfied without doing work.
	Cached()
}
