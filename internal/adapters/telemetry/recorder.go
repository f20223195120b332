// Package telemetry records the progress of build pipeline steps with Progrock.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/kiln/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	tape   *progrock.Tape
	rec    *progrock.Recorder
	logger ports.Logger
}

// New creates a new Recorder that records onto a fresh tape and reports
// the summary to log.
func New(log ports.Logger) *Recorder {
	return NewRecorder(progrock.NewTape(), log)
}

// NewRecorder creates a new Recorder with the given tape.
func NewRecorder(tape *progrock.Tape, log ports.Logger) *Recorder {
	return &Recorder{
		tape:   tape,
		rec:    progrock.NewRecorder(tape),
		logger: log,
	}
}

// Record starts recording a new vertex. Steps are identified by name, so a
// repeated step name reuses the same vertex digest.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v}
}

// Close closes the tape and logs how many steps ran, how many were skipped
// and how long they took. A failed or interrupted step is reported by name.
func (r *Recorder) Close() error {
	if r.tape.Closed() {
		return nil
	}
	if err := r.tape.Close(); err != nil {
		return err
	}

	var ran, skipped int
	for _, v := range r.tape.Vertices() {
		switch {
		case v.Error != nil:
			r.logger.Warn(fmt.Sprintf("Step %q failed after %s", v.Name, stepDuration(v)))
		case v.Canceled:
			r.logger.Warn(fmt.Sprintf("Step %q was interrupted", v.Name))
		case v.Cached:
			skipped++
		case v.Completed != nil:
			ran++
		}
	}
	if ran+skipped == 0 {
		return nil
	}

	r.logger.Info(fmt.Sprintf("Finished %d steps in %s (%d skipped)",
		ran+skipped, r.tape.Duration().Round(time.Millisecond), skipped))
	return nil
}

func stepDuration(v *progrock.Vertex) time.Duration {
	if v.Started == nil || v.Completed == nil {
		return 0
	}
	return v.Completed.AsTime().Sub(v.Started.AsTime()).Round(time.Millisecond)
}
