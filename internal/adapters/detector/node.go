package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the host detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[ports.HostDetector]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HostDetector, error) {
			return New(), nil
		},
	})
}
