package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/core/ports"
)

const (
	// SyncerNodeID is the unique identifier for the artifact syncer Graft node.
	SyncerNodeID graft.ID = "adapter.fs.syncer"
	// PackagerNodeID is the unique identifier for the packager Graft node.
	PackagerNodeID graft.ID = "adapter.fs.packager"
)

func init() {
	graft.Register(graft.Node[ports.ArtifactSyncer]{
		ID:        SyncerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArtifactSyncer, error) {
			return NewSyncer(), nil
		},
	})

	graft.Register(graft.Node[ports.Packager]{
		ID:        PackagerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Packager, error) {
			return NewPackager(), nil
		},
	})
}
