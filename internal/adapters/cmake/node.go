package cmake

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/logger"
	"go.trai.ch/kiln/internal/adapters/shell"
	"go.trai.ch/kiln/internal/core/ports"
)

const (
	// ProjectLoaderNodeID is the unique identifier for the project loader Graft node.
	ProjectLoaderNodeID graft.ID = "adapter.project_loader"
	// BuildSystemNodeID is the unique identifier for the build system Graft node.
	BuildSystemNodeID graft.ID = "adapter.build_system"
)

func init() {
	graft.Register(graft.Node[ports.ProjectLoader]{
		ID:        ProjectLoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectLoader, error) {
			return NewProjectLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.BuildSystem]{
		ID:        BuildSystemNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.BuildSystem, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBuildSystem(runner, log), nil
		},
	})
}
