package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/kiln/internal/adapters/cmake"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/detector"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/emsdk"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/fs"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/ide"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/msvc"      //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/renderdoc" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/shell"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/adapters/webserver" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/kiln/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			shell.NodeID,
			detector.NodeID,
			cmake.ProjectLoaderNodeID,
			config.NodeID,
			msvc.NodeID,
			cmake.BuildSystemNodeID,
			emsdk.NodeID,
			fs.SyncerNodeID,
			webserver.NodeID,
			ide.NodeID,
			renderdoc.NodeID,
			fs.PackagerNodeID,
			telemetry.NodeID,
		},
		Run: runOrchestratorNode,
	})
}

//nolint:cyclop // one lookup per port
func runOrchestratorNode(ctx context.Context) (*Orchestrator, error) {
	var (
		p   Ports
		err error
	)
	if p.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if p.Runner, err = graft.Dep[ports.Runner](ctx); err != nil {
		return nil, err
	}
	if p.Host, err = graft.Dep[ports.HostDetector](ctx); err != nil {
		return nil, err
	}
	if p.Projects, err = graft.Dep[ports.ProjectLoader](ctx); err != nil {
		return nil, err
	}
	if p.Settings, err = graft.Dep[ports.SettingsLoader](ctx); err != nil {
		return nil, err
	}
	if p.Toolchain, err = graft.Dep[ports.EnvironmentFactory](ctx); err != nil {
		return nil, err
	}
	if p.BuildSystem, err = graft.Dep[ports.BuildSystem](ctx); err != nil {
		return nil, err
	}
	if p.SDK, err = graft.Dep[ports.SDKManager](ctx); err != nil {
		return nil, err
	}
	if p.Artifacts, err = graft.Dep[ports.ArtifactSyncer](ctx); err != nil {
		return nil, err
	}
	if p.WebServer, err = graft.Dep[ports.WebServer](ctx); err != nil {
		return nil, err
	}
	if p.IDE, err = graft.Dep[ports.IDELauncher](ctx); err != nil {
		return nil, err
	}
	if p.Debugger, err = graft.Dep[ports.Debugger](ctx); err != nil {
		return nil, err
	}
	if p.Packager, err = graft.Dep[ports.Packager](ctx); err != nil {
		return nil, err
	}
	if p.Telemetry, err = graft.Dep[ports.Telemetry](ctx); err != nil {
		return nil, err
	}
	return New(p), nil
}
