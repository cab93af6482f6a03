package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/platdep/internal/adapters/config"     //nolint:depguard // Wired in app layer
	"go.trai.ch/platdep/internal/adapters/download"   //nolint:depguard // Wired in app layer
	"go.trai.ch/platdep/internal/adapters/host"       //nolint:depguard // Wired in app layer
	"go.trai.ch/platdep/internal/adapters/installer"  //nolint:depguard // Wired in app layer
	"go.trai.ch/platdep/internal/adapters/linker"     //nolint:depguard // Wired in app layer
	"go.trai.ch/platdep/internal/adapters/logger"     //nolint:depguard // Wired in app layer
	"go.trai.ch/platdep/internal/adapters/platform"   //nolint:depguard // Wired in app layer
	"go.trai.ch/platdep/internal/adapters/reporter"   //nolint:depguard // Wired in app layer
	"go.trai.ch/platdep/internal/adapters/repository" //nolint:depguard // Wired in app layer
	"go.trai.ch/platdep/internal/adapters/state"      //nolint:depguard // Wired in app layer
	"go.trai.ch/platdep/internal/adapters/telemetry"  //nolint:depguard // Wired in app layer
	"go.trai.ch/platdep/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			platform.NodeID,
			repository.NodeID,
			installer.NodeID,
			download.NodeID,
			linker.NodeID,
			state.NodeID,
			reporter.NodeID,
			telemetry.TracerNodeID,
			host.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	detector, err := graft.Dep[ports.PlatformDetector](ctx)
	if err != nil {
		return nil, err
	}
	repo, err := graft.Dep[ports.PackageRepository](ctx)
	if err != nil {
		return nil, err
	}
	inst, err := graft.Dep[ports.Installer](ctx)
	if err != nil {
		return nil, err
	}
	dl, err := graft.Dep[ports.Downloader](ctx)
	if err != nil {
		return nil, err
	}
	link, err := graft.Dep[ports.RequirementLinker](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.StateStore](ctx)
	if err != nil {
		return nil, err
	}
	rep, err := graft.Dep[ports.Reporter](ctx)
	if err != nil {
		return nil, err
	}
	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}
	hooks, err := graft.Dep[ports.Hooks](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, detector, repo, inst, dl, link, store, rep, tracer, hooks, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
