package app

import (
	"context"

	"github.com/basidwild/clawdbox/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"github.com/basidwild/clawdbox/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"github.com/basidwild/clawdbox/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"github.com/basidwild/clawdbox/internal/core/ports"
	"github.com/basidwild/clawdbox/internal/engine/checker"
	"github.com/grindlemire/graft"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			checker.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}

			chk, err := graft.Dep[*checker.Checker](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, chk), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.ManifestLoader](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:       application,
				Logger:    log,
				Loader:    loader,
				Telemetry: telemetry,
			}, nil
		},
	})
}
