package checker

import (
	"context"

	"github.com/basidwild/clawdbox/internal/adapters/cargo"              //nolint:depguard // Wired in engine wiring
	"github.com/basidwild/clawdbox/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"github.com/basidwild/clawdbox/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"github.com/basidwild/clawdbox/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/basidwild/clawdbox/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the checker Graft node.
const NodeID graft.ID = "engine.checker"

func init() {
	graft.Register(graft.Node[*Checker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cargo.NodeID,
			fs.FingerprinterNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Checker, error) {
			invoker, err := graft.Dep[ports.Invoker](ctx)
			if err != nil {
				return nil, err
			}

			fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewChecker(invoker, fingerprinter, telemetry, log), nil
		},
	})
}
