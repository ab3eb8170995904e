package cargo

import (
	"context"

	"github.com/basidwild/clawdbox/internal/adapters/logger"
	"github.com/basidwild/clawdbox/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the invoker adapter Graft node.
const NodeID graft.ID = "adapter.invoker"

func init() {
	graft.Register(graft.Node[ports.Invoker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Invoker, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInvoker(log), nil
		},
	})
}
