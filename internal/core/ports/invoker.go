// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/basidwild/clawdbox/internal/core/domain"
)

// Invoker defines the interface for performing one build attempt.
//
//go:generate go run go.uber.org/mock/mockgen -source=invoker.go -destination=mocks/mock_invoker.go -package=mocks
type Invoker interface {
	// Build compiles the workspace with the request's feature set enabled
	// and blocks until the build tool finishes.
	//
	// Every build-level cause (compile error, missing toolchain, timeout)
	// collapses into a failure outcome carrying the tool's diagnostic
	// output. The error return is reserved for faults outside the build
	// contract, such as a cancelled context; those propagate unchanged.
	Build(ctx context.Context, req *domain.BuildRequest) (domain.BuildOutcome, error)
}
