package ports

import "github.com/basidwild/clawdbox/internal/core/domain"

// ManifestLoader defines the interface for loading the feature manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest from the given working directory and returns
	// the declared features plus the shared build parameters.
	Load(cwd string) (*domain.Manifest, error)
}
