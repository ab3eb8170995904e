// Package config provides the feature manifest loader for featcheck.
package config

import (
	"os"
	"path/filepath"

	"github.com/basidwild/clawdbox/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the manifest file looked up in the working directory.
const DefaultFilename = "featcheck.yaml"

// FileManifestLoader implements ports.ManifestLoader using a YAML file.
type FileManifestLoader struct {
	Filename string
}

// Load reads the manifest from the given working directory.
func (l *FileManifestLoader) Load(cwd string) (*domain.Manifest, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}
	return Load(filepath.Join(cwd, name))
}

// Load reads a manifest file from the given path and returns a domain.Manifest.
func Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read manifest file")
	}

	var mf Manifestfile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, zerr.Wrap(err, "failed to parse manifest file")
	}

	if mf.Version != "" && mf.Version != "1" {
		return nil, zerr.With(zerr.New("unsupported manifest version"), "version", mf.Version)
	}

	features := make([]domain.Feature, 0, len(mf.Features))
	for _, name := range mf.Features {
		// "all" is the implicit selector for the whole feature list.
		if name == "all" {
			return nil, zerr.With(zerr.New("feature name 'all' is reserved"), "feature", name)
		}
		features = append(features, domain.NewFeature(name))
	}

	params := domain.BuildParams{
		Workspace:   mf.Build.Workspace,
		Package:     mf.Build.Package,
		Profile:     mf.Build.Profile,
		Environment: mf.Build.Environment,
	}
	if params.Workspace == "" {
		params.Workspace = "."
	}

	manifest, err := domain.NewManifest(params, features)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid manifest"), "path", path)
	}
	return manifest, nil
}
