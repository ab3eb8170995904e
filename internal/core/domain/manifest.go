package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// BuildParams are the fixed build parameters shared by every check in
// a run: where the tree lives and how the build tool is steered.
// Feature selection is deliberately not part of BuildParams; each
// check adds exactly one feature on top.
type BuildParams struct {
	Workspace   string
	Package     string
	Profile     string
	Environment map[string]string
}

// Manifest is the declarative list of optional capabilities to verify
// plus the build parameters they share.
type Manifest struct {
	Params   BuildParams
	features []Feature
}

// NewManifest creates a manifest for the given parameters and features.
// The feature order of the manifest is preserved; checks are
// independent, so order only affects presentation.
func NewManifest(params BuildParams, features []Feature) (*Manifest, error) {
	if len(features) == 0 {
		return nil, ErrNoFeaturesDefined
	}

	seen := make(map[Feature]bool, len(features))
	for _, f := range features {
		if f.IsZero() {
			return nil, ErrEmptyFeatureName
		}
		if seen[f] {
			return nil, ErrDuplicateFeature
		}
		seen[f] = true
	}

	return &Manifest{
		Params:   params,
		features: slices.Clone(features),
	}, nil
}

// Features returns the manifest's features in declaration order.
func (m *Manifest) Features() []Feature {
	return slices.Clone(m.features)
}

// Has reports whether the manifest declares the given feature.
func (m *Manifest) Has(f Feature) bool {
	return slices.Contains(m.features, f)
}

// Resolve maps requested capability names to manifest features. An
// empty request selects every declared feature.
func (m *Manifest) Resolve(names []string) ([]Feature, error) {
	if len(names) == 0 {
		return m.Features(), nil
	}

	features := make([]Feature, 0, len(names))
	for _, name := range names {
		f := NewFeature(name)
		if !m.Has(f) {
			return nil, zerr.With(zerr.Wrap(ErrUnknownFeature, "not declared in manifest"), "feature", name)
		}
		features = append(features, f)
	}
	return features, nil
}
