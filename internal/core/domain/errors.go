package domain

import "go.trai.ch/zerr"

var (
	// ErrBuildFailed is returned when the build tool reported a non-success
	// outcome for a feature build. All build-level causes collapse into it.
	ErrBuildFailed = zerr.New("build failed")

	// ErrUnknownFeature is returned when a requested capability is not declared
	// in the manifest.
	ErrUnknownFeature = zerr.New("unknown feature")

	// ErrDuplicateFeature is returned when the manifest declares the same
	// capability twice.
	ErrDuplicateFeature = zerr.New("duplicate feature")

	// ErrEmptyFeatureName is returned when the manifest declares a feature
	// without a name.
	ErrEmptyFeatureName = zerr.New("empty feature name")

	// ErrNoFeaturesDefined is returned when the manifest declares no features
	// at all.
	ErrNoFeaturesDefined = zerr.New("no features defined")
)
