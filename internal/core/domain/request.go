package domain

import "strings"

// BuildRequest describes one build attempt: the feature set to enable
// plus the fixed parameters shared by every check in a run. Requests
// are created per check invocation and discarded once the outcome is
// consumed.
type BuildRequest struct {
	Features []Feature
	// Workspace is the root of the source tree handed to the build tool.
	Workspace string
	// Package restricts the build to one workspace member. Empty means
	// the whole workspace.
	Package string
	// Profile selects the build profile (for example "dev" or "release").
	Profile string
	// Environment holds extra variables applied on top of the system
	// environment for the build process.
	Environment map[string]string
}

// NewBuildRequest creates a request enabling exactly one feature on
// top of the manifest's fixed build parameters.
func NewBuildRequest(feature Feature, params BuildParams) *BuildRequest {
	return &BuildRequest{
		Features:    []Feature{feature},
		Workspace:   params.Workspace,
		Package:     params.Package,
		Profile:     params.Profile,
		Environment: params.Environment,
	}
}

// FeatureList renders the feature set as the comma-separated list the
// build tool expects.
func (r *BuildRequest) FeatureList() string {
	names := make([]string, len(r.Features))
	for i, f := range r.Features {
		names[i] = f.String()
	}
	return strings.Join(names, ",")
}
