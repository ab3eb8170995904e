// Package app implements the application layer for featcheck.
package app

import (
	"context"
	"runtime"

	"github.com/basidwild/clawdbox/internal/core/domain"
	"github.com/basidwild/clawdbox/internal/core/ports"
	"github.com/basidwild/clawdbox/internal/engine/checker"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader  ports.ManifestLoader
	checker *checker.Checker
}

// New creates a new App instance.
func New(loader ports.ManifestLoader, chk *checker.Checker) *App {
	return &App{
		loader:  loader,
		checker: chk,
	}
}

// Run executes the feature build checks for the requested capability
// names. An empty request checks every feature the manifest declares.
func (a *App) Run(ctx context.Context, featureNames []string, jobs int) error {
	manifest, err := a.loader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	features, err := manifest.Resolve(featureNames)
	if err != nil {
		return err
	}

	if jobs < 1 {
		jobs = runtime.NumCPU()
	}

	if err := a.checker.Run(ctx, manifest.Params, features, jobs); err != nil {
		return zerr.Wrap(err, "feature check run failed")
	}

	return nil
}

// Features returns the capabilities the manifest declares, in
// declaration order.
func (a *App) Features() ([]domain.Feature, error) {
	manifest, err := a.loader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load manifest")
	}
	return manifest.Features(), nil
}

// Components bundles the objects main needs after wiring.
type Components struct {
	App       *App
	Logger    ports.Logger
	Loader    ports.ManifestLoader
	Telemetry ports.Telemetry
}
