// Package checker implements the feature build check engine.
package checker

import (
	"context"
	"errors"
	"sync"

	"github.com/basidwild/clawdbox/internal/core/domain"
	"github.com/basidwild/clawdbox/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// CheckStatus represents the status of one feature build check.
type CheckStatus string

const (
	// StatusPending indicates the check is waiting to be executed.
	StatusPending CheckStatus = "Pending"
	// StatusRunning indicates the check's build is in flight.
	StatusRunning CheckStatus = "Running"
	// StatusPassed indicates the feature built cleanly.
	StatusPassed CheckStatus = "Passed"
	// StatusFailed indicates the build reported a failure.
	StatusFailed CheckStatus = "Failed"
)

// Checker runs feature build checks. Each check asserts that enabling
// one optional capability does not break compilation; checks share no
// mutable state and are independent of each other.
type Checker struct {
	invoker       ports.Invoker
	fingerprinter ports.Fingerprinter
	telemetry     ports.Telemetry
	logger        ports.Logger

	mu     sync.RWMutex
	status map[domain.Feature]CheckStatus
}

// NewChecker creates a new Checker.
func NewChecker(
	invoker ports.Invoker,
	fingerprinter ports.Fingerprinter,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Checker {
	return &Checker{
		invoker:       invoker,
		fingerprinter: fingerprinter,
		telemetry:     telemetry,
		logger:        logger,
		status:        make(map[domain.Feature]CheckStatus),
	}
}

// Status returns the recorded status of a feature's check.
func (c *Checker) Status(feature domain.Feature) CheckStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status[feature]
}

func (c *Checker) setStatus(feature domain.Feature, status CheckStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status[feature] = status
}

// Run executes one feature build check per requested feature. Checks
// run in any order, at most parallelism at a time; a failing check
// never prevents the remaining ones from running. The joined error of
// all failed checks is returned.
func (c *Checker) Run(ctx context.Context, params domain.BuildParams, features []domain.Feature, parallelism int) error {
	if parallelism < 1 {
		parallelism = 1
	}

	c.mu.Lock()
	c.status = make(map[domain.Feature]CheckStatus, len(features))
	for _, f := range features {
		c.status[f] = StatusPending
	}
	c.mu.Unlock()

	// The fingerprint ties this run's outcomes to an exact source tree;
	// two runs over the same fingerprint must agree. Fingerprint trouble
	// is reported but never blocks the checks themselves.
	fingerprint, err := c.fingerprinter.Fingerprint(params.Workspace)
	if err != nil {
		c.logger.Error(zerr.Wrap(err, "failed to fingerprint workspace"))
		fingerprint = ""
	} else {
		c.logger.Info("workspace fingerprint " + fingerprint)
	}

	errs := make([]error, len(features))
	var g errgroup.Group
	g.SetLimit(parallelism)
	for i, feature := range features {
		g.Go(func() error {
			errs[i] = c.checkFeature(ctx, feature, params, fingerprint)
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

// checkFeature asserts that enabling a single optional capability does
// not break compilation: it builds a request containing exactly that
// feature, submits it to the invoker, and blocks until the outcome is
// back. A failure outcome surfaces the tool's diagnostics; there is no
// retry, repeating an identical build cannot change its result.
func (c *Checker) checkFeature(ctx context.Context, feature domain.Feature, params domain.BuildParams, fingerprint string) error {
	c.setStatus(feature, StatusRunning)

	vctx, vertex := c.telemetry.Record(ctx, "build features="+feature.String())

	outcome, err := c.invoker.Build(vctx, domain.NewBuildRequest(feature, params))
	if err != nil {
		// Invoker fault outside the build contract; propagate unchanged.
		c.setStatus(feature, StatusFailed)
		vertex.Complete(err)
		return zerr.With(zerr.Wrap(err, "build invoker fault"), "feature", feature.String())
	}

	if !outcome.Success {
		c.setStatus(feature, StatusFailed)
		checkErr := zerr.With(zerr.Wrap(domain.ErrBuildFailed, "feature build check failed"), "feature", feature.String())
		if fingerprint != "" {
			checkErr = zerr.With(checkErr, "fingerprint", fingerprint)
		}
		if outcome.Diagnostics != "" {
			checkErr = zerr.With(checkErr, "diagnostics", outcome.Diagnostics)
		}
		vertex.Complete(checkErr)
		c.logger.Error(checkErr)
		return checkErr
	}

	c.setStatus(feature, StatusPassed)
	vertex.Complete(nil)
	c.logger.Info("feature " + feature.String() + " builds cleanly")
	return nil
}
