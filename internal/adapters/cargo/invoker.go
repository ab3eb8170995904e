// Package cargo provides the Cargo build invoker adapter.
package cargo

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/basidwild/clawdbox/internal/core/domain"
	"github.com/basidwild/clawdbox/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultTool is the build tool binary invoked for feature builds.
const DefaultTool = "cargo"

var _ ports.Invoker = (*Invoker)(nil)

// Invoker implements ports.Invoker by shelling out to Cargo.
type Invoker struct {
	logger ports.Logger
	tool   string
}

// NewInvoker creates an Invoker using the default build tool.
func NewInvoker(logger ports.Logger) *Invoker {
	return NewInvokerWithTool(logger, DefaultTool)
}

// NewInvokerWithTool creates an Invoker running the given tool binary.
// Tests point this at a stub script instead of a real toolchain.
func NewInvokerWithTool(logger ports.Logger, tool string) *Invoker {
	return &Invoker{
		logger: logger,
		tool:   tool,
	}
}

// Build runs one feature build and blocks until the tool finishes.
//
// Compile errors, a missing toolchain and build timeouts all collapse
// into a failure outcome carrying the tool's combined output; the check
// layer has no recovery action that would benefit from telling them
// apart. Only an outright context cancellation propagates as an error.
func (i *Invoker) Build(ctx context.Context, req *domain.BuildRequest) (domain.BuildOutcome, error) {
	args := buildArgs(req)

	cmd := exec.CommandContext(ctx, i.tool, args...) //nolint:gosec // tool and args come from the manifest
	if req.Workspace != "" {
		cmd.Dir = req.Workspace
	}
	cmd.Env = resolveEnvironment(os.Environ(), req.Environment)

	// Combined output is the diagnostic text of the outcome. When a
	// telemetry vertex rides on the context, the streams are mirrored to
	// it so progress renders live.
	var diag bytes.Buffer
	var stdout, stderr io.Writer = &diag, &diag
	if v, ok := ports.VertexFromContext(ctx); ok {
		stdout = io.MultiWriter(&diag, v.Stdout())
		stderr = io.MultiWriter(&diag, v.Stderr())
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	i.logger.Info(i.tool + " " + strings.Join(args, " "))

	err := cmd.Run()
	if err == nil {
		return domain.OutcomeSuccess, nil
	}

	if errors.Is(ctx.Err(), context.Canceled) {
		return domain.BuildOutcome{}, zerr.Wrap(ctx.Err(), "build cancelled")
	}

	// Capture the exit code for the error report when there is one.
	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}
	i.logger.Error(zerr.With(zerr.Wrap(err, "build tool reported failure"), "exit_code", exitCode))

	diagnostics := diag.String()
	if diagnostics == "" {
		// Start failures (tool not found, workspace missing) produce no
		// tool output; the exec error itself is the diagnostic then.
		diagnostics = err.Error()
	}
	return domain.Failure(diagnostics), nil
}

// buildArgs constructs the Cargo argument list for the request.
func buildArgs(req *domain.BuildRequest) []string {
	args := []string{"build"}

	if list := req.FeatureList(); list != "" {
		args = append(args, "--features", list)
	}
	if req.Package != "" {
		args = append(args, "-p", req.Package)
	}
	switch req.Profile {
	case "", "dev":
		// Cargo's default profile.
	case "release":
		args = append(args, "--release")
	default:
		args = append(args, "--profile", req.Profile)
	}

	return args
}

// resolveEnvironment merges the request environment over the system one.
func resolveEnvironment(sysEnv []string, reqEnv map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(reqEnv))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range reqEnv {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}
