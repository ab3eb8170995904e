package domain

// BuildOutcome is the binary result of one build attempt. It is
// produced by the invoker and consumed immediately by the check;
// outcomes are never persisted.
type BuildOutcome struct {
	Success bool
	// Diagnostics carries the build tool's output verbatim. Populated
	// on failure when the tool produced any; may be empty on success.
	Diagnostics string
}

// OutcomeSuccess is the outcome of a clean build.
var OutcomeSuccess = BuildOutcome{Success: true}

// Failure creates a failure outcome carrying the given diagnostic text.
func Failure(diagnostics string) BuildOutcome {
	return BuildOutcome{Diagnostics: diagnostics}
}
