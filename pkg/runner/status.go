package runner

import "github.com/mrhwick/jobrunner/pkg/registry"

// Status and Exit are owned by pkg/registry, the leaf package both the
// registry and the runner depend on; these aliases let callers keep writing
// runner.Status / runner.StatusRunning / runner.Exit without reaching into
// pkg/registry directly.
type Status = registry.Status

const (
	StatusRunning = registry.StatusRunning
	StatusStopped = registry.StatusStopped
)

type Exit = registry.Exit

// ExitFromCode returns an Exit describing a normal exit code.
func ExitFromCode(code int32) Exit {
	return registry.ExitFromCode(code)
}

// ExitFromSignal returns an Exit describing a terminating signal.
func ExitFromSignal(sig int32) Exit {
	return registry.ExitFromSignal(sig)
}
