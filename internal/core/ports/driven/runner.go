package driven

import (
	"context"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
)

// ProcessRunner tracks the alternate CLI-based execution path as an opaque
// capability. The engine never shares mutable state with it; callers hold
// an OperationHandle and can only ask whether something is running or kill
// it.
type ProcessRunner interface {
	// Start spawns the external command and returns a handle for it.
	Start(ctx context.Context, name string, args, env []string) (domain.OperationHandle, error)

	// Running reports whether the process behind the handle is still alive.
	Running(handle domain.OperationHandle) bool

	// Kill terminates the process behind the handle.
	// Returns domain.ErrNotRunning if nothing is tracked for it.
	Kill(handle domain.OperationHandle) error
}
