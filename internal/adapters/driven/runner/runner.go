// Package runner implements the external process capability.
package runner

import (
	"context"
	"os/exec"
	"sync"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
	"github.com/meridian-labs/spacesync-cli/internal/core/ports/driven"
)

// Ensure Runner implements the interface.
var _ driven.ProcessRunner = (*Runner)(nil)

// Runner spawns external commands and tracks them by operation handle.
// Handles are the only shared surface; callers can ask whether a process
// is alive or kill it, nothing more.
type Runner struct {
	mu        sync.Mutex
	processes map[string]*exec.Cmd
}

// New creates a process runner.
func New() *Runner {
	return &Runner{processes: make(map[string]*exec.Cmd)}
}

// Start spawns the command and returns a handle for it.
func (r *Runner) Start(ctx context.Context, name string, args, env []string) (domain.OperationHandle, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if len(env) > 0 {
		cmd.Env = env
	}
	if err := cmd.Start(); err != nil {
		return domain.OperationHandle{}, err
	}

	handle := domain.NewOperationHandle("exec")
	r.mu.Lock()
	r.processes[handle.ID.String()] = cmd
	r.mu.Unlock()

	// Reap the process and drop the handle when it exits.
	go func() {
		_ = cmd.Wait()
		r.mu.Lock()
		delete(r.processes, handle.ID.String())
		r.mu.Unlock()
	}()

	return handle, nil
}

// Running reports whether the process behind the handle is still alive.
func (r *Runner) Running(handle domain.OperationHandle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.processes[handle.ID.String()]
	return ok
}

// Kill terminates the process behind the handle.
func (r *Runner) Kill(handle domain.OperationHandle) error {
	r.mu.Lock()
	cmd, ok := r.processes[handle.ID.String()]
	r.mu.Unlock()

	if !ok || cmd.Process == nil {
		return domain.ErrNotRunning
	}
	return cmd.Process.Kill()
}
