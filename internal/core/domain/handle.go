package domain

import (
	"time"

	"github.com/google/uuid"
)

// OperationHandle identifies one logical operation (a copy run, a sync run
// or an externally spawned process). Handles replace module-level "current
// operation" state so that concurrent operations can be reasoned about
// independently.
type OperationHandle struct {
	ID        uuid.UUID
	Kind      string
	StartedAt time.Time
}

// NewOperationHandle mints a handle for an operation of the given kind.
func NewOperationHandle(kind string) OperationHandle {
	return OperationHandle{
		ID:        uuid.New(),
		Kind:      kind,
		StartedAt: time.Now(),
	}
}
