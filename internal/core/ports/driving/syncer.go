package driving

import (
	"context"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
)

// SyncProgressFunc receives streamed events during one sync invocation.
// A nil callback is allowed.
type SyncProgressFunc func(domain.SyncProgressEvent)

// SyncOptions are the policy toggles shared by every resource kind.
type SyncOptions struct {
	// DryRun suppresses remote writes; every write becomes a skip.
	DryRun bool
}

// ComponentSyncOptions extends SyncOptions for component sync.
type ComponentSyncOptions struct {
	SyncOptions

	// PushPresets includes field presets in create/update payloads.
	PushPresets bool

	// SourceOfTruth updates remote components even when they compare
	// equivalent, making the local definition authoritative.
	SourceOfTruth bool
}

// DatasourceSyncOptions extends SyncOptions for datasource sync.
type DatasourceSyncOptions struct {
	SyncOptions

	// SyncEntries also reconciles the datasource's name/value entries.
	SyncEntries bool
}

// Syncer classifies local resource definitions against remote space state
// and applies them as create/update/skip with per-item error tolerance.
type Syncer interface {
	SyncComponents(ctx context.Context, spaceID int64, items []domain.Component, opts ComponentSyncOptions, onProgress SyncProgressFunc) (domain.SyncOutcome, error)
	SyncDatasources(ctx context.Context, spaceID int64, items []domain.Datasource, opts DatasourceSyncOptions, onProgress SyncProgressFunc) (domain.SyncOutcome, error)
	SyncRoles(ctx context.Context, spaceID int64, items []domain.Role, opts SyncOptions, onProgress SyncProgressFunc) (domain.SyncOutcome, error)
	SyncPlugins(ctx context.Context, spaceID int64, items []domain.Plugin, opts SyncOptions, onProgress SyncProgressFunc) (domain.SyncOutcome, error)
}
