package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
)

func TestRenderCopyProgress(t *testing.T) {
	tests := []struct {
		name     string
		progress domain.CopyProgress
		contains string
	}{
		{
			name:     "pending",
			progress: domain.CopyProgress{Label: "Fetching stories 1-5", Status: domain.CopyStatusPending},
			contains: "Fetching stories 1-5",
		},
		{
			name:     "copying",
			progress: domain.CopyProgress{Current: 2, Total: 5, Label: "About", Status: domain.CopyStatusCopying},
			contains: "[2/5] About",
		},
		{
			name:     "done",
			progress: domain.CopyProgress{Current: 5, Total: 5, Label: "Complete", Status: domain.CopyStatusDone},
			contains: "Complete (5/5)",
		},
		{
			name:     "error",
			progress: domain.CopyProgress{Current: 3, Total: 5, Label: "Complete", Status: domain.CopyStatusError},
			contains: "Complete (3/5)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, renderCopyProgress(tt.progress), tt.contains)
		})
	}
}

func TestRenderSyncEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    domain.SyncProgressEvent
		contains string
	}{
		{
			name:     "start",
			event:    domain.SyncProgressEvent{Type: domain.SyncEventStart, Total: 3},
			contains: "Syncing 3 items",
		},
		{
			name:     "complete",
			event:    domain.SyncProgressEvent{Type: domain.SyncEventComplete},
			contains: "Sync complete",
		},
		{
			name:     "created",
			event:    domain.SyncProgressEvent{Type: domain.SyncEventProgress, Current: 1, Total: 3, Name: "hero", Action: domain.SyncActionCreated},
			contains: "hero created",
		},
		{
			name:     "skipped",
			event:    domain.SyncProgressEvent{Type: domain.SyncEventProgress, Current: 2, Total: 3, Name: "teaser", Action: domain.SyncActionSkipped},
			contains: "teaser skipped",
		},
		{
			name:     "error",
			event:    domain.SyncProgressEvent{Type: domain.SyncEventProgress, Current: 3, Total: 3, Name: "bad", Action: domain.SyncActionError, Message: "rejected"},
			contains: "bad failed: rejected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, renderSyncEvent(tt.event), tt.contains)
		})
	}
}

func TestRenderSyncEvent_TransientActionsAreSilent(t *testing.T) {
	creating := domain.SyncProgressEvent{Type: domain.SyncEventProgress, Action: domain.SyncActionCreating}
	updating := domain.SyncProgressEvent{Type: domain.SyncEventProgress, Action: domain.SyncActionUpdating}

	assert.Empty(t, renderSyncEvent(creating))
	assert.Empty(t, renderSyncEvent(updating))
}
