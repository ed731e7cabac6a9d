package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
)

var (
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	copyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	skipStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	folderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
)

// renderCopyProgress formats one replication progress event.
func renderCopyProgress(p domain.CopyProgress) string {
	switch p.Status {
	case domain.CopyStatusPending:
		return pendingStyle.Render(fmt.Sprintf("  %s", p.Label))
	case domain.CopyStatusCopying:
		return copyStyle.Render(fmt.Sprintf("  [%d/%d] %s", p.Current, p.Total, p.Label))
	case domain.CopyStatusDone:
		return doneStyle.Render(fmt.Sprintf("✓ %s (%d/%d)", p.Label, p.Current, p.Total))
	case domain.CopyStatusError:
		return errorStyle.Render(fmt.Sprintf("✗ %s (%d/%d)", p.Label, p.Current, p.Total))
	default:
		return p.Label
	}
}

// renderSyncEvent formats one sync progress event; returns "" for events
// that should not be printed.
func renderSyncEvent(ev domain.SyncProgressEvent) string {
	switch ev.Type {
	case domain.SyncEventStart:
		return pendingStyle.Render(fmt.Sprintf("Syncing %d items...", ev.Total))
	case domain.SyncEventComplete:
		return doneStyle.Render("Sync complete")
	}

	switch ev.Action {
	case domain.SyncActionCreated, domain.SyncActionUpdated:
		return doneStyle.Render(fmt.Sprintf("  [%d/%d] %s %s", ev.Current, ev.Total, ev.Name, ev.Action))
	case domain.SyncActionSkipped:
		return skipStyle.Render(fmt.Sprintf("  [%d/%d] %s skipped", ev.Current, ev.Total, ev.Name))
	case domain.SyncActionError:
		return errorStyle.Render(fmt.Sprintf("  [%d/%d] %s failed: %s", ev.Current, ev.Total, ev.Name, ev.Message))
	case domain.SyncActionCreating, domain.SyncActionUpdating:
		// Transient; the terminal action follows immediately.
		return ""
	default:
		return ""
	}
}
