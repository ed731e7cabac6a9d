package driving

import (
	"context"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
)

// Discoverer locates resource-definition files in a project tree.
type Discoverer interface {
	// Discover scans workingDir for definition files of the given kind.
	// Unreadable directories are skipped silently; the scan never fails
	// once the kind is accepted, it returns whatever was discoverable.
	Discover(ctx context.Context, kind domain.ResourceKind, workingDir string) ([]domain.DiscoveredResource, error)

	// Watch re-runs discovery whenever the project tree changes and sends
	// each fresh result on the returned channel. The channel closes when
	// ctx is cancelled.
	Watch(ctx context.Context, kind domain.ResourceKind, workingDir string) (<-chan []domain.DiscoveredResource, error)
}
