package driving

import (
	"context"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
)

// CopyProgressFunc receives progress events during one replication call.
// A nil callback is allowed.
type CopyProgressFunc func(domain.CopyProgress)

// CopyRequest describes one cross-space replication.
type CopyRequest struct {
	SourceSpaceID int64
	TargetSpaceID int64

	// StoryIDs selects the records to replicate.
	StoryIDs []int64

	// DestinationParentID is the folder the forest is rooted under in the
	// target space. Zero means the target space root.
	DestinationParentID int64
}

// StoryTreeResult is the remote content of a space in flat and tree form.
type StoryTreeResult struct {
	Stories []domain.Story
	Tree    []*domain.StoryNode
	Total   int
}

// Replicator copies story subtrees between spaces.
type Replicator interface {
	// FetchStoryTree lists every story of the space and builds the forest.
	FetchStoryTree(ctx context.Context, spaceID int64) (*StoryTreeResult, error)

	// Copy replicates the selected stories into the target space under
	// bounded concurrency, preserving hierarchy. Per-item failures are
	// recorded in the result; only configuration problems reject the call.
	Copy(ctx context.Context, req CopyRequest, onProgress CopyProgressFunc) (domain.CopyResult, error)
}
