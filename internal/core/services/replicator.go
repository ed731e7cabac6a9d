package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
	"github.com/meridian-labs/spacesync-cli/internal/core/ports/driven"
	"github.com/meridian-labs/spacesync-cli/internal/core/ports/driving"
	"github.com/meridian-labs/spacesync-cli/internal/logger"
)

const (
	// fetchBatchSize bounds concurrent story fetches from the source space.
	fetchBatchSize = 5

	// createBatchSize bounds concurrent story creations in the target
	// space. Stricter than the fetch batch: writes have a tighter rate
	// budget than reads.
	createBatchSize = 3
)

// Ensure ReplicatorService implements the interface.
var _ driving.Replicator = (*ReplicatorService)(nil)

// ReplicatorService copies story subtrees between spaces.
type ReplicatorService struct {
	client driven.ContentClient
}

// NewReplicatorService creates a replicator backed by the given API client.
func NewReplicatorService(client driven.ContentClient) *ReplicatorService {
	return &ReplicatorService{client: client}
}

// FetchStoryTree lists every story of the space and builds the forest.
func (s *ReplicatorService) FetchStoryTree(ctx context.Context, spaceID int64) (*driving.StoryTreeResult, error) {
	if spaceID == 0 {
		return nil, domain.ErrMissingSpace
	}

	stories, err := s.client.ListStories(ctx, spaceID)
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	return &driving.StoryTreeResult{
		Stories: stories,
		Tree:    domain.BuildStoryTree(stories),
		Total:   len(stories),
	}, nil
}

// fetchResult is the per-task outcome of one story fetch.
type fetchResult struct {
	id    int64
	story *domain.Story
	err   error
}

// createResult is the per-task outcome of one story creation.
type createResult struct {
	item    workItem
	created *domain.Story
	err     error
}

// workItem pairs a node with the parent ID it resolves to in the target
// space. The materialization phase processes an explicit queue of these
// instead of recursing across suspension points.
type workItem struct {
	node     *domain.StoryNode
	parentID int64
}

// Copy replicates the selected stories into the target space.
//
// The call runs in four phases: a bounded-concurrency fetch of the selected
// records, tree construction over the successful fetches, level-by-level
// materialization in the target space, and one terminal progress event.
// Per-item failures are recorded in the result and never abort the run;
// children of a node that failed to create are never attempted.
func (s *ReplicatorService) Copy(ctx context.Context, req driving.CopyRequest, onProgress driving.CopyProgressFunc) (domain.CopyResult, error) {
	if req.SourceSpaceID == 0 || req.TargetSpaceID == 0 {
		return domain.CopyResult{}, domain.ErrMissingSpace
	}

	handle := domain.NewOperationHandle("copy")
	logger.Info("copy %s: %d stories from space %d to space %d",
		handle.ID, len(req.StoryIDs), req.SourceSpaceID, req.TargetSpaceID)

	emit := newCopyProgressEmitter(onProgress)
	var copyErrors []string

	// Phase 1: fetch in fixed-size batches, one batch fully settled before
	// the next starts. Failed fetches drop out of the working set.
	stories := make([]domain.Story, 0, len(req.StoryIDs))
	for start := 0; start < len(req.StoryIDs); start += fetchBatchSize {
		batch := req.StoryIDs[start:min(start+fetchBatchSize, len(req.StoryIDs))]

		emit(domain.CopyProgress{
			Total:  len(req.StoryIDs),
			Label:  fmt.Sprintf("Fetching stories %d-%d", start+1, start+len(batch)),
			Status: domain.CopyStatusPending,
		})

		results := make([]fetchResult, len(batch))
		var g errgroup.Group
		for i, id := range batch {
			i, id := i, id
			g.Go(func() error {
				story, err := s.client.GetStory(ctx, req.SourceSpaceID, id)
				results[i] = fetchResult{id: id, story: story, err: err}
				return nil
			})
		}
		_ = g.Wait() // individual errors live in results

		for _, r := range results {
			if r.err != nil {
				copyErrors = append(copyErrors, fmt.Sprintf("Failed to fetch story %d: %v", r.id, r.err))
				continue
			}
			stories = append(stories, *r.story)
		}
	}

	// Phase 2: one forest over exactly the successful fetches.
	forest := domain.BuildStoryTree(stories)
	workingSet := len(stories)

	// Phase 3: breadth-first materialization. A level is fully processed
	// before its children are scheduled; siblings are created in smaller
	// batches with full settlement between them.
	idMap := make(map[int64]int64, workingSet)
	created := 0

	level := make([]workItem, 0, len(forest))
	for _, root := range forest {
		level = append(level, workItem{node: root, parentID: req.DestinationParentID})
	}

	for len(level) > 0 {
		var next []workItem

		for start := 0; start < len(level); start += createBatchSize {
			batch := level[start:min(start+createBatchSize, len(level))]

			for i, it := range batch {
				emit(domain.CopyProgress{
					Current: created + i + 1,
					Total:   workingSet,
					Label:   it.node.Story.Name,
					Status:  domain.CopyStatusCopying,
				})
			}

			results := make([]createResult, len(batch))
			var g errgroup.Group
			for i, it := range batch {
				i, it := i, it
				g.Go(func() error {
					draft := it.node.Story.Draft(it.parentID)
					st, err := s.client.CreateStory(ctx, req.TargetSpaceID, draft)
					results[i] = createResult{item: it, created: st, err: err}
					return nil
				})
			}
			_ = g.Wait()

			for _, r := range results {
				if r.err != nil {
					copyErrors = append(copyErrors, fmt.Sprintf("Failed to create %q: %v", r.item.node.Story.Name, r.err))
					// The subtree of a failed node is never attempted.
					continue
				}
				idMap[r.item.node.Story.ID] = r.created.ID
				created++
				for _, child := range r.item.node.Children {
					next = append(next, workItem{node: child, parentID: r.created.ID})
				}
			}
		}

		level = next
	}

	// Phase 4: exactly one terminal event.
	status := domain.CopyStatusDone
	if len(copyErrors) > 0 {
		status = domain.CopyStatusError
	}
	emit(domain.CopyProgress{
		Current: created,
		Total:   workingSet,
		Label:   "Complete",
		Status:  status,
	})

	logger.Info("copy %s: created %d/%d, %d errors", handle.ID, created, workingSet, len(copyErrors))

	return domain.CopyResult{
		Success:     len(copyErrors) == 0,
		CopiedCount: created,
		Errors:      copyErrors,
	}, nil
}

// newCopyProgressEmitter wraps the callback so that emitted Current values
// never decrease, even when creation failures shrink the running count.
func newCopyProgressEmitter(onProgress driving.CopyProgressFunc) func(domain.CopyProgress) {
	last := 0
	return func(p domain.CopyProgress) {
		if onProgress == nil {
			return
		}
		if p.Current < last {
			p.Current = last
		} else {
			last = p.Current
		}
		onProgress(p)
	}
}
