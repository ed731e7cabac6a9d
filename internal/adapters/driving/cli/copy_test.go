package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
	"github.com/meridian-labs/spacesync-cli/internal/core/ports/driving"
)

// fakeReplicator implements driving.Replicator for command tests.
type fakeReplicator struct {
	treeResult *driving.StoryTreeResult
	treeErr    error

	copyResult domain.CopyResult
	copyErr    error
	lastReq    driving.CopyRequest
}

func (f *fakeReplicator) FetchStoryTree(_ context.Context, _ int64) (*driving.StoryTreeResult, error) {
	if f.treeErr != nil {
		return nil, f.treeErr
	}
	return f.treeResult, nil
}

func (f *fakeReplicator) Copy(_ context.Context, req driving.CopyRequest, onProgress driving.CopyProgressFunc) (domain.CopyResult, error) {
	f.lastReq = req
	if onProgress != nil {
		onProgress(domain.CopyProgress{
			Current: f.copyResult.CopiedCount,
			Total:   f.copyResult.CopiedCount,
			Label:   "Complete",
			Status:  domain.CopyStatusDone,
		})
	}
	return f.copyResult, f.copyErr
}

// runCommand executes the root command with the given args and a fake
// replicator injected, returning stdout and stderr.
func runCommand(t *testing.T, fake *fakeReplicator, args ...string) (string, string, error) {
	t.Helper()
	replicatorService = fake
	t.Cleanup(func() { replicatorService = nil })

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCopyCmd_Success(t *testing.T) {
	fake := &fakeReplicator{
		copyResult: domain.CopyResult{Success: true, CopiedCount: 2},
	}

	out, _, err := runCommand(t, fake,
		"copy", "10", "11",
		"--source-space", "1", "--target-space", "2", "--parent", "7",
		"--config-dir", t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, out, "Copied 2 stories.")

	assert.Equal(t, int64(1), fake.lastReq.SourceSpaceID)
	assert.Equal(t, int64(2), fake.lastReq.TargetSpaceID)
	assert.Equal(t, int64(7), fake.lastReq.DestinationParentID)
	assert.Equal(t, []int64{10, 11}, fake.lastReq.StoryIDs)
}

func TestCopyCmd_InvalidStoryID(t *testing.T) {
	fake := &fakeReplicator{}

	_, _, err := runCommand(t, fake,
		"copy", "not-a-number",
		"--source-space", "1", "--target-space", "2",
		"--config-dir", t.TempDir())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCopyCmd_PartialFailureFailsCommand(t *testing.T) {
	fake := &fakeReplicator{
		copyResult: domain.CopyResult{
			Success:     false,
			CopiedCount: 1,
			Errors:      []string{"Failed to fetch story 11: gone"},
		},
	}

	out, errOut, err := runCommand(t, fake,
		"copy", "10", "11",
		"--source-space", "1", "--target-space", "2",
		"--config-dir", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 errors")
	assert.Contains(t, out, "Copied 1 stories.")
	assert.Contains(t, errOut, "Failed to fetch story 11")
}

func TestCopyCmd_ReplicatorError(t *testing.T) {
	fake := &fakeReplicator{copyErr: errors.New("network down")}

	_, _, err := runCommand(t, fake,
		"copy", "10",
		"--source-space", "1", "--target-space", "2",
		"--config-dir", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy failed")
}

func TestTreeCmd_RendersForest(t *testing.T) {
	fake := &fakeReplicator{
		treeResult: &driving.StoryTreeResult{
			Total: 2,
			Tree: []*domain.StoryNode{
				{
					Story: domain.Story{ID: 1, Name: "Blog", IsFolder: true},
					Children: []*domain.StoryNode{
						{Story: domain.Story{ID: 2, Name: "First Post"}},
					},
				},
			},
		},
	}

	out, _, err := runCommand(t, fake, "tree", "--space", "5", "--config-dir", t.TempDir())

	require.NoError(t, err)
	assert.Contains(t, out, "Space 5: 2 stories")
	assert.Contains(t, out, "Blog/")
	assert.Contains(t, out, "First Post (2)")
}

func TestTreeCmd_FetchError(t *testing.T) {
	fake := &fakeReplicator{treeErr: errors.New("unauthorized")}

	_, _, err := runCommand(t, fake, "tree", "--space", "5", "--config-dir", t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch story tree")
}
