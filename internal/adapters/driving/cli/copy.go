package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
	"github.com/meridian-labs/spacesync-cli/internal/core/ports/driving"
)

var (
	copySourceSpace int64
	copyTargetSpace int64
	copyParentID    int64
)

var copyCmd = &cobra.Command{
	Use:   "copy [story-id...]",
	Short: "Copy stories into another space",
	Long: `Replicates the selected stories (and their descendants, when the
descendant IDs are included) from the source space into the target space,
preserving folder hierarchy. Failures of single stories are reported but do
not abort the copy; children of a failed folder are never attempted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCopy,
}

func init() {
	copyCmd.Flags().Int64Var(&copySourceSpace, "source-space", 0, "source space ID")
	copyCmd.Flags().Int64Var(&copyTargetSpace, "target-space", 0, "target space ID")
	copyCmd.Flags().Int64Var(&copyParentID, "parent", 0, "destination parent folder ID (0 = space root)")
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid story ID %q: %w", arg, domain.ErrInvalidInput)
		}
		ids = append(ids, id)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	req := driving.CopyRequest{
		SourceSpaceID:       copySourceSpace,
		TargetSpaceID:       copyTargetSpace,
		StoryIDs:            ids,
		DestinationParentID: copyParentID,
	}
	if req.SourceSpaceID == 0 {
		req.SourceSpaceID = cfg.SourceSpaceID
	}
	if req.TargetSpaceID == 0 {
		req.TargetSpaceID = cfg.TargetSpaceID
	}

	replicator, err := getReplicator()
	if err != nil {
		return err
	}

	result, err := replicator.Copy(cmd.Context(), req, func(p domain.CopyProgress) {
		cmd.Println(renderCopyProgress(p))
	})
	if err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}

	cmd.Printf("Copied %d stories.\n", result.CopiedCount)
	if !result.Success {
		for _, msg := range result.Errors {
			cmd.PrintErrln(errorStyle.Render(msg))
		}
		return fmt.Errorf("copy finished with %d errors", len(result.Errors))
	}
	return nil
}
