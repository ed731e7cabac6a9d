package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
)

var treeSpaceID int64

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the story tree of a space",
	Long:  `Fetches every story of a space and renders the folder hierarchy.`,
	RunE:  runTree,
}

func init() {
	treeCmd.Flags().Int64Var(&treeSpaceID, "space", 0, "space ID (defaults to configured source space)")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, _ []string) error {
	spaceID := treeSpaceID
	if spaceID == 0 {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		spaceID = cfg.SourceSpaceID
	}

	replicator, err := getReplicator()
	if err != nil {
		return err
	}

	result, err := replicator.FetchStoryTree(cmd.Context(), spaceID)
	if err != nil {
		return fmt.Errorf("fetch story tree: %w", err)
	}

	cmd.Printf("Space %d: %d stories\n", spaceID, result.Total)
	printForest(cmd, result.Tree, 0)
	return nil
}

func printForest(cmd *cobra.Command, nodes []*domain.StoryNode, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, node := range nodes {
		label := node.Story.Name
		if node.Story.IsFolder {
			label = folderStyle.Render(label + "/")
		}
		cmd.Printf("%s%s (%d)\n", indent, label, node.Story.ID)
		printForest(cmd, node.Children, depth+1)
	}
}
