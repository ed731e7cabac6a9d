package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
)

var (
	discoverDir   string
	discoverWatch bool
)

var discoverCmd = &cobra.Command{
	Use:   "discover <kind>",
	Short: "List resource-definition files in a project",
	Long: `Scans the project tree for resource-definition files by naming
convention. Kinds: components, datasources, roles.`,
	Args: cobra.ExactArgs(1),
	RunE: runDiscover,
}

func init() {
	discoverCmd.Flags().StringVar(&discoverDir, "dir", ".", "project directory to scan")
	discoverCmd.Flags().BoolVar(&discoverWatch, "watch", false, "rescan whenever the project tree changes")
	rootCmd.AddCommand(discoverCmd)
}

func runDiscover(cmd *cobra.Command, args []string) error {
	kind := domain.ResourceKind(args[0])

	if discoverWatch {
		updates, err := discoveryService.Watch(cmd.Context(), kind, discoverDir)
		if err != nil {
			return fmt.Errorf("watch %s: %w", kind, err)
		}
		for resources := range updates {
			printResources(cmd, resources)
			cmd.Println("---")
		}
		return nil
	}

	resources, err := discoveryService.Discover(cmd.Context(), kind, discoverDir)
	if err != nil {
		return fmt.Errorf("discover %s: %w", kind, err)
	}
	printResources(cmd, resources)
	return nil
}

func printResources(cmd *cobra.Command, resources []domain.DiscoveredResource) {
	if len(resources) == 0 {
		cmd.Println("No resources found.")
		return
	}
	for _, res := range resources {
		marker := ""
		if res.Location == domain.LocationExternal {
			marker = skipStyle.Render(" (external)")
		}
		cmd.Printf("%s%s\t%s\n", res.Name, marker, res.Path)
	}
}
