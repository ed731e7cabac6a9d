package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
	"github.com/meridian-labs/spacesync-cli/internal/core/ports/driving"
)

var (
	syncSpaceID     int64
	syncDir         string
	syncDryRun      bool
	syncPushPresets bool
	syncSourceTruth bool
	syncEntries     bool
	syncPluginFiles []string
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync local resource definitions into a space",
	Long: `Classifies locally authored resource definitions against the
space's current state and applies them: missing resources are created,
changed ones are updated, identical ones are skipped. One resource's
failure never aborts the rest.`,
}

var syncComponentsCmd = &cobra.Command{
	Use:   "components",
	Short: "Sync component schemas",
	RunE:  runSyncComponents,
}

var syncDatasourcesCmd = &cobra.Command{
	Use:   "datasources",
	Short: "Sync datasources",
	RunE:  runSyncDatasources,
}

var syncRolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Sync space roles",
	RunE:  runSyncRoles,
}

var syncPluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "Sync field plugins from named source files",
	RunE:  runSyncPlugins,
}

func init() {
	syncCmd.PersistentFlags().Int64Var(&syncSpaceID, "space", 0, "target space ID (defaults to configured target space)")
	syncCmd.PersistentFlags().StringVar(&syncDir, "dir", ".", "project directory to discover definitions in")
	syncCmd.PersistentFlags().BoolVar(&syncDryRun, "dry-run", false, "classify without writing")

	syncComponentsCmd.Flags().BoolVar(&syncPushPresets, "push-presets", false, "include field presets in writes")
	syncComponentsCmd.Flags().BoolVar(&syncSourceTruth, "source-of-truth", false, "update remote components even when they compare equal")
	syncDatasourcesCmd.Flags().BoolVar(&syncEntries, "sync-entries", false, "also reconcile datasource entries")
	syncPluginsCmd.Flags().StringArrayVar(&syncPluginFiles, "file", nil, "plugin source file (repeatable)")

	syncCmd.AddCommand(syncComponentsCmd)
	syncCmd.AddCommand(syncDatasourcesCmd)
	syncCmd.AddCommand(syncRolesCmd)
	syncCmd.AddCommand(syncPluginsCmd)
	rootCmd.AddCommand(syncCmd)
}

// syncTarget resolves the space and syncer shared by all kinds.
func syncTarget() (int64, driving.Syncer, error) {
	spaceID := syncSpaceID
	if spaceID == 0 {
		cfg, err := loadConfig()
		if err != nil {
			return 0, nil, err
		}
		spaceID = cfg.TargetSpaceID
	}
	syncer, err := getSyncer()
	if err != nil {
		return 0, nil, err
	}
	return spaceID, syncer, nil
}

// discoverLocal runs discovery for the sync directory.
func discoverLocal(ctx context.Context, kind domain.ResourceKind) ([]domain.DiscoveredResource, error) {
	resources, err := discoveryService.Discover(ctx, kind, syncDir)
	if err != nil {
		return nil, fmt.Errorf("discover %s: %w", kind, err)
	}
	return resources, nil
}

func runSyncComponents(cmd *cobra.Command, _ []string) error {
	spaceID, syncer, err := syncTarget()
	if err != nil {
		return err
	}
	resources, err := discoverLocal(cmd.Context(), domain.KindComponents)
	if err != nil {
		return err
	}
	items, err := loadDefinitions(resources, func(c *domain.Component, name string) {
		if c.Name == "" {
			c.Name = name
		}
	})
	if err != nil {
		return err
	}

	opts := driving.ComponentSyncOptions{
		SyncOptions:   driving.SyncOptions{DryRun: syncDryRun},
		PushPresets:   syncPushPresets,
		SourceOfTruth: syncSourceTruth,
	}
	outcome, err := syncer.SyncComponents(cmd.Context(), spaceID, items, opts, syncPrinter(cmd))
	if err != nil {
		return err
	}
	return printOutcome(cmd, outcome)
}

func runSyncDatasources(cmd *cobra.Command, _ []string) error {
	spaceID, syncer, err := syncTarget()
	if err != nil {
		return err
	}
	resources, err := discoverLocal(cmd.Context(), domain.KindDatasources)
	if err != nil {
		return err
	}
	items, err := loadDefinitions(resources, func(d *domain.Datasource, name string) {
		if d.Name == "" {
			d.Name = name
		}
		if d.Slug == "" {
			d.Slug = name
		}
	})
	if err != nil {
		return err
	}

	opts := driving.DatasourceSyncOptions{
		SyncOptions: driving.SyncOptions{DryRun: syncDryRun},
		SyncEntries: syncEntries,
	}
	outcome, err := syncer.SyncDatasources(cmd.Context(), spaceID, items, opts, syncPrinter(cmd))
	if err != nil {
		return err
	}
	return printOutcome(cmd, outcome)
}

func runSyncRoles(cmd *cobra.Command, _ []string) error {
	spaceID, syncer, err := syncTarget()
	if err != nil {
		return err
	}
	resources, err := discoverLocal(cmd.Context(), domain.KindRoles)
	if err != nil {
		return err
	}
	items, err := loadDefinitions(resources, func(r *domain.Role, name string) {
		if r.Name == "" {
			r.Name = name
		}
	})
	if err != nil {
		return err
	}

	outcome, err := syncer.SyncRoles(cmd.Context(), spaceID, items, driving.SyncOptions{DryRun: syncDryRun}, syncPrinter(cmd))
	if err != nil {
		return err
	}
	return printOutcome(cmd, outcome)
}

func runSyncPlugins(cmd *cobra.Command, _ []string) error {
	if len(syncPluginFiles) == 0 {
		return fmt.Errorf("no plugin files given, use --file")
	}
	spaceID, syncer, err := syncTarget()
	if err != nil {
		return err
	}
	items, err := loadPlugins(syncPluginFiles)
	if err != nil {
		return err
	}

	outcome, err := syncer.SyncPlugins(cmd.Context(), spaceID, items, driving.SyncOptions{DryRun: syncDryRun}, syncPrinter(cmd))
	if err != nil {
		return err
	}
	return printOutcome(cmd, outcome)
}

// syncPrinter streams rendered sync events to the command output.
func syncPrinter(cmd *cobra.Command) driving.SyncProgressFunc {
	return func(ev domain.SyncProgressEvent) {
		if line := renderSyncEvent(ev); line != "" {
			cmd.Println(line)
		}
	}
}

// printOutcome summarises a sync run; a non-empty error list makes the
// command fail after the summary is printed.
func printOutcome(cmd *cobra.Command, outcome domain.SyncOutcome) error {
	cmd.Printf("Created %d, updated %d, skipped %d.\n",
		len(outcome.Created), len(outcome.Updated), len(outcome.Skipped))
	if len(outcome.Errors) == 0 {
		return nil
	}
	for _, e := range outcome.Errors {
		cmd.PrintErrln(errorStyle.Render(fmt.Sprintf("%s: %s", e.Name, e.Message)))
	}
	return fmt.Errorf("sync finished with %d errors", len(outcome.Errors))
}
