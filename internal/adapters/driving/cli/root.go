// Package cli wires the cobra command tree to the engine services.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/spacesync-cli/internal/adapters/driven/config/file"
	"github.com/meridian-labs/spacesync-cli/internal/adapters/driven/contentapi"
	"github.com/meridian-labs/spacesync-cli/internal/adapters/driven/settings/sqlite"
	"github.com/meridian-labs/spacesync-cli/internal/core/ports/driving"
	"github.com/meridian-labs/spacesync-cli/internal/core/services"
	"github.com/meridian-labs/spacesync-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagToken     string
	flagConfigDir string
)

// Services are package-level so tests can inject fakes; when nil they are
// built on demand from the resolved configuration.
var (
	replicatorService driving.Replicator
	syncerService     driving.Syncer
	discoveryService  driving.Discoverer = services.NewDiscoveryService()
	settingsService   driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "spacesync",
	Short: "Replicate and synchronise content between spaces",
	Long: `spacesync copies story subtrees between spaces of a content
management backend and reconciles locally authored resource definitions
(components, datasources, roles, plugins) against a space's current state.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "management API token (overrides config and environment)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default ~/.spacesync)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the CLI configuration with flag and env overrides.
func loadConfig() (file.Config, error) {
	store, err := file.NewConfigStore(flagConfigDir)
	if err != nil {
		return file.Config{}, fmt.Errorf("open config: %w", err)
	}
	cfg, err := store.Load()
	if err != nil {
		return file.Config{}, err
	}
	if flagToken != "" {
		cfg.Token = flagToken
	}
	return cfg, nil
}

// resolveToken returns the management token from flag, environment or
// config, prompting interactively as a last resort.
func resolveToken() (string, error) {
	cfg, err := loadConfig()
	if err != nil {
		return "", err
	}
	if cfg.Token != "" {
		return cfg.Token, nil
	}
	return file.PromptToken()
}

// newClient builds the management API client for the resolved token.
func newClient() (*contentapi.Client, error) {
	token, err := resolveToken()
	if err != nil {
		return nil, err
	}
	return contentapi.NewClient(token)
}

func getReplicator() (driving.Replicator, error) {
	if replicatorService != nil {
		return replicatorService, nil
	}
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	return services.NewReplicatorService(client), nil
}

func getSyncer() (driving.Syncer, error) {
	if syncerService != nil {
		return syncerService, nil
	}
	client, err := newClient()
	if err != nil {
		return nil, err
	}
	return services.NewSyncerService(client), nil
}

func getSettings() (driving.SettingsService, func(), error) {
	if settingsService != nil {
		return settingsService, func() {}, nil
	}
	store, err := sqlite.NewStore("")
	if err != nil {
		return nil, nil, fmt.Errorf("open settings: %w", err)
	}
	return services.NewSettingsManager(store), func() { _ = store.Close() }, nil
}
