package cli

import (
	"errors"
	"sort"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/spacesync-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage local application settings",
	RunE:  runSettingsList,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Remove a setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsDelete,
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsDeleteCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsList(cmd *cobra.Command, _ []string) error {
	svc, closeStore, err := getSettings()
	if err != nil {
		return err
	}
	defer closeStore()

	settings, err := svc.List(cmd.Context())
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		cmd.Printf("%s = %s\n", key, settings[key])
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := getSettings()
	if err != nil {
		return err
	}
	defer closeStore()

	value, err := svc.Get(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		cmd.PrintErrf("Setting %q is not set.\n", args[0])
		return nil
	}
	if err != nil {
		return err
	}
	cmd.Println(value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := getSettings()
	if err != nil {
		return err
	}
	defer closeStore()

	return svc.Set(cmd.Context(), args[0], args[1])
}

func runSettingsDelete(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := getSettings()
	if err != nil {
		return err
	}
	defer closeStore()

	return svc.Delete(cmd.Context(), args[0])
}
