package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage configuration",
	Long:  `Show or change the persisted textlens settings.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings",
	Long:  `Changes only the settings given as flags and writes them to the config file.`,
	Args:  cobra.NoArgs,
	RunE:  runSettingsSet,
}

var (
	setKeywordLimit int
	setSearchLimit  int
	setVerbose      bool
)

func init() {
	settingsSetCmd.Flags().IntVar(&setKeywordLimit, "keyword-limit", 0, "keywords per analysis")
	settingsSetCmd.Flags().IntVar(&setSearchLimit, "search-limit", 0, "maximum search results")
	settingsSetCmd.Flags().BoolVar(&setVerbose, "verbose-logging", false, "enable debug logging by default")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	settings, err := settingsStore.Load(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	cmd.Println("Settings:")
	cmd.Printf("  Keyword limit: %d\n", settings.KeywordLimit)
	cmd.Printf("  Search limit:  %d\n", settings.SearchLimit)
	cmd.Printf("  Verbose:       %t\n", settings.Verbose)
	return nil
}

func runSettingsSet(cmd *cobra.Command, _ []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	ctx := context.Background()
	settings, err := settingsStore.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if cmd.Flags().Changed("keyword-limit") {
		settings.KeywordLimit = setKeywordLimit
	}
	if cmd.Flags().Changed("search-limit") {
		settings.SearchLimit = setSearchLimit
	}
	if cmd.Flags().Changed("verbose-logging") {
		settings.Verbose = setVerbose
	}
	settings = settings.Normalize()

	if err := settingsStore.Save(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Settings saved.")
	return nil
}
