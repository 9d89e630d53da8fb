package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textlens-cli/internal/connectors/filesystem"
	"github.com/custodia-labs/textlens-cli/internal/logger"
)

var watchCategory string

var watchCmd = &cobra.Command{
	Use:   "watch [directory]",
	Short: "Ingest text files from a directory",
	Long: `Adds the text files in a directory to the collection and keeps
watching: new and edited files become new or updated documents, removed
files delete theirs. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchCategory, "category", "c", "watched", "category for ingested documents")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	watcher, err := filesystem.NewWatcher(args[0], watchCategory, documentService)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	ctx := cmd.Context()
	logger.Section("Initial Sync")
	if err := watcher.SyncExisting(ctx); err != nil {
		return fmt.Errorf("initial sync failed: %w", err)
	}

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", args[0])
	return watcher.Run(ctx)
}
