// Package cli provides the cobra command tree for the textlens binary.
// Commands talk to the core through the driving ports; the concrete
// services are wired once at startup.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/textlens-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/textlens-cli/internal/adapters/driven/lexicon/afinn"
	"github.com/custodia-labs/textlens-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/textlens-cli/internal/core/domain"
	"github.com/custodia-labs/textlens-cli/internal/core/ports/driven"
	"github.com/custodia-labs/textlens-cli/internal/core/ports/driving"
	"github.com/custodia-labs/textlens-cli/internal/core/services"
	"github.com/custodia-labs/textlens-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services used by the commands. Wired by initServices, replaced by
// mocks in tests.
var (
	analysisService driving.AnalysisService
	documentService driving.DocumentService
	searchService   driving.SearchService
	settingsStore   driven.SettingsStore

	// analysisImpl is the concrete pipeline, retained so settings
	// changes can adjust the keyword limit at runtime.
	analysisImpl *services.AnalysisService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "textlens",
	Short: "Analyze and search text documents",
	Long: `textlens runs sentiment, keyword, readability, and statistics
analysis over text, and manages a searchable in-memory document
collection seeded with sample documents.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// initServices builds the production wiring: seeded in-memory store,
// AFINN lexicon, TOML settings.
func initServices() error {
	store, err := file.NewSettingsStore("")
	if err != nil {
		return fmt.Errorf("opening settings store: %w", err)
	}
	settingsStore = store

	settings, err := settingsStore.Load(context.Background())
	if err != nil {
		logger.Warn("settings load failed, using defaults: %v", err)
		settings = domain.DefaultSettings()
	}
	if settings.Verbose {
		logger.SetVerbose(true)
	}

	analysis := services.NewAnalysisService(afinn.New())
	analysis.SetKeywordLimit(settings.KeywordLimit)

	docStore := memory.NewSeededDocumentStore()
	cache := memory.NewAnalysisCache()

	analysisImpl = analysis
	analysisService = analysis
	documentService = services.NewDocumentService(docStore, cache, analysis)
	searchService = services.NewSearchService(docStore, settings.SearchLimit)

	return nil
}

// Execute wires the services and runs the command tree.
func Execute() {
	if err := initServices(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
