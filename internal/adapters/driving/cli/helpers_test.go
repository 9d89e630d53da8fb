package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/textlens-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/textlens-cli/internal/adapters/driven/lexicon/afinn"
	"github.com/custodia-labs/textlens-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/textlens-cli/internal/core/services"
)

// setupTestServices wires the commands to real services over the seeded
// in-memory store. The returned cleanup resets the package state.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	store := memory.NewSeededDocumentStore()
	cache := memory.NewAnalysisCache()
	analysis := services.NewAnalysisService(afinn.New())

	settings, err := file.NewSettingsStore(t.TempDir())
	require.NoError(t, err)

	analysisImpl = analysis
	analysisService = analysis
	documentService = services.NewDocumentService(store, cache, analysis)
	searchService = services.NewSearchService(store, 0)
	settingsStore = settings

	return func() {
		analysisImpl = nil
		analysisService = nil
		documentService = nil
		searchService = nil
		settingsStore = nil
	}
}

// executeCommand runs the root command with args and captures output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
