package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Use(t *testing.T) {
	assert.Equal(t, "search [query]", searchCmd.Use)
}

func TestSearchCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := executeCommand(t, "search")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestSearchCmd_FindsSeededDocuments(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand(t, "search", "technology")
	require.NoError(t, err)

	assert.Contains(t, out, "The Future of Technology")
	assert.Contains(t, out, "Open Source in the Enterprise")
	assert.Contains(t, out, "relevance 6")
}

func TestSearchCmd_NoResults(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	out, err := executeCommand(t, "search", "xylophone")
	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}

func TestSearchCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { searchJSON = false }()

	out, err := executeCommand(t, "search", "technology", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"sample-1"`)
}
