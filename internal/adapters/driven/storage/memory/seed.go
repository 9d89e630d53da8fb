package memory

import (
	"context"
	"time"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
)

// seedTime is the fixed creation timestamp for the sample corpus.
var seedTime = time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)

// NewSeededDocumentStore creates a document store pre-populated with the
// sample corpus. The CLI and MCP server start from this store so search
// and analysis have material to work with; tests that need isolation use
// NewDocumentStore instead.
func NewSeededDocumentStore() *DocumentStore {
	store := NewDocumentStore()
	ctx := context.Background()
	for i := range sampleDocuments {
		// SaveDocument on a fresh store cannot fail.
		_ = store.SaveDocument(ctx, &sampleDocuments[i])
	}
	return store
}

// sampleDocuments is the fixed demonstration corpus.
var sampleDocuments = []domain.Document{
	{
		ID:    "sample-1",
		Title: "The Future of Technology",
		Content: "Technology is reshaping every industry. Artificial intelligence and machine learning " +
			"drive the latest wave of technology adoption, and companies that embrace new technology " +
			"early tend to outpace their competitors. The pace of change keeps accelerating.",
		Author:    "Dana Whitfield",
		Category:  "technology",
		Tags:      []string{"ai", "trends"},
		Metadata:  map[string]any{"source": "seed"},
		CreatedAt: seedTime,
		UpdatedAt: seedTime,
	},
	{
		ID:    "sample-2",
		Title: "A Field Guide to Sourdough",
		Content: "Baking sourdough bread rewards patience. A healthy starter, good flour, and a long, " +
			"slow fermentation produce a loaf with an open crumb and a deeply caramelized crust. " +
			"Weigh your ingredients and keep notes between bakes.",
		Author:    "Marco Reyes",
		Category:  "cooking",
		Tags:      []string{"baking", "bread"},
		Metadata:  map[string]any{"source": "seed"},
		CreatedAt: seedTime,
		UpdatedAt: seedTime,
	},
	{
		ID:    "sample-3",
		Title: "Why We Sleep",
		Content: "Sleep consolidates memory and clears metabolic waste from the brain. Adults who " +
			"consistently sleep fewer than seven hours show measurable declines in attention and " +
			"mood. Good sleep hygiene is a simple, free intervention.",
		Author:    "Dana Whitfield",
		Category:  "science",
		Tags:      []string{"health", "neuroscience"},
		Metadata:  map[string]any{"source": "seed"},
		CreatedAt: seedTime,
		UpdatedAt: seedTime,
	},
	{
		ID:    "sample-4",
		Title: "Hiking the Coastal Trail",
		Content: "The coastal trail winds through fog-draped cliffs and tide pools. Pack layers, " +
			"carry more water than you think you need, and check the tide tables before crossing " +
			"the narrow beach sections. The views repay every mile.",
		Author:    "Priya Nair",
		Category:  "travel",
		Tags:      []string{"outdoors"},
		Metadata:  map[string]any{"source": "seed"},
		CreatedAt: seedTime,
		UpdatedAt: seedTime,
	},
	{
		ID:    "sample-5",
		Title: "Open Source in the Enterprise",
		Content: "Enterprises now build on open source by default. Technology leaders weigh license " +
			"terms, community health, and long-term maintenance before adopting a dependency. " +
			"Contributing fixes upstream is cheaper than carrying private patches forever.",
		Author:    "Marco Reyes",
		Category:  "technology",
		Tags:      []string{"open-source", "engineering"},
		Metadata:  map[string]any{"source": "seed"},
		CreatedAt: seedTime,
		UpdatedAt: seedTime,
	},
}
