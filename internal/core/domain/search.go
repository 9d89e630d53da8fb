package domain

// SearchResult represents a single search hit.
// Results are ephemeral: recomputed per query, never cached.
type SearchResult struct {
	// DocumentID is the matched document's ID.
	DocumentID string

	// Title is the matched document's title.
	Title string

	// Relevance is the weighted term-occurrence score. Title matches
	// count 3x, content matches 1x.
	Relevance float64

	// Snippet is a bounded-length excerpt around the densest match.
	Snippet string

	// MatchedTerms lists the query terms that occurred in the title
	// or content, in query order.
	MatchedTerms []string
}
