package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/textlens-cli/internal/core/domain"
	"github.com/custodia-labs/textlens-cli/internal/core/ports/driven"
	"github.com/custodia-labs/textlens-cli/internal/core/ports/driving"
	"github.com/custodia-labs/textlens-cli/internal/logger"
)

// Compile-time check that SearchService implements the driving port.
var _ driving.SearchService = (*SearchService)(nil)

// Relevance weighting and snippet geometry.
const (
	titleWeight = 3

	minTermLength = 2 // query terms must be longer than this

	snippetWordsBefore = 10
	snippetWordsAfter  = 15
	snippetMaxChars    = 150
)

// SearchService scans the document collection and ranks matches by a
// weighted substring count: title hits count triple, content hits count
// single. Ties keep insertion order.
type SearchService struct {
	store        driven.DocumentStore
	defaultLimit int
}

// NewSearchService creates a search service over the store. defaultLimit
// caps result counts when callers pass no explicit limit.
func NewSearchService(store driven.DocumentStore, defaultLimit int) *SearchService {
	if defaultLimit <= 0 {
		defaultLimit = domain.DefaultSearchLimit
	}
	return &SearchService{store: store, defaultLimit: defaultLimit}
}

// Search scores every document against query and returns matches in
// descending relevance. An empty or all-short-term query yields empty
// results. A limit <= 0 applies the configured default.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}

	terms := queryTerms(query)
	if len(terms) == 0 {
		return []domain.SearchResult{}, nil
	}

	docs, err := s.store.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(docs))
	for _, doc := range docs {
		title := strings.ToLower(doc.Title)
		content := strings.ToLower(doc.Content)

		var relevance float64
		matched := make([]string, 0, len(terms))
		for _, term := range terms {
			titleHits := strings.Count(title, term)
			contentHits := strings.Count(content, term)
			if titleHits+contentHits == 0 {
				continue
			}
			relevance += float64(titleWeight*titleHits + contentHits)
			matched = append(matched, term)
		}
		if relevance == 0 {
			continue
		}

		results = append(results, domain.SearchResult{
			DocumentID:   doc.ID,
			Title:        doc.Title,
			Relevance:    relevance,
			Snippet:      buildSnippet(doc.Content, terms),
			MatchedTerms: matched,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})

	if len(results) > limit {
		results = results[:limit]
	}

	logger.Debug("search: %q matched %d of %d documents", query, len(results), len(docs))
	return results, nil
}

// queryTerms lowercases and splits the query on whitespace, keeping
// distinct terms longer than minTermLength in first-occurrence order.
func queryTerms(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	seen := make(map[string]struct{}, len(fields))
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) <= minTermLength {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		terms = append(terms, f)
	}
	return terms
}

// buildSnippet centres a window on the content word matching the most
// terms, spanning snippetWordsBefore words before it and
// snippetWordsAfter after, then truncates to snippetMaxChars with a
// trailing ellipsis. On ties the earliest word wins; when no word
// matches (a title-only hit) the window starts at the beginning.
func buildSnippet(content string, terms []string) string {
	words := strings.Fields(content)
	if len(words) == 0 {
		return ""
	}

	best, bestScore := 0, -1
	for i, word := range words {
		lower := strings.ToLower(word)
		score := 0
		for _, term := range terms {
			if strings.Contains(lower, term) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}

	start := best - snippetWordsBefore
	if start < 0 {
		start = 0
	}
	end := best + snippetWordsAfter
	if end >= len(words) {
		end = len(words) - 1
	}

	snippet := strings.Join(words[start:end+1], " ")
	if len(snippet) > snippetMaxChars {
		// Back up to a rune boundary so the cut never splits a
		// multi-byte character.
		cut := snippetMaxChars
		for cut > 0 && !utf8.RuneStart(snippet[cut]) {
			cut--
		}
		snippet = snippet[:cut] + "..."
	}
	return snippet
}
