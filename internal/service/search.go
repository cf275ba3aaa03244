package service

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/artworks/internal/domain"
)

// FilterArtworks returns the artworks whose searchable text fuzzily matches
// query, best matches first. Ties keep their input order.
// An empty query returns items unchanged.
func FilterArtworks(query string, items []domain.Artwork) []domain.Artwork {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}

	type rankedItem struct {
		item  domain.Artwork
		score int
	}

	ranked := make([]rankedItem, 0, len(items))
	for _, item := range items {
		text := strings.ToLower(item.SearchText())
		if !fuzzy.MatchFold(query, text) {
			continue
		}
		ranked = append(ranked, rankedItem{item: item, score: calculateMatchScore(query, item)})
	}

	// Sort by score (lower is better)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score < ranked[j].score
	})

	results := make([]domain.Artwork, len(ranked))
	for i, r := range ranked {
		results[i] = r.item
	}
	return results
}

// calculateMatchScore ranks a match of query against an artwork.
// Lower score = better match
func calculateMatchScore(query string, item domain.Artwork) int {
	title := strings.ToLower(item.Title)

	// Exact match is best
	if title == query {
		return 0
	}

	// Prefix match is very good
	if strings.HasPrefix(title, query) {
		return 10
	}

	// Contains match is good
	if strings.Contains(title, query) {
		return 50
	}

	// Matches in the artist line rank above scattered fuzzy hits
	if strings.Contains(strings.ToLower(item.ArtistDisplay), query) {
		return 75
	}

	return 100 + fuzzy.LevenshteinDistance(query, title)
}
