package artic

import (
	"github.com/mmcdole/artworks/internal/domain"
)

// MapArtworks converts API entries to domain artworks, preserving order
func MapArtworks(data []Artwork) []domain.Artwork {
	artworks := make([]domain.Artwork, 0, len(data))
	for _, a := range data {
		artworks = append(artworks, mapArtwork(a))
	}
	return artworks
}

// mapArtwork converts a single API entry; nulls become zero values
func mapArtwork(a Artwork) domain.Artwork {
	return domain.Artwork{
		ID:            a.ID,
		Title:         str(a.Title),
		PlaceOfOrigin: str(a.PlaceOfOrigin),
		ArtistDisplay: str(a.ArtistDisplay),
		Inscriptions:  str(a.Inscriptions),
		DateStart:     num(a.DateStart),
		DateEnd:       num(a.DateEnd),
	}
}

// MapPage builds a domain page from a decoded response
func MapPage(index int, resp *APIResponse) *domain.Page {
	return &domain.Page{
		Index:      index,
		Items:      MapArtworks(resp.Data),
		TotalCount: resp.Pagination.Total,
		TotalPages: resp.Pagination.TotalPages,
	}
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func num(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
