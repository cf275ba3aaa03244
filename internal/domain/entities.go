package domain

import (
	"fmt"
	"strings"
)

// DefaultPageSize is the number of artworks requested per page
const DefaultPageSize = 12

// Artwork represents a single record of the remote collection
type Artwork struct {
	ID            int    `json:"id" yaml:"id"`
	Title         string `json:"title" yaml:"title"`
	PlaceOfOrigin string `json:"place_of_origin" yaml:"place_of_origin"`
	ArtistDisplay string `json:"artist_display" yaml:"artist_display"` // Artist name, nationality and life dates
	Inscriptions  string `json:"inscriptions" yaml:"inscriptions"`
	DateStart     int    `json:"date_start" yaml:"date_start"` // Earliest year of creation, negative for BCE
	DateEnd       int    `json:"date_end" yaml:"date_end"`
}

// DateRange returns the creation years in a human-readable format
func (a Artwork) DateRange() string {
	switch {
	case a.DateStart == 0 && a.DateEnd == 0:
		return ""
	case a.DateStart == a.DateEnd || a.DateEnd == 0:
		return formatYear(a.DateStart)
	case a.DateStart == 0:
		return formatYear(a.DateEnd)
	default:
		return formatYear(a.DateStart) + "–" + formatYear(a.DateEnd)
	}
}

// ArtistName returns the first line of the artist display (name without life dates)
func (a Artwork) ArtistName() string {
	name, _, _ := strings.Cut(a.ArtistDisplay, "\n")
	return strings.TrimSpace(name)
}

// SearchText returns the text used for fuzzy filtering
func (a Artwork) SearchText() string {
	return a.Title + " " + a.ArtistName() + " " + a.PlaceOfOrigin
}

func formatYear(y int) string {
	if y < 0 {
		return fmt.Sprintf("%d BCE", -y)
	}
	return fmt.Sprintf("%d", y)
}

// Page is one fetch unit of the paginated remote catalog
type Page struct {
	Index      int       // 1-based page index
	Items      []Artwork // At most the requested page size
	TotalCount int       // Total records in the whole collection, as reported with this page
	TotalPages int       // Total pages as reported by the remote (0 if not reported)
}

// IsEmpty returns true if the page carries no records
func (p *Page) IsEmpty() bool {
	return p == nil || len(p.Items) == 0
}

// TotalPages returns the number of pages needed to show total records at size per page.
// The last page may be partial.
func TotalPages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
