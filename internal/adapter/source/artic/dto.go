package artic

// APIResponse is the root object returned by collection listing endpoints
type APIResponse struct {
	Pagination Pagination `json:"pagination"`
	Data       []Artwork  `json:"data"`
	Info       *Info      `json:"info,omitempty"`
}

// Pagination describes the page a listing response belongs to
type Pagination struct {
	Total       int    `json:"total"`
	Limit       int    `json:"limit"`
	Offset      int    `json:"offset"`
	TotalPages  int    `json:"total_pages"`
	CurrentPage int    `json:"current_page"`
	NextURL     string `json:"next_url,omitempty"`
	PrevURL     string `json:"prev_url,omitempty"`
}

// Artwork is one entry of the data array.
// Most fields are nullable in the API, hence the pointers.
type Artwork struct {
	ID            int     `json:"id"`
	Title         *string `json:"title"`
	PlaceOfOrigin *string `json:"place_of_origin"`
	ArtistDisplay *string `json:"artist_display"`
	Inscriptions  *string `json:"inscriptions"`
	DateStart     *int    `json:"date_start"`
	DateEnd       *int    `json:"date_end"`
}

// Info carries API licensing and version metadata
type Info struct {
	LicenseText string `json:"license_text,omitempty"`
	Version     string `json:"version,omitempty"`
}
