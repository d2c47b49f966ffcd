package models

// MediaType identifies which catalog a title belongs to.
type MediaType string

const (
	MediaTypeMovie   MediaType = "movie"
	MediaTypeSeries  MediaType = "series"
	MediaTypeUnknown MediaType = "unknown"
)

// CatalogItem is a lightweight catalog record at list-view granularity.
// Movie results carry Title, series results carry Name; either may be
// absent on the wire.
type CatalogItem struct {
	ID           int64     `json:"id"`
	MediaType    MediaType `json:"mediaType"`
	Title        string    `json:"title,omitempty"`
	Name         string    `json:"name,omitempty"`
	Overview     string    `json:"overview,omitempty"`
	PosterPath   string    `json:"posterPath,omitempty"`
	BackdropPath string    `json:"backdropPath,omitempty"`
	ReleaseDate  string    `json:"releaseDate,omitempty"` // yyyy-MM-dd
	VoteAverage  float64   `json:"voteAverage,omitempty"`
	VoteCount    int64     `json:"voteCount,omitempty"`
	Popularity   float64   `json:"popularity,omitempty"`
	GenreIDs     []int64   `json:"genreIds,omitempty"`
}

// DisplayName returns the movie title when present, the series name
// otherwise, and "unknown title" when the record carries neither.
func (c CatalogItem) DisplayName() string {
	if c.Title != "" {
		return c.Title
	}
	if c.Name != "" {
		return c.Name
	}
	return "unknown title"
}

// ReleaseYear extracts the 4-digit year from the release date, or ""
// when the date is absent or malformed.
func (c CatalogItem) ReleaseYear() string {
	if len(c.ReleaseDate) < 4 {
		return ""
	}
	year := c.ReleaseDate[:4]
	for _, r := range year {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return year
}

// ResolveMediaType classifies the item as movie or series. The explicit
// media-type field wins; otherwise the name fields decide (a series name
// without a movie title implies series). Records where both or neither
// name field is present are ambiguous and default to movie; the second
// return reports that ambiguity so callers can log it.
func (c CatalogItem) ResolveMediaType() (MediaType, bool) {
	switch c.MediaType {
	case MediaTypeMovie, MediaTypeSeries:
		return c.MediaType, false
	}
	if c.Name != "" && c.Title == "" {
		return MediaTypeSeries, false
	}
	if c.Title != "" && c.Name == "" {
		return MediaTypeMovie, false
	}
	return MediaTypeMovie, true
}
