package models

// MaxCastEntries bounds how many top-billed cast members a details
// payload retains for display.
const MaxCastEntries = 10

// CastMember is a single cast credit, ordered by billing order ascending.
type CastMember struct {
	Name        string `json:"name"`
	Character   string `json:"character,omitempty"`
	Order       int    `json:"order"`
	ProfilePath string `json:"profilePath,omitempty"`
}

// TrailerRef points at a playable trailer on the video-search provider.
type TrailerRef struct {
	VideoID string `json:"videoId"`
	Kind    string `json:"kind,omitempty"`
}

// Genre is a named genre attached to a details payload.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// MovieDetails is the composite per-movie payload fetched on demand when
// a details screen opens.
type MovieDetails struct {
	ID           int64         `json:"id"`
	Title        string        `json:"title"`
	Overview     string        `json:"overview,omitempty"`
	PosterPath   string        `json:"posterPath,omitempty"`
	BackdropPath string        `json:"backdropPath,omitempty"`
	ReleaseDate  string        `json:"releaseDate,omitempty"`
	Runtime      int           `json:"runtime,omitempty"` // minutes
	VoteAverage  float64       `json:"voteAverage,omitempty"`
	VoteCount    int64         `json:"voteCount,omitempty"`
	Genres       []Genre       `json:"genres,omitempty"`
	Cast         []CastMember  `json:"cast,omitempty"`
	Similar      []CatalogItem `json:"similar,omitempty"`
	Trailers     []TrailerRef  `json:"trailers,omitempty"`
}

// SeriesDetails is the composite per-series payload.
type SeriesDetails struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Overview     string        `json:"overview,omitempty"`
	PosterPath   string        `json:"posterPath,omitempty"`
	BackdropPath string        `json:"backdropPath,omitempty"`
	FirstAirDate string        `json:"firstAirDate,omitempty"`
	SeasonCount  int           `json:"seasonCount,omitempty"`
	VoteAverage  float64       `json:"voteAverage,omitempty"`
	VoteCount    int64         `json:"voteCount,omitempty"`
	Genres       []Genre       `json:"genres,omitempty"`
	Cast         []CastMember  `json:"cast,omitempty"`
	Similar      []CatalogItem `json:"similar,omitempty"`
	Trailers     []TrailerRef  `json:"trailers,omitempty"`
}

// DetailsBundle is the joined result of the mandatory details fetch and
// the optional trailer search. Exactly one of Movie or Series is set.
// It exists only to feed a details-screen render and is never persisted.
type DetailsBundle struct {
	Movie   *MovieDetails  `json:"movieDetails,omitempty"`
	Series  *SeriesDetails `json:"seriesDetails,omitempty"`
	Trailer *TrailerRef    `json:"trailer,omitempty"`
}
