package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"

	"reelvault/models"
)

const defaultTMDBBaseURL = "https://api.themoviedb.org/3"

// tmdbClient talks to the TMDB-compatible catalog API. All calls are
// read-only GETs with bearer auth; nothing is cached, every call
// re-fetches.
type tmdbClient struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
}

func newTMDBClient(baseURL, apiKey, language string, httpClient *http.Client) *tmdbClient {
	if baseURL == "" {
		baseURL = defaultTMDBBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &tmdbClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		language:   language,
		httpClient: httpClient,
	}
}

func (c *tmdbClient) isConfigured() bool {
	return c.apiKey != ""
}

// ---------- wire types (snake_case, TMDB shapes) ----------

type tmdbListEnvelope struct {
	Page         int        `json:"page"`
	Results      []tmdbItem `json:"results"`
	TotalPages   int        `json:"total_pages"`
	TotalResults int        `json:"total_results"`
}

type tmdbItem struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title,omitempty"`
	OriginalTitle string  `json:"original_title,omitempty"`
	Name          string  `json:"name,omitempty"`
	OriginalName  string  `json:"original_name,omitempty"`
	MediaType     string  `json:"media_type,omitempty"`
	Overview      string  `json:"overview,omitempty"`
	PosterPath    string  `json:"poster_path,omitempty"`
	BackdropPath  string  `json:"backdrop_path,omitempty"`
	ReleaseDate   string  `json:"release_date,omitempty"`
	FirstAirDate  string  `json:"first_air_date,omitempty"`
	VoteAverage   float64 `json:"vote_average,omitempty"`
	VoteCount     int64   `json:"vote_count,omitempty"`
	Popularity    float64 `json:"popularity,omitempty"`
	GenreIDs      []int64 `json:"genre_ids,omitempty"`
}

type tmdbGenre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type tmdbCastMember struct {
	Name        string `json:"name"`
	Character   string `json:"character"`
	Order       int    `json:"order"`
	ProfilePath string `json:"profile_path"`
}

type tmdbCredits struct {
	Cast []tmdbCastMember `json:"cast"`
}

type tmdbVideo struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type tmdbVideos struct {
	Results []tmdbVideo `json:"results"`
}

type tmdbMovieDetails struct {
	ID            int64            `json:"id"`
	Title         string           `json:"title"`
	OriginalTitle string           `json:"original_title"`
	Overview      string           `json:"overview"`
	PosterPath    string           `json:"poster_path"`
	BackdropPath  string           `json:"backdrop_path"`
	ReleaseDate   string           `json:"release_date"`
	Runtime       int              `json:"runtime"`
	VoteAverage   float64          `json:"vote_average"`
	VoteCount     int64            `json:"vote_count"`
	Genres        []tmdbGenre      `json:"genres"`
	Credits       tmdbCredits      `json:"credits"`
	Similar       tmdbListEnvelope `json:"similar"`
	Videos        tmdbVideos       `json:"videos"`
}

type tmdbSeriesDetails struct {
	ID              int64            `json:"id"`
	Name            string           `json:"name"`
	OriginalName    string           `json:"original_name"`
	Overview        string           `json:"overview"`
	PosterPath      string           `json:"poster_path"`
	BackdropPath    string           `json:"backdrop_path"`
	FirstAirDate    string           `json:"first_air_date"`
	NumberOfSeasons int              `json:"number_of_seasons"`
	VoteAverage     float64          `json:"vote_average"`
	VoteCount       int64            `json:"vote_count"`
	Genres          []tmdbGenre      `json:"genres"`
	Credits         tmdbCredits      `json:"credits"`
	Similar         tmdbListEnvelope `json:"similar"`
	Videos          tmdbVideos       `json:"videos"`
}

// ---------- list fetches ----------

// Trending returns the daily trending feed for "movie" or "tv".
func (c *tmdbClient) trending(ctx context.Context, mediaType string) ([]models.CatalogItem, error) {
	return c.fetchList(ctx, "tmdb trending", fmt.Sprintf("/trending/%s/day", mediaType), nil)
}

func (c *tmdbClient) popularMovies(ctx context.Context) ([]models.CatalogItem, error) {
	return c.fetchList(ctx, "tmdb popular", "/movie/popular", nil)
}

func (c *tmdbClient) topRatedMovies(ctx context.Context) ([]models.CatalogItem, error) {
	return c.fetchList(ctx, "tmdb top rated", "/movie/top_rated", nil)
}

func (c *tmdbClient) upcomingMovies(ctx context.Context) ([]models.CatalogItem, error) {
	return c.fetchList(ctx, "tmdb upcoming", "/movie/upcoming", nil)
}

func (c *tmdbClient) searchMovies(ctx context.Context, query string) ([]models.CatalogItem, error) {
	params := url.Values{}
	params.Set("query", query)
	return c.fetchList(ctx, "tmdb search", "/search/movie", params)
}

// fetchList performs a list GET and unwraps the {results: [...]} envelope
// the catalog API puts around every list payload.
func (c *tmdbClient) fetchList(ctx context.Context, op, path string, params url.Values) ([]models.CatalogItem, error) {
	var envelope tmdbListEnvelope
	if err := c.get(ctx, op, path, params, &envelope); err != nil {
		return nil, err
	}
	items := make([]models.CatalogItem, 0, len(envelope.Results))
	for _, raw := range envelope.Results {
		items = append(items, raw.toCatalogItem())
	}
	return items, nil
}

// ---------- detail fetches ----------

// movieDetails fetches the composite movie payload. Credits, similar
// titles, and videos ride along in the same response via
// append_to_response, so a details screen costs one round trip.
func (c *tmdbClient) movieDetails(ctx context.Context, id int64) (*models.MovieDetails, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,similar,videos")
	var raw tmdbMovieDetails
	if err := c.get(ctx, "tmdb movie details", fmt.Sprintf("/movie/%d", id), params, &raw); err != nil {
		return nil, err
	}
	return raw.toMovieDetails(), nil
}

func (c *tmdbClient) seriesDetails(ctx context.Context, id int64) (*models.SeriesDetails, error) {
	params := url.Values{}
	params.Set("append_to_response", "credits,similar,videos")
	var raw tmdbSeriesDetails
	if err := c.get(ctx, "tmdb series details", fmt.Sprintf("/tv/%d", id), params, &raw); err != nil {
		return nil, err
	}
	return raw.toSeriesDetails(), nil
}

// ---------- wire → model mapping ----------

func (t tmdbItem) toCatalogItem() models.CatalogItem {
	item := models.CatalogItem{
		ID:           t.ID,
		MediaType:    models.MediaTypeUnknown,
		Title:        firstNonEmpty(t.Title, t.OriginalTitle),
		Name:         firstNonEmpty(t.Name, t.OriginalName),
		Overview:     t.Overview,
		PosterPath:   t.PosterPath,
		BackdropPath: t.BackdropPath,
		ReleaseDate:  firstNonEmpty(t.ReleaseDate, t.FirstAirDate),
		VoteAverage:  t.VoteAverage,
		VoteCount:    t.VoteCount,
		Popularity:   t.Popularity,
		GenreIDs:     t.GenreIDs,
	}
	switch t.MediaType {
	case "movie":
		item.MediaType = models.MediaTypeMovie
	case "tv":
		item.MediaType = models.MediaTypeSeries
	}
	return item
}

func (d tmdbMovieDetails) toMovieDetails() *models.MovieDetails {
	return &models.MovieDetails{
		ID:           d.ID,
		Title:        firstNonEmpty(d.Title, d.OriginalTitle),
		Overview:     d.Overview,
		PosterPath:   d.PosterPath,
		BackdropPath: d.BackdropPath,
		ReleaseDate:  d.ReleaseDate,
		Runtime:      d.Runtime,
		VoteAverage:  d.VoteAverage,
		VoteCount:    d.VoteCount,
		Genres:       mapGenres(d.Genres),
		Cast:         topBilledCast(d.Credits.Cast),
		Similar:      mapSimilar(d.Similar),
		Trailers:     mapVideos(d.Videos),
	}
}

func (d tmdbSeriesDetails) toSeriesDetails() *models.SeriesDetails {
	return &models.SeriesDetails{
		ID:           d.ID,
		Name:         firstNonEmpty(d.Name, d.OriginalName),
		Overview:     d.Overview,
		PosterPath:   d.PosterPath,
		BackdropPath: d.BackdropPath,
		FirstAirDate: d.FirstAirDate,
		SeasonCount:  d.NumberOfSeasons,
		VoteAverage:  d.VoteAverage,
		VoteCount:    d.VoteCount,
		Genres:       mapGenres(d.Genres),
		Cast:         topBilledCast(d.Credits.Cast),
		Similar:      mapSimilar(d.Similar),
		Trailers:     mapVideos(d.Videos),
	}
}

func mapGenres(genres []tmdbGenre) []models.Genre {
	if len(genres) == 0 {
		return nil
	}
	out := make([]models.Genre, 0, len(genres))
	for _, g := range genres {
		out = append(out, models.Genre{ID: g.ID, Name: g.Name})
	}
	return out
}

// topBilledCast sorts cast by billing order ascending and keeps the
// display prefix.
func topBilledCast(cast []tmdbCastMember) []models.CastMember {
	if len(cast) == 0 {
		return nil
	}
	sorted := make([]tmdbCastMember, len(cast))
	copy(sorted, cast)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})
	if len(sorted) > models.MaxCastEntries {
		sorted = sorted[:models.MaxCastEntries]
	}
	out := make([]models.CastMember, 0, len(sorted))
	for _, m := range sorted {
		out = append(out, models.CastMember{
			Name:        m.Name,
			Character:   m.Character,
			Order:       m.Order,
			ProfilePath: m.ProfilePath,
		})
	}
	return out
}

func mapSimilar(envelope tmdbListEnvelope) []models.CatalogItem {
	if len(envelope.Results) == 0 {
		return nil
	}
	out := make([]models.CatalogItem, 0, len(envelope.Results))
	for _, raw := range envelope.Results {
		out = append(out, raw.toCatalogItem())
	}
	return out
}

func mapVideos(videos tmdbVideos) []models.TrailerRef {
	if len(videos.Results) == 0 {
		return nil
	}
	out := make([]models.TrailerRef, 0, len(videos.Results))
	for _, v := range videos.Results {
		out = append(out, models.TrailerRef{VideoID: v.Key, Kind: v.Type})
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// ---------- transport ----------

// get performs a GET against the catalog API and decodes the body into
// dest. Failures come back as *FetchError values; no error escapes this
// layer any other way.
func (c *tmdbClient) get(ctx context.Context, op, path string, params url.Values, dest interface{}) error {
	reqURL, err := url.Parse(c.baseURL + path)
	if err != nil {
		return invalidURLError(op, err)
	}
	if params == nil {
		params = url.Values{}
	}
	if c.language != "" {
		params.Set("language", c.language)
	}
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return invalidURLError(op, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return badStatusError(op, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(op, err)
	}
	if len(body) == 0 {
		return noDataError(op)
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return decodeError(op, err)
	}
	return nil
}
