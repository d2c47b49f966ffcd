package metadata

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/sourcegraph/conc/pool"

	"reelvault/models"
)

// Config holds the remote API settings for the metadata service.
type Config struct {
	TMDBBaseURL    string // defaults to the public TMDB v3 base
	TMDBAPIKey     string // bearer token
	Language       string // e.g. "en-US"; empty omits the parameter
	VideoSearchURL string
	VideoSearchKey string
	RequestTimeout time.Duration
}

const defaultRequestTimeout = 10 * time.Second

// Service exposes the catalog feeds and the details-bundle aggregation.
// It owns the two remote clients; nothing here is cached, every call
// goes to the wire.
type Service struct {
	tmdb   *tmdbClient
	videos *videoSearchClient
}

func NewService(cfg Config) *Service {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	httpClient := &http.Client{Timeout: timeout}
	return &Service{
		tmdb:   newTMDBClient(cfg.TMDBBaseURL, cfg.TMDBAPIKey, cfg.Language, httpClient),
		videos: newVideoSearchClient(cfg.VideoSearchURL, cfg.VideoSearchKey, httpClient),
	}
}

// Trending returns the daily trending feed for the given media type
// ("movie" or "tv"/"series").
func (s *Service) Trending(ctx context.Context, mediaType string) ([]models.CatalogItem, error) {
	normalized := "movie"
	switch mediaType {
	case "tv", "series", "show", "shows":
		normalized = "tv"
	}
	return s.tmdb.trending(ctx, normalized)
}

func (s *Service) PopularMovies(ctx context.Context) ([]models.CatalogItem, error) {
	return s.tmdb.popularMovies(ctx)
}

func (s *Service) TopRatedMovies(ctx context.Context) ([]models.CatalogItem, error) {
	return s.tmdb.topRatedMovies(ctx)
}

func (s *Service) UpcomingMovies(ctx context.Context) ([]models.CatalogItem, error) {
	return s.tmdb.upcomingMovies(ctx)
}

func (s *Service) SearchMovies(ctx context.Context, query string) ([]models.CatalogItem, error) {
	return s.tmdb.searchMovies(ctx, query)
}

// DetailsBundle produces the combined details-screen payload for a
// catalog item: the mandatory composite details fetch and the optional
// trailer search run concurrently, and the join waits for both branches
// regardless of which finishes first.
//
// Details failure fails the whole operation no matter what the trailer
// branch did. Trailer failure is logged and the bundle ships without a
// trailer; an absent trailer is never a user-facing error.
func (s *Service) DetailsBundle(ctx context.Context, item models.CatalogItem) (*models.DetailsBundle, error) {
	mediaType, ambiguous := item.ResolveMediaType()
	if ambiguous {
		log.Printf("[metadata] ambiguous media type for id=%d title=%q name=%q; treating as movie", item.ID, item.Title, item.Name)
	}

	var (
		movie      *models.MovieDetails
		series     *models.SeriesDetails
		detailsErr error
		trailer    *models.TrailerRef
		trailerErr error
	)

	p := pool.New()
	p.Go(func() {
		if mediaType == models.MediaTypeSeries {
			series, detailsErr = s.tmdb.seriesDetails(ctx, item.ID)
		} else {
			movie, detailsErr = s.tmdb.movieDetails(ctx, item.ID)
		}
	})
	p.Go(func() {
		trailer, trailerErr = s.videos.searchTrailer(ctx, item.DisplayName()+" trailer")
	})
	p.Wait()

	if detailsErr != nil {
		return nil, detailsErr
	}
	if trailerErr != nil {
		log.Printf("[metadata] trailer search failed for %q: %v", item.DisplayName(), trailerErr)
		trailer = nil
	}

	return &models.DetailsBundle{Movie: movie, Series: series, Trailer: trailer}, nil
}
