package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelvault/models"
)

const movieDetailsBody = `{"id": 100, "title": "Known Movie", "runtime": 120}`

func newTestService(tmdbURL, videoURL string) *Service {
	httpClient := &http.Client{}
	return &Service{
		tmdb:   newTMDBClient(tmdbURL, "test-key", "", httpClient),
		videos: newVideoSearchClient(videoURL, "video-key", httpClient),
	}
}

func TestDetailsBundleAttachesTrailer(t *testing.T) {
	tmdb := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(movieDetailsBody))
	}))
	defer tmdb.Close()
	videos := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": [{"id": {"videoId": "trailer-1", "kind": "youtube#video"}}]}`))
	}))
	defer videos.Close()

	svc := newTestService(tmdb.URL, videos.URL)
	bundle, err := svc.DetailsBundle(context.Background(), models.CatalogItem{ID: 100, MediaType: models.MediaTypeMovie, Title: "Known Movie"})
	if err != nil {
		t.Fatalf("DetailsBundle returned error: %v", err)
	}
	if bundle.Movie == nil || bundle.Movie.Title != "Known Movie" {
		t.Fatalf("expected movie details, got %+v", bundle.Movie)
	}
	if bundle.Series != nil {
		t.Fatalf("expected no series details for a movie, got %+v", bundle.Series)
	}
	if bundle.Trailer == nil || bundle.Trailer.VideoID != "trailer-1" {
		t.Fatalf("expected trailer attached, got %+v", bundle.Trailer)
	}
}

// A failed trailer search never fails the bundle; it just ships without
// a trailer.
func TestDetailsBundleToleratesTrailerFailure(t *testing.T) {
	tmdb := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(movieDetailsBody))
	}))
	defer tmdb.Close()
	videos := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer videos.Close()

	svc := newTestService(tmdb.URL, videos.URL)
	bundle, err := svc.DetailsBundle(context.Background(), models.CatalogItem{ID: 100, MediaType: models.MediaTypeMovie, Title: "Known Movie"})
	if err != nil {
		t.Fatalf("expected bundle despite trailer failure, got error: %v", err)
	}
	if bundle.Movie == nil {
		t.Fatal("expected movie details")
	}
	if bundle.Trailer != nil {
		t.Fatalf("expected no trailer, got %+v", bundle.Trailer)
	}
}

// A failed details fetch fails the whole operation, even when the
// trailer branch succeeded.
func TestDetailsBundleDetailsFailureIsTerminal(t *testing.T) {
	tmdb := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer tmdb.Close()
	videos := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": [{"id": {"videoId": "trailer-1", "kind": "youtube#video"}}]}`))
	}))
	defer videos.Close()

	svc := newTestService(tmdb.URL, videos.URL)
	bundle, err := svc.DetailsBundle(context.Background(), models.CatalogItem{ID: 100, MediaType: models.MediaTypeMovie, Title: "Known Movie"})
	if err == nil {
		t.Fatalf("expected error, got bundle %+v", bundle)
	}
	fetchErr, ok := err.(*FetchError)
	if !ok {
		t.Fatalf("expected *FetchError, got %T (%v)", err, err)
	}
	if fetchErr.Kind != FetchBadStatus {
		t.Fatalf("expected badStatus from details fetch, got %s", fetchErr.Kind)
	}
}

// Series classification routes the details fetch to the series endpoint.
func TestDetailsBundleSeriesClassification(t *testing.T) {
	var gotPath string
	tmdb := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"id": 1399, "name": "Known Series", "number_of_seasons": 8}`))
	}))
	defer tmdb.Close()
	videos := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": []}`))
	}))
	defer videos.Close()

	svc := newTestService(tmdb.URL, videos.URL)
	// No explicit media type: series name present, movie title absent
	bundle, err := svc.DetailsBundle(context.Background(), models.CatalogItem{ID: 1399, Name: "Known Series"})
	if err != nil {
		t.Fatalf("DetailsBundle returned error: %v", err)
	}
	if gotPath != "/tv/1399" {
		t.Fatalf("expected series endpoint, got %s", gotPath)
	}
	if bundle.Series == nil || bundle.Series.SeasonCount != 8 {
		t.Fatalf("expected series details, got %+v", bundle.Series)
	}
	if bundle.Trailer != nil {
		t.Fatalf("expected no trailer for empty search, got %+v", bundle.Trailer)
	}
}

// Ambiguous records (neither name field) default to the movie endpoint.
func TestDetailsBundleAmbiguousDefaultsToMovie(t *testing.T) {
	var gotPath string
	tmdb := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(movieDetailsBody))
	}))
	defer tmdb.Close()
	videos := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": []}`))
	}))
	defer videos.Close()

	svc := newTestService(tmdb.URL, videos.URL)
	if _, err := svc.DetailsBundle(context.Background(), models.CatalogItem{ID: 100}); err != nil {
		t.Fatalf("DetailsBundle returned error: %v", err)
	}
	if gotPath != "/movie/100" {
		t.Fatalf("expected movie endpoint for ambiguous record, got %s", gotPath)
	}
}
