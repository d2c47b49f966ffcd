package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelvault/models"
)

func newTestTMDBClient(serverURL string) *tmdbClient {
	return newTMDBClient(serverURL, "test-key", "", &http.Client{})
}

func TestFetchListUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer auth header, got %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("expected json accept header, got %q", got)
		}
		w.Write([]byte(`{
			"page": 1,
			"results": [
				{"id": 42, "original_title": "X", "vote_average": 8.1, "release_date": "2025-04-15"}
			],
			"total_pages": 1,
			"total_results": 1
		}`))
	}))
	defer server.Close()

	client := newTestTMDBClient(server.URL)
	items, err := client.trending(context.Background(), "movie")
	if err != nil {
		t.Fatalf("trending returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.ID != 42 {
		t.Fatalf("expected id 42, got %d", item.ID)
	}
	if item.DisplayName() != "X" {
		t.Fatalf("expected display name from original_title, got %q", item.DisplayName())
	}
	if item.VoteAverage != 8.1 {
		t.Fatalf("expected vote average 8.1, got %v", item.VoteAverage)
	}
	if item.ReleaseYear() != "2025" {
		t.Fatalf("expected release year 2025, got %q", item.ReleaseYear())
	}
}

func TestFetchListBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestTMDBClient(server.URL)
	_, err := client.popularMovies(context.Background())

	fetchErr, ok := err.(*FetchError)
	if !ok {
		t.Fatalf("expected *FetchError, got %T (%v)", err, err)
	}
	if fetchErr.Kind != FetchBadStatus {
		t.Fatalf("expected badStatus, got %s", fetchErr.Kind)
	}
	if fetchErr.Status != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", fetchErr.Status)
	}
}

func TestFetchListDecodeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": not json`))
	}))
	defer server.Close()

	client := newTestTMDBClient(server.URL)
	_, err := client.upcomingMovies(context.Background())

	fetchErr, ok := err.(*FetchError)
	if !ok {
		t.Fatalf("expected *FetchError, got %T (%v)", err, err)
	}
	if fetchErr.Kind != FetchDecode {
		t.Fatalf("expected decodeFailed, got %s", fetchErr.Kind)
	}
}

func TestFetchListTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := newTestTMDBClient(server.URL)
	_, err := client.topRatedMovies(context.Background())

	fetchErr, ok := err.(*FetchError)
	if !ok {
		t.Fatalf("expected *FetchError, got %T (%v)", err, err)
	}
	if fetchErr.Kind != FetchTransport {
		t.Fatalf("expected transport, got %s", fetchErr.Kind)
	}
	if fetchErr.Unwrap() == nil {
		t.Fatal("expected transport error to carry its cause")
	}
}

func TestFetchListEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestTMDBClient(server.URL)
	_, err := client.popularMovies(context.Background())

	fetchErr, ok := err.(*FetchError)
	if !ok {
		t.Fatalf("expected *FetchError, got %T (%v)", err, err)
	}
	if fetchErr.Kind != FetchNoData {
		t.Fatalf("expected noData, got %s", fetchErr.Kind)
	}
}

func TestMovieDetailsCompositeFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("append_to_response"); got != "credits,similar,videos" {
			t.Errorf("expected composite append_to_response, got %q", got)
		}
		w.Write([]byte(`{
			"id": 550,
			"title": "Fight Club",
			"overview": "An insomniac office worker...",
			"release_date": "1999-10-15",
			"runtime": 139,
			"vote_average": 8.4,
			"vote_count": 26000,
			"genres": [{"id": 18, "name": "Drama"}],
			"credits": {"cast": [
				{"name": "Second", "character": "B", "order": 1},
				{"name": "First", "character": "A", "order": 0}
			]},
			"similar": {"results": [{"id": 807, "title": "Se7en"}]},
			"videos": {"results": [{"key": "abc123", "site": "YouTube", "type": "Trailer"}]}
		}`))
	}))
	defer server.Close()

	client := newTestTMDBClient(server.URL)
	details, err := client.movieDetails(context.Background(), 550)
	if err != nil {
		t.Fatalf("movieDetails returned error: %v", err)
	}

	if details.Title != "Fight Club" {
		t.Fatalf("unexpected title %q", details.Title)
	}
	if details.Runtime != 139 {
		t.Fatalf("unexpected runtime %d", details.Runtime)
	}
	if len(details.Cast) != 2 || details.Cast[0].Name != "First" {
		t.Fatalf("expected cast sorted by billing order, got %+v", details.Cast)
	}
	if len(details.Similar) != 1 || details.Similar[0].ID != 807 {
		t.Fatalf("expected similar titles, got %+v", details.Similar)
	}
	if len(details.Trailers) != 1 || details.Trailers[0].VideoID != "abc123" {
		t.Fatalf("expected trailer refs, got %+v", details.Trailers)
	}
}

// Missing optional fields decode to absence, never to a failure.
func TestSeriesDetailsDecodeTotality(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 1399, "name": "Game of Thrones"}`))
	}))
	defer server.Close()

	client := newTestTMDBClient(server.URL)
	details, err := client.seriesDetails(context.Background(), 1399)
	if err != nil {
		t.Fatalf("seriesDetails returned error: %v", err)
	}
	if details.Name != "Game of Thrones" {
		t.Fatalf("unexpected name %q", details.Name)
	}
	if details.Cast != nil || details.Similar != nil || details.Trailers != nil {
		t.Fatalf("expected absent optional fields to stay empty, got %+v", details)
	}
}

func TestTopBilledCastCapped(t *testing.T) {
	cast := make([]tmdbCastMember, 0, 15)
	for i := 14; i >= 0; i-- {
		cast = append(cast, tmdbCastMember{Name: "actor", Order: i})
	}

	billed := topBilledCast(cast)
	if len(billed) != models.MaxCastEntries {
		t.Fatalf("expected %d cast entries, got %d", models.MaxCastEntries, len(billed))
	}
	for i := 1; i < len(billed); i++ {
		if billed[i].Order < billed[i-1].Order {
			t.Fatalf("cast not sorted by billing order: %+v", billed)
		}
	}
	if billed[0].Order != 0 {
		t.Fatalf("expected top billing first, got order %d", billed[0].Order)
	}
}
