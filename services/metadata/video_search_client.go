package metadata

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"reelvault/models"
)

// videoSearchClient performs keyword searches against a video-search API
// (YouTube Data API shape) to find trailers. The search is best-effort:
// callers treat an empty result as "no trailer", never as an error.
type videoSearchClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func newVideoSearchClient(endpoint, apiKey string, httpClient *http.Client) *videoSearchClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &videoSearchClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type videoSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
			Kind    string `json:"kind"`
		} `json:"id"`
	} `json:"items"`
}

// searchTrailer returns the first search hit for the query, or (nil, nil)
// when the search yields nothing. No ranking beyond "first result" is
// applied.
func (c *videoSearchClient) searchTrailer(ctx context.Context, query string) (*models.TrailerRef, error) {
	const op = "video search"

	reqURL, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, invalidURLError(op, err)
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.apiKey)
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, invalidURLError(op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, badStatusError(op, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(op, err)
	}
	if len(body) == 0 {
		return nil, noDataError(op)
	}

	var decoded videoSearchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, decodeError(op, err)
	}

	if len(decoded.Items) == 0 {
		return nil, nil
	}
	first := decoded.Items[0].ID
	return &models.TrailerRef{VideoID: first.VideoID, Kind: first.Kind}, nil
}
