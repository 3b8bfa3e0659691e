package platform

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/dishalabs/disha/internal/logger"
	"github.com/dishalabs/disha/internal/model"
)

// SearchEndpoint is the corpus API search path.
const SearchEndpoint = "/api/v1/videos/search"

// CorpusClient queries the Disha corpus HTTP API. Calls are rate limited on
// the client side; each call is independent — no retry or caching here, the
// controller owns coordination.
type CorpusClient struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// searchResponse is the corpus API response envelope.
type searchResponse struct {
	Total  int                 `json:"total"`
	Videos []model.VideoResult `json:"videos"`
}

// NewCorpusClient creates a corpus API client for the given base URL.
func NewCorpusClient(baseURL string, rps float64) *CorpusClient {
	if rps <= 0 {
		rps = 1
	}
	return &CorpusClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
	}
}

// Search queries the corpus with the given filter set. Result order is the
// corpus's and is returned verbatim.
func (c *CorpusClient) Search(ctx context.Context, f model.FilterSet) ([]model.VideoResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	if f.Language != "" {
		q.Set("language", f.Language)
	}
	if f.Source != "" {
		q.Set("source", f.Source)
	}
	if f.DurationBand != "" {
		q.Set("duration", f.DurationBand)
	}
	if f.Year != "" {
		q.Set("year", f.Year)
	}

	endpoint := c.baseURL + SearchEndpoint
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build corpus request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if id, ok := logger.ID(ctx); ok {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("corpus request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("corpus returned status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("malformed corpus response: %w", err)
	}

	return body.Videos, nil
}
