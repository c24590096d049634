// Package searchclient is the consumer-side delivery surface for the
// portfolio search API: a thin HTTP client plus a debounced widget model
// for header quick-search and the full search page.
package searchclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	searchmodels "photo-portfolio-backend/search/models"
)

// StatusError reports a non-2xx response from the search endpoint. It is a
// distinct type so callers can tell transport failure apart from a genuine
// zero-match response.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("search endpoint returned status %d", e.Code)
}

// Params is one search request.
type Params struct {
	Query  string
	Locale string
	Scope  searchmodels.Scope
	Limit  int
}

// Response is the decoded body of GET /api/v1/search.
type Response struct {
	Results  *searchmodels.SearchResultSet `json:"results"`
	Degraded []searchmodels.Collection     `json:"degraded,omitempty"`
}

// Searcher is the widget-facing contract; tests substitute fakes here.
type Searcher interface {
	Search(ctx context.Context, params Params) (*Response, error)
}

// Client calls the search API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Search issues one aggregator call. The context carries cancellation from
// the widget: superseded or abandoned requests are aborted at the transport
// layer, not just ignored on arrival.
func (c *Client) Search(ctx context.Context, params Params) (*Response, error) {
	values := url.Values{}
	values.Set("q", params.Query)
	if params.Locale != "" {
		values.Set("locale", params.Locale)
	}
	if params.Scope != "" {
		values.Set("type", string(params.Scope))
	}
	if params.Limit > 0 {
		values.Set("limit", strconv.Itoa(params.Limit))
	}

	endpoint := fmt.Sprintf("%s/api/v1/search/?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var decoded Response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if decoded.Results == nil {
		decoded.Results = searchmodels.EmptyResultSet()
	}

	return &decoded, nil
}
