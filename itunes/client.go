// Package itunes is a client for the iTunes Search API.
package itunes

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/tunesearch-cli/tunesearch/constant"
	"github.com/tunesearch-cli/tunesearch/log"
	"github.com/tunesearch-cli/tunesearch/media"
	"github.com/tunesearch-cli/tunesearch/network"
)

// DefaultEndpoint is the public search endpoint.
const DefaultEndpoint = "https://itunes.apple.com/search"

// Client performs catalog searches.
type Client struct {
	endpoint string
	http     *http.Client
	validate *validator.Validate
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the search endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient overrides the shared network client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) { c.http = client }
}

// New returns a Client for DefaultEndpoint using the shared network client.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		http:     network.Client,
		validate: validator.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

type searchResponse struct {
	ResultCount int             `json:"resultCount"`
	Results     *[]media.Record `json:"results"`
}

// Search runs one GET request and returns the result records with the final one dropped.
// An empty result list is not an error.
func (c *Client) Search(ctx context.Context, params Params) ([]media.Record, error) {
	if err := c.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("invalid search parameters: %w", err)
	}

	id := uuid.NewString()[:8]
	u := c.endpoint + "?" + params.Values().Encode()
	log.Infof("[%s] searching itunes for %q", id, params.Term)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{Op: "request", URL: u, Err: err}
	}

	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		log.Errorf("[%s] %v", id, err)
		return nil, &TransportError{Op: "request", URL: u, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Errorf("[%s] itunes returned status code %d", id, resp.StatusCode)
		return nil, &TransportError{
			Op:         "status",
			URL:        u,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected %s", http.StatusText(resp.StatusCode)),
		}
	}

	var body searchResponse
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&body); err != nil {
		log.Errorf("[%s] %v", id, err)
		return nil, &TransportError{Op: "decode", URL: u, Err: err}
	}

	if body.Results == nil {
		log.Errorf("[%s] %v", id, ErrMissingResults)
		return nil, &TransportError{Op: "decode", URL: u, Err: ErrMissingResults}
	}

	log.Infof("[%s] got %d results (resultCount=%d)", id, len(*body.Results), body.ResultCount)
	return lo.DropRight(*body.Results, 1), nil
}
