package mealdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"prepper/internal/recipe"
)

const defaultBaseURL = "https://www.themealdb.com/api/json/v1/1"

// Client is a client for TheMealDB lookup API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new TheMealDB client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    defaultBaseURL,
	}
}

// NewClientWithBaseURL creates a client pointed at a non-default endpoint.
// Used by tests to target an httptest server.
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// envelope is the response wrapper used by every TheMealDB endpoint. The
// "meals" field is null (not an empty array) when nothing matched.
type envelope struct {
	Meals []recipe.SourceRecord `json:"meals"`
}

// Search returns the raw records matching a free-text name query.
func (c *Client) Search(ctx context.Context, query string) ([]recipe.SourceRecord, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/search.php?s=%s", c.baseURL, url.QueryEscape(query)))
}

// Lookup returns the raw record for a single recipe id.
func (c *Client) Lookup(ctx context.Context, id string) ([]recipe.SourceRecord, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/lookup.php?i=%s", c.baseURL, url.QueryEscape(id)))
}

// Random returns one randomly chosen raw record.
func (c *Client) Random(ctx context.Context) ([]recipe.SourceRecord, error) {
	return c.fetch(ctx, c.baseURL+"/random.php")
}

func (c *Client) fetch(ctx context.Context, requestURL string) ([]recipe.SourceRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK status code: %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	return env.Meals, nil
}
