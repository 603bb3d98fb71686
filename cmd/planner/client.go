package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"prepper/internal/recipe"
)

// client talks to the prepper backend API.
type client struct {
	httpClient *http.Client
	baseURL    string
}

func newClient(baseURL string) *client {
	return &client{httpClient: &http.Client{}, baseURL: baseURL}
}

// Search returns the canonical recipes matching a name query.
func (c *client) Search(ctx context.Context, query string) ([]recipe.Recipe, error) {
	var body struct {
		Recipes []recipe.Recipe `json:"recipes"`
	}
	err := c.get(ctx, "/api/recipes/search?q="+url.QueryEscape(query), &body)
	return body.Recipes, err
}

// Lookup returns one canonical recipe by id.
func (c *client) Lookup(ctx context.Context, id string) (*recipe.Recipe, error) {
	var body struct {
		Recipe *recipe.Recipe `json:"recipe"`
	}
	err := c.get(ctx, "/api/recipes/byId?id="+url.QueryEscape(id), &body)
	return body.Recipe, err
}

// Random returns one randomly chosen canonical recipe.
func (c *client) Random(ctx context.Context) (*recipe.Recipe, error) {
	var body struct {
		Recipe *recipe.Recipe `json:"recipe"`
	}
	err := c.get(ctx, "/api/recipes/random", &body)
	return body.Recipe, err
}

// Chat sends a message to the assistant and returns its reply and mode.
func (c *client) Chat(ctx context.Context, message string) (string, string, error) {
	payload, err := json.Marshal(map[string]string{"message": message})
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/ai/chat", bytes.NewReader(payload))
	if err != nil {
		return "", "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var body struct {
		Response string `json:"response"`
		Mode     string `json:"mode"`
	}
	if err := c.do(req, &body); err != nil {
		return "", "", err
	}
	return body.Response, body.Mode, nil
}

func (c *client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, out)
}

func (c *client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
