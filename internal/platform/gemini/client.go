package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Fixed generation parameters for assistant replies.
const (
	replyTemperature = 0.7
	replyMaxTokens   = 500
)

// Client is a client for the Gemini API.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewClient creates a new Gemini client.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-flash")
	model.SetTemperature(replyTemperature)
	model.SetMaxOutputTokens(replyMaxTokens)

	return &Client{client: client, model: model}, nil
}

// Reply forwards the system prompt and the raw user message to the model and
// returns its text verbatim. Any service failure is surfaced to the caller;
// this client never falls back to a local answer.
func (c *Client) Reply(ctx context.Context, systemPrompt, message string) (string, error) {
	prompt := []genai.Part{
		genai.Text(systemPrompt),
		genai.Text(message),
	}

	resp, err := c.model.GenerateContent(ctx, prompt...)
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("unexpected response format from Gemini")
	}

	return string(text), nil
}

// Close closes the underlying Gemini client.
func (c *Client) Close() error {
	return c.client.Close()
}
