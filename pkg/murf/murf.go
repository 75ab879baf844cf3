package murf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the Murf text-to-speech API client.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

var _ IMurf = (*Client)(nil)

// NewClient creates a new Murf client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     DefaultAPIURL,
		httpClient: &http.Client{},
	}
}

// WithBaseURL overrides the API endpoint. Used in tests.
func (c *Client) WithBaseURL(url string) *Client {
	c.apiURL = url
	return c
}

// Generate synthesizes speech for the text and returns the audio file URL.
func (c *Client) Generate(ctx context.Context, text, voiceID string) (string, error) {
	body, err := json.Marshal(generateRequest{Text: text, VoiceID: voiceID})
	if err != nil {
		return "", fmt.Errorf("murf: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/speech/generate", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("murf: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("murf: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("murf: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("murf: failed to decode response: %w", err)
	}
	if result.AudioFile == "" {
		return "", fmt.Errorf("murf: response contained no audio file URL")
	}

	return result.AudioFile, nil
}
