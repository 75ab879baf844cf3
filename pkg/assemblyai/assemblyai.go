package assemblyai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the AssemblyAI transcription API client.
type Client struct {
	apiKey       string
	apiURL       string
	pollInterval time.Duration
	httpClient   *http.Client
}

var _ IAssemblyAI = (*Client)(nil)

// NewClient creates a new AssemblyAI client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:       apiKey,
		apiURL:       DefaultAPIURL,
		pollInterval: DefaultPollInterval,
		httpClient:   &http.Client{},
	}
}

// WithBaseURL overrides the API endpoint. Used in tests.
func (c *Client) WithBaseURL(url string) *Client {
	c.apiURL = url
	return c
}

// WithPollInterval overrides the transcript poll interval. Used in tests.
func (c *Client) WithPollInterval(d time.Duration) *Client {
	c.pollInterval = d
	return c
}

// Transcribe uploads the audio bytes, requests a transcript, and polls until
// the transcript reaches a terminal status or ctx is done.
func (c *Client) Transcribe(ctx context.Context, audio []byte) (string, error) {
	audioURL, err := c.upload(ctx, audio)
	if err != nil {
		return "", err
	}

	id, err := c.createTranscript(ctx, audioURL)
	if err != nil {
		return "", err
	}

	for {
		tr, err := c.getTranscript(ctx, id)
		if err != nil {
			return "", err
		}

		switch tr.Status {
		case statusCompleted:
			text := strings.TrimSpace(tr.Text)
			if text == "" {
				return "", ErrNoSpeech
			}
			return text, nil
		case statusError:
			return "", fmt.Errorf("assemblyai: transcription failed: %s", tr.Error)
		}

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("assemblyai: transcription aborted: %w", ctx.Err())
		case <-time.After(c.pollInterval):
		}
	}
}

// upload sends raw audio bytes and returns the hosted audio URL.
func (c *Client) upload(ctx context.Context, audio []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/upload", bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("assemblyai: failed to create upload request: %w", err)
	}
	httpReq.Header.Set("Authorization", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/octet-stream")

	var result uploadResponse
	if err := c.do(httpReq, &result); err != nil {
		return "", err
	}
	if result.UploadURL == "" {
		return "", fmt.Errorf("assemblyai: upload returned no URL")
	}
	return result.UploadURL, nil
}

// createTranscript submits a transcription job for the uploaded audio.
func (c *Client) createTranscript(ctx context.Context, audioURL string) (string, error) {
	body, err := json.Marshal(transcriptRequest{AudioURL: audioURL})
	if err != nil {
		return "", fmt.Errorf("assemblyai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/transcript", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("assemblyai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	var result transcriptResponse
	if err := c.do(httpReq, &result); err != nil {
		return "", err
	}
	if result.ID == "" {
		return "", fmt.Errorf("assemblyai: transcript job returned no id")
	}
	return result.ID, nil
}

// getTranscript fetches the current transcript state.
func (c *Client) getTranscript(ctx context.Context, id string) (*transcriptResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/transcript/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("assemblyai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", c.apiKey)

	var result transcriptResponse
	if err := c.do(httpReq, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("assemblyai: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("assemblyai: API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("assemblyai: failed to decode response: %w", err)
	}
	return nil
}
