package claude

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tripfolio/internal/config"
	"tripfolio/internal/domain"
	"tripfolio/internal/parser"
	"tripfolio/internal/port"
)

const (
	apiURL     = "https://api.anthropic.com/v1/messages"
	apiVersion = "2023-06-01"

	// Booking documents are small; a low ceiling caps cost and latency.
	maxTokens = 1024
)

// Client implements port.DocumentExtractor against the Anthropic Messages
// API. The API credential is taken from each ExtractInput, never stored.
type Client struct {
	model    string
	endpoint string
	client   *http.Client
}

// NewClient creates an extraction client from config. An empty endpoint in
// the config selects the production API URL.
func NewClient(cfg *config.ExtractorConfig) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = apiURL
	}
	return newClient(cfg, endpoint)
}

// NewClientWithEndpoint creates a client pointing at a custom API endpoint
// (for testing).
func NewClientWithEndpoint(cfg *config.ExtractorConfig, endpoint string) *Client {
	return newClient(cfg, endpoint)
}

func newClient(cfg *config.ExtractorConfig, endpoint string) *Client {
	model := cfg.Model
	if model == "" {
		model = "claude-sonnet-4-20250514"
	}
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &Client{
		model:    model,
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Extract issues one synchronous request to the provider and returns the
// model's raw text answer. There is no retry: a failed attempt is terminal
// and re-upload is a manual user action.
func (c *Client) Extract(ctx context.Context, input port.ExtractInput) (string, error) {
	blocks := buildContentBlocks(input)

	reqBody := map[string]interface{}{
		"model":      c.model,
		"max_tokens": maxTokens,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": blocks,
			},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", input.Credential)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: calling provider: %v", domain.ErrExtractionFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", domain.ErrExtractionFailed, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return "", fmt.Errorf("%w: provider rejected the API key", domain.ErrInvalidCredential)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: provider status %d: %s",
			domain.ErrExtractionFailed, resp.StatusCode, truncate(string(respBody), 500))
	}

	return extractText(respBody)
}

// buildContentBlocks base64-encodes the file and tags it with its media type
// so the provider distinguishes image from document input, then appends the
// fixed instruction prompt.
func buildContentBlocks(input port.ExtractInput) []map[string]interface{} {
	encoded := base64.StdEncoding.EncodeToString(input.FileBytes)

	blockType := "image"
	if input.ContentType == "application/pdf" {
		blockType = "document"
	}

	return []map[string]interface{}{
		{
			"type": blockType,
			"source": map[string]interface{}{
				"type":       "base64",
				"media_type": input.ContentType,
				"data":       encoded,
			},
		},
		{
			"type": "text",
			"text": parser.BuildBookingPrompt(),
		},
	}
}

// apiResponse models the Anthropic Messages API response.
type apiResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func extractText(body []byte) (string, error) {
	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: unmarshaling response: %v", domain.ErrExtractionFailed, err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("%w: empty response from provider", domain.ErrExtractionFailed)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
