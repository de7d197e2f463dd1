package cvextract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/config"
	"github.com/staffhub/staffhub-backend-go/internal/domain/candidate"
)

// Client calls the external CV extraction service. The service does its
// best with whatever document it gets; a non-2xx response means the file
// could not be read at all.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg config.CVExtractorConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Extract implements candidate.Extractor.
func (c *Client) Extract(ctx context.Context, cv []byte) (candidate.Extraction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/extract", bytes.NewReader(cv))
	if err != nil {
		return candidate.Extraction{}, fmt.Errorf("failed to build extraction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return candidate.Extraction{}, fmt.Errorf("extraction request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return candidate.Extraction{}, fmt.Errorf("extraction service returned %d: %s", resp.StatusCode, string(body))
	}

	var extraction candidate.Extraction
	if err := json.NewDecoder(resp.Body).Decode(&extraction); err != nil {
		// A garbled body still counts as a partial result; the caller
		// falls back to defaults for every field.
		return candidate.Extraction{}, nil
	}

	return extraction, nil
}
