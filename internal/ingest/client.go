package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/admVeloHub/call-analytics/internal/types"
)

// maxBodyBytes caps how much of the export we are willing to read (32 MiB)
const maxBodyBytes = 32 << 20

// HTTPClient is the subset of http.Client the source client needs
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// SourceClient pulls the call-record export from the configured endpoint.
// The endpoint is an opaque collaborator; all we assume is that it answers
// with a JSON array of rows in either supported shape.
type SourceClient struct {
	url    string
	httpc  HTTPClient
	logger zerolog.Logger
}

// NewSourceClient creates a SourceClient for the given export URL
func NewSourceClient(url string, timeout time.Duration, logger zerolog.Logger) *SourceClient {
	return &SourceClient{
		url:    url,
		httpc:  &http.Client{Timeout: timeout},
		logger: logger.With().Str("component", "source_client").Logger(),
	}
}

// Fetch downloads and adapts the full record collection
func (c *SourceClient) Fetch(ctx context.Context) ([]types.CallRecord, error) {
	if c.url == "" {
		return nil, fmt.Errorf("no source url configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build source request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach record source: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("record source returned %d: %s", resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read source response: %w", err)
	}

	records, err := DecodeRows(data)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Int("records", len(records)).Msg("fetched record export")
	return records, nil
}
