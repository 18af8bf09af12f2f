// Package chartclient talks to the external chart/image rendering service.
// The renderer accepts a chart configuration and returns a raster image; its
// internals are out of scope here.
package chartclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client renders charts through an external QuickChart-compatible endpoint.
type Client struct {
	rendererURL string
	httpClient  *http.Client
}

// NewClient creates a chart renderer client.
func NewClient(rendererURL string, timeout time.Duration) *Client {
	return &Client{
		rendererURL: rendererURL,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

type chartRequest struct {
	Chart  chartConfig `json:"chart"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Format string      `json:"format"`
}

type chartConfig struct {
	Type string    `json:"type"`
	Data chartData `json:"data"`
}

type chartData struct {
	Labels   []string       `json:"labels"`
	Datasets []chartDataset `json:"datasets"`
}

type chartDataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// RenderBarChart renders a labeled bar chart and returns the raw image bytes.
func (c *Client) RenderBarChart(ctx context.Context, title string, labels []string, values []float64) ([]byte, error) {
	if len(labels) != len(values) {
		return nil, fmt.Errorf("labels/values length mismatch: %d != %d", len(labels), len(values))
	}

	payload := chartRequest{
		Chart: chartConfig{
			Type: "bar",
			Data: chartData{
				Labels: labels,
				Datasets: []chartDataset{
					{Label: title, Data: values},
				},
			},
		},
		Width:  800,
		Height: 400,
		Format: "png",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chart request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rendererURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chart renderer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chart renderer returned status %d", resp.StatusCode)
	}

	img, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read chart image: %w", err)
	}
	return img, nil
}
