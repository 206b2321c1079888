package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"flare/internal/domain"
)

// Client resolves a coordinate fix to a human-readable address using a
// Nominatim-compatible reverse geocoding endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Resolve reverse-geocodes the coordinate. An empty string with nil error
// means the provider had no address for the fix.
func (c *Client) Resolve(ctx context.Context, coord domain.Coordinate) (string, error) {
	params := url.Values{
		"lat":    {fmt.Sprintf("%.6f", coord.Lat)},
		"lon":    {fmt.Sprintf("%.6f", coord.Lng)},
		"format": {"jsonv2"},
	}
	fullURL := c.baseURL + "/reverse?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("geocoder API error: status %d: %s", resp.StatusCode, body)
	}

	var decoded response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return decoded.DisplayName, nil
}

type response struct {
	DisplayName string `json:"display_name"`
}
