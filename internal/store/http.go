package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jmylchreest/tourkit/internal/model"
)

// DefaultHTTPTimeout bounds a single fetch when the caller's context has no
// deadline of its own.
const DefaultHTTPTimeout = 10 * time.Second

// maxThemeResponse caps the response body read from a theme endpoint.
const maxThemeResponse = 1 << 20

// HTTPSource fetches a JSON ThemeConfig from a URL.
type HTTPSource struct {
	URL     string
	Client  *http.Client
	Timeout time.Duration
	Header  http.Header
}

// NewHTTPSource creates an HTTPSource using http.DefaultClient.
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{
		URL:     url,
		Client:  http.DefaultClient,
		Timeout: DefaultHTTPTimeout,
	}
}

// GetThemeConfig implements theme.Source.
func (s *HTTPSource) GetThemeConfig(ctx context.Context) (*model.ThemeConfig, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for k, vs := range s.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch theme config: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch theme config: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxThemeResponse))
	if err != nil {
		return nil, fmt.Errorf("failed to read theme config: %w", err)
	}

	var cfg model.ThemeConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse theme config: %w", err)
	}
	return &cfg, nil
}
