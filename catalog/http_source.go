package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/config"
	"github.com/Mst-Sumi-Akter/Local-Service-Marketplace-Fixora/models"
)

// HTTPSource reads the catalog from an endpoint serving a JSON array of
// services, such as another Fixora API's GET /api/v1/services/all.
type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource creates a source for url. A nil client gets a 10s timeout.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPSource{
		url:    strings.TrimSpace(url),
		client: client,
	}
}

func (s *HTTPSource) ListServices(ctx context.Context) ([]models.Service, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog: upstream returned %d", resp.StatusCode)
	}

	services, skipped, err := DecodeServices(body)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		config.Log.Warnf("[catalog.http] skipped %d malformed services from %s", skipped, s.url)
	}
	return services, nil
}
