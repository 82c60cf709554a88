package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	catalogdom "github.com/crm/backend/internal/domain/catalog"
	"github.com/crm/backend/internal/infrastructure/config"
)

// maxResponseSize is the maximum allowed response size from the product
// service (10MB)
const maxResponseSize = 10 * 1024 * 1024

// HTTPProductCatalog implements catalog.ProductCatalog against the remote
// product service's REST API
type HTTPProductCatalog struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPProductCatalog creates a catalog client from configuration
func NewHTTPProductCatalog(cfg *config.CatalogConfig) *HTTPProductCatalog {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPProductCatalog{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchAll retrieves the full product list from the remote service
func (c *HTTPProductCatalog) FetchAll(ctx context.Context) ([]catalogdom.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/product", nil)
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("catalog: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("catalog: HTTP %d", resp.StatusCode)
	}

	var products []catalogdom.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("catalog: failed to decode response: %w", err)
	}
	return products, nil
}
