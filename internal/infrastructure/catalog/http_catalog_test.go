package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crm/backend/internal/infrastructure/config"
)

func newTestCatalog(t *testing.T, handler http.HandlerFunc) *HTTPProductCatalog {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewHTTPProductCatalog(&config.CatalogConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
	})
}

func TestHTTPProductCatalog_FetchAll(t *testing.T) {
	client := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/product", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Widget", "description": "A widget"},
			{"id": 2, "name": "Gadget", "description": "A gadget"}
		]`))
	})

	products, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Widget", products[0].Name)
	assert.Equal(t, "Gadget", products[1].Name)
}

func TestHTTPProductCatalog_FetchAll_EmptyList(t *testing.T) {
	client := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	products, err := client.FetchAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestHTTPProductCatalog_FetchAll_ServerError(t *testing.T) {
	client := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	products, err := client.FetchAll(context.Background())
	assert.Nil(t, products)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestHTTPProductCatalog_FetchAll_MalformedBody(t *testing.T) {
	client := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "a list"}`))
	})

	products, err := client.FetchAll(context.Background())
	assert.Nil(t, products)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestHTTPProductCatalog_FetchAll_ContextCancelled(t *testing.T) {
	client := newTestCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	products, err := client.FetchAll(ctx)
	assert.Nil(t, products)
	require.Error(t, err)
}
