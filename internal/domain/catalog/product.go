package catalog

import (
	"context"
)

// Product is the authoritative catalog record. It is owned and mutated only
// by the remote product service; this service consumes it read-only during
// enrichment.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ProductCatalog fetches the full product catalog from the remote product
// service. The boundary is otherwise opaque: transport, auth and retries
// belong to the implementation. A failed fetch propagates to the caller;
// there is no caching.
type ProductCatalog interface {
	FetchAll(ctx context.Context) ([]Product, error)
}
