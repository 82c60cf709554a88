package customer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/crm/backend/internal/domain/catalog"
	customerdom "github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
)

// EnrichmentService joins a locally stored customer with the remote product
// catalog. The two fetches run concurrently; the join waits for both and
// fails fast on the first error, so a response is never partially enriched.
// Enrichment is a read-time projection: it never writes.
type EnrichmentService struct {
	repo    customerdom.Repository
	catalog catalog.ProductCatalog
}

// NewEnrichmentService creates a new EnrichmentService
func NewEnrichmentService(repo customerdom.Repository, productCatalog catalog.ProductCatalog) *EnrichmentService {
	return &EnrichmentService{repo: repo, catalog: productCatalog}
}

// Enrich fetches the customer and the full product catalog in parallel, then
// resolves each product reference against the catalog by id equality. A
// reference with no catalog match keeps its display fields unset; that is
// not an error.
func (s *EnrichmentService) Enrich(ctx context.Context, id uint) (*CustomerResponse, error) {
	var (
		cust     *customerdom.Customer
		products []catalog.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.repo.FindByID(gctx, id)
		if err != nil {
			return err
		}
		cust = c
		return nil
	})
	g.Go(func() error {
		p, err := s.catalog.FetchAll(gctx)
		if err != nil {
			return shared.NewEnrichmentError(err)
		}
		products = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range cust.Products {
		ref := &cust.Products[i]
		for _, p := range products {
			if p.ID == ref.ProductID {
				ref.Name = p.Name
				ref.Description = p.Description
				break
			}
		}
	}

	resp := ToCustomerResponse(cust)
	return &resp, nil
}
