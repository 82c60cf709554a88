package customer

import (
	"context"

	customerdom "github.com/crm/backend/internal/domain/customer"
)

// CustomerService handles customer record operations. Validation runs before
// any write-path transaction opens, so a rejected payload never touches the
// store.
type CustomerService struct {
	repo customerdom.Repository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(repo customerdom.Repository) *CustomerService {
	return &CustomerService{repo: repo}
}

// List returns all stored customers with their product references
func (s *CustomerService) List(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToCustomerResponses(customers), nil
}

// Create validates the payload and persists a new customer atomically,
// returning the stored entity with its assigned id.
func (s *CustomerService) Create(ctx context.Context, req CustomerPayload) (*CustomerResponse, error) {
	c := req.ToEntity()
	if err := customerdom.ValidateForWrite(c, "create customer"); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(c)
	return &resp, nil
}

// GetByID retrieves a customer by id
func (s *CustomerService) GetByID(ctx context.Context, id uint) (*CustomerResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(c)
	return &resp, nil
}

// Update validates the payload, then overwrites every mutable field of the
// stored customer including the product reference collection. A missing id
// surfaces as not-found with no side effects.
func (s *CustomerService) Update(ctx context.Context, id uint, req CustomerPayload) (*CustomerResponse, error) {
	c := req.ToEntity()
	c.ID = id
	if err := customerdom.ValidateForWrite(c, "update customer"); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, err
	}

	resp := ToCustomerResponse(updated)
	return &resp, nil
}

// Delete removes a customer and its product references. Reports whether a
// row was actually removed so the caller can map found vs not-found.
func (s *CustomerService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.repo.Delete(ctx, id)
}
