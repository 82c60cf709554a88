package customer

import (
	"context"
)

// Repository defines the interface for customer persistence. Every write
// operation runs inside a single transaction: a customer and its product
// references are committed together or not at all.
type Repository interface {
	// FindAll returns all customers with product references eagerly loaded
	FindAll(ctx context.Context) ([]Customer, error)

	// FindByID finds a customer by id with product references eagerly loaded.
	// Returns shared.ErrNotFound when no row matches.
	FindByID(ctx context.Context, id uint) (*Customer, error)

	// Create persists the customer and its product references atomically and
	// assigns the identity
	Create(ctx context.Context, c *Customer) error

	// Update overwrites every mutable field of the stored entity, replacing
	// the whole product reference collection. Returns shared.ErrNotFound
	// without side effects when the id does not exist.
	Update(ctx context.Context, c *Customer) (*Customer, error)

	// Delete removes the customer and cascades to its product references.
	// Reports whether a row was actually removed.
	Delete(ctx context.Context, id uint) (bool, error)
}
