package persistence

import (
	"context"
	"errors"

	customerdom "github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCustomerRepository implements customer.Repository using GORM. Every
// write operation runs inside one explicit transaction so a customer row and
// its product reference rows commit or roll back together.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindAll returns all customers with product references eagerly loaded
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]customerdom.Customer, error) {
	var customers []customerdom.Customer
	if err := r.db.WithContext(ctx).
		Preload("Products").
		Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

// FindByID finds a customer by id with product references eagerly loaded
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uint) (*customerdom.Customer, error) {
	var c customerdom.Customer
	if err := r.db.WithContext(ctx).
		Preload("Products").
		First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create persists the customer and its product references in one transaction
// and assigns the identity
func (r *GormCustomerRepository) Create(ctx context.Context, c *customerdom.Customer) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(c).Error
	})
	if err != nil {
		return shared.NewPersistenceError("create customer", err)
	}
	return nil
}

// Update overwrites every mutable field of the stored customer and replaces
// the whole product reference collection. Returns shared.ErrNotFound without
// side effects when the id does not exist.
func (r *GormCustomerRepository) Update(ctx context.Context, c *customerdom.Customer) (*customerdom.Customer, error) {
	var updated *customerdom.Customer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing customerdom.Customer
		if err := tx.First(&existing, "id = ?", c.ID).Error; err != nil {
			return err
		}

		// full replace: old references go away with the incoming set taking
		// their place inside the same transaction
		if err := tx.Where("customer_id = ?", existing.ID).
			Delete(&customerdom.ProductRef{}).Error; err != nil {
			return err
		}

		existing.Overwrite(c)
		for i := range existing.Products {
			existing.Products[i].ID = 0
			existing.Products[i].CustomerID = existing.ID
		}
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		updated = &existing
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, shared.NewPersistenceError("update customer", err)
	}
	return updated, nil
}

// Delete removes the customer and its product references in one transaction.
// Reports whether a row was actually removed.
func (r *GormCustomerRepository) Delete(ctx context.Context, id uint) (bool, error) {
	deleted := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("customer_id = ?", id).
			Delete(&customerdom.ProductRef{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&customerdom.Customer{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, shared.NewPersistenceError("delete customer", err)
	}
	return deleted, nil
}
