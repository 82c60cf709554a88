package persistence

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	customerdom "github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
)

func setupCustomerTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// single connection keeps the in-memory database alive and serializes
	// concurrent writers
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&customerdom.Customer{}, &customerdom.ProductRef{})
	require.NoError(t, err)

	return db
}

func testCustomer(code string) *customerdom.Customer {
	return &customerdom.Customer{
		Code:          code,
		AccountNumber: "ACC-" + code,
		Names:         "Ada",
		Surname:       "Lovelace",
		Phone:         "555-0100",
		Address:       "12 Analytical Way",
		Products: []customerdom.ProductRef{
			{ProductID: 1},
			{ProductID: 2},
		},
	}
}

func TestGormCustomerRepository_CreateAndFindByID(t *testing.T) {
	repo := NewGormCustomerRepository(setupCustomerTestDB(t))
	ctx := context.Background()

	c := testCustomer("CUST-001")
	require.NoError(t, repo.Create(ctx, c))
	assert.NotZero(t, c.ID)

	found, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "CUST-001", found.Code)
	assert.Equal(t, "ACC-CUST-001", found.AccountNumber)
	assert.Equal(t, "Ada", found.Names)
	assert.Len(t, found.Products, 2)
	assert.Equal(t, int64(1), found.Products[0].ProductID)
}

func TestGormCustomerRepository_FindByID_NotFound(t *testing.T) {
	repo := NewGormCustomerRepository(setupCustomerTestDB(t))

	found, err := repo.FindByID(context.Background(), 999)
	assert.Nil(t, found)
	assert.Equal(t, shared.ErrNotFound, err)
}

func TestGormCustomerRepository_FindAll_EagerlyLoadsProducts(t *testing.T) {
	repo := NewGormCustomerRepository(setupCustomerTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testCustomer("CUST-001")))
	require.NoError(t, repo.Create(ctx, testCustomer("CUST-002")))

	customers, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)
	for _, c := range customers {
		assert.Len(t, c.Products, 2)
	}
}

func TestGormCustomerRepository_Update_FullReplace(t *testing.T) {
	repo := NewGormCustomerRepository(setupCustomerTestDB(t))
	ctx := context.Background()

	c := testCustomer("CUST-001")
	require.NoError(t, repo.Create(ctx, c))

	incoming := &customerdom.Customer{
		ID:            c.ID,
		Code:          "CUST-001-R",
		AccountNumber: "ACC-NEW",
		Names:         "Grace",
		Surname:       "Hopper",
		Phone:         "",
		Address:       "",
		Products: []customerdom.ProductRef{
			{ProductID: 9},
		},
	}

	updated, err := repo.Update(ctx, incoming)
	require.NoError(t, err)
	assert.Equal(t, "CUST-001-R", updated.Code)
	assert.Equal(t, "Grace", updated.Names)

	// the reference collection is replaced wholesale, not merged
	found, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, found.Products, 1)
	assert.Equal(t, int64(9), found.Products[0].ProductID)

	var refCount int64
	require.NoError(t, repo.db.Model(&customerdom.ProductRef{}).Count(&refCount).Error)
	assert.Equal(t, int64(1), refCount)
}

func TestGormCustomerRepository_Update_NotFoundLeavesStoreUnchanged(t *testing.T) {
	repo := NewGormCustomerRepository(setupCustomerTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testCustomer("CUST-001")))
	before, err := repo.FindAll(ctx)
	require.NoError(t, err)

	missing := testCustomer("CUST-404")
	missing.ID = 999
	updated, err := repo.Update(ctx, missing)
	assert.Nil(t, updated)
	assert.Equal(t, shared.ErrNotFound, err)

	after, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestGormCustomerRepository_Delete_CascadesToProducts(t *testing.T) {
	repo := NewGormCustomerRepository(setupCustomerTestDB(t))
	ctx := context.Background()

	c := testCustomer("CUST-001")
	require.NoError(t, repo.Create(ctx, c))

	deleted, err := repo.Delete(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.FindByID(ctx, c.ID)
	assert.Equal(t, shared.ErrNotFound, err)

	var refCount int64
	require.NoError(t, repo.db.Model(&customerdom.ProductRef{}).Count(&refCount).Error)
	assert.Zero(t, refCount)
}

func TestGormCustomerRepository_Delete_MissingRow(t *testing.T) {
	repo := NewGormCustomerRepository(setupCustomerTestDB(t))

	deleted, err := repo.Delete(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestGormCustomerRepository_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	repo := NewGormCustomerRepository(setupCustomerTestDB(t))
	ctx := context.Background()

	const n = 8
	customers := make([]*customerdom.Customer, n)
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		c := testCustomer("CUST-00" + string(rune('0'+i)))
		customers[i] = c
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Create(ctx, customers[i])
		}(i)
	}
	wg.Wait()

	seen := make(map[uint]bool)
	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		assert.False(t, seen[customers[i].ID], "id %d assigned twice", customers[i].ID)
		seen[customers[i].ID] = true
	}
}
