package persistence

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	customerdom "github.com/crm/backend/internal/domain/customer"
	"github.com/crm/backend/internal/domain/shared"
)

// newMockCustomerRepository creates a GormCustomerRepository with a mocked SQL
// connection for driving failure paths
func newMockCustomerRepository(t *testing.T) (*GormCustomerRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormCustomerRepository(gormDB), mock, mockDB
}

func TestGormCustomerRepository_FindAll_QueryFailure(t *testing.T) {
	repo, mock, mockDB := newMockCustomerRepository(t)
	defer mockDB.Close()

	driverErr := errors.New("connection reset by peer")
	mock.ExpectQuery(`SELECT \* FROM "customers"`).WillReturnError(driverErr)

	customers, err := repo.FindAll(context.Background())
	assert.Nil(t, customers)
	assert.ErrorIs(t, err, driverErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCustomerRepository_Create_RollsBackOnFailure(t *testing.T) {
	repo, mock, mockDB := newMockCustomerRepository(t)
	defer mockDB.Close()

	driverErr := errors.New("disk full")
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "customers"`).WillReturnError(driverErr)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &customerdom.Customer{
		Code:          "CUST-001",
		AccountNumber: "ACC-001",
		Names:         "Ada",
		Surname:       "Lovelace",
	})

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodePersistence, domainErr.Code)
	assert.ErrorIs(t, err, driverErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCustomerRepository_Delete_RollsBackOnFailure(t *testing.T) {
	repo, mock, mockDB := newMockCustomerRepository(t)
	defer mockDB.Close()

	driverErr := errors.New("lock timeout")
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "customer_products"`).WillReturnError(driverErr)
	mock.ExpectRollback()

	deleted, err := repo.Delete(context.Background(), 7)
	assert.False(t, deleted)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodePersistence, domainErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
