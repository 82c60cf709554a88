package customer

import (
	"errors"
	"testing"

	"github.com/crm/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func validCustomer() *Customer {
	return &Customer{
		Code:          "CUST-001",
		AccountNumber: "ACC-1001",
		Names:         "Ada",
		Surname:       "Lovelace",
		Phone:         "555-0100",
		Address:       "12 Analytical Way",
	}
}

func TestMissingFields_AllPresent(t *testing.T) {
	assert.Empty(t, MissingFields(validCustomer()))
	assert.False(t, RequiredFieldsMissing(validCustomer()))
}

func TestMissingFields_EachRequiredField(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Customer)
		want   string
	}{
		{"names", func(c *Customer) { c.Names = "" }, "names"},
		{"surname", func(c *Customer) { c.Surname = "" }, "surname"},
		{"code", func(c *Customer) { c.Code = "" }, "code"},
		{"account number", func(c *Customer) { c.AccountNumber = "" }, "accountNumber"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCustomer()
			tc.mutate(c)
			assert.True(t, RequiredFieldsMissing(c))
			assert.Equal(t, []string{tc.want}, MissingFields(c))
		})
	}
}

func TestMissingFields_OptionalFieldsNotRequired(t *testing.T) {
	c := validCustomer()
	c.Phone = ""
	c.Address = ""
	assert.False(t, RequiredFieldsMissing(c))
}

func TestValidateForWrite(t *testing.T) {
	t.Run("valid customer passes", func(t *testing.T) {
		assert.NoError(t, ValidateForWrite(validCustomer(), "create customer"))
	})

	t.Run("missing fields yield validation error naming the operation", func(t *testing.T) {
		c := validCustomer()
		c.Names = ""
		c.Code = ""

		err := ValidateForWrite(c, "create customer")
		assert.Error(t, err)

		var domainErr *shared.DomainError
		assert.True(t, errors.As(err, &domainErr))
		assert.Equal(t, shared.CodeValidation, domainErr.Code)
		assert.Contains(t, domainErr.Message, "create customer")
		assert.Contains(t, domainErr.Message, "names")
		assert.Contains(t, domainErr.Message, "code")
	})

	t.Run("empty customer reports every required field", func(t *testing.T) {
		err := ValidateForWrite(&Customer{}, "update customer")
		var domainErr *shared.DomainError
		assert.True(t, errors.As(err, &domainErr))
		assert.Contains(t, domainErr.Message, "names, surname, code, accountNumber")
	})
}
