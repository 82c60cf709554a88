package customer

import (
	"github.com/crm/backend/internal/domain/shared"
)

// requiredFields maps field names to accessors, in the order they are
// reported when missing.
var requiredFields = []struct {
	name string
	get  func(*Customer) string
}{
	{"names", func(c *Customer) string { return c.Names }},
	{"surname", func(c *Customer) string { return c.Surname }},
	{"code", func(c *Customer) string { return c.Code }},
	{"accountNumber", func(c *Customer) string { return c.AccountNumber }},
}

// MissingFields returns the names of mandatory fields that are empty.
// Pure; no side effects, no I/O.
func MissingFields(c *Customer) []string {
	var missing []string
	for _, f := range requiredFields {
		if f.get(c) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// RequiredFieldsMissing reports whether any mandatory identity or contact
// field is absent from the record.
func RequiredFieldsMissing(c *Customer) bool {
	return len(MissingFields(c)) > 0
}

// ValidateForWrite guards the write path: it returns a validation error
// naming the offending operation when any required field is missing. Called
// before every create and update, before any transaction opens.
func ValidateForWrite(c *Customer, op string) error {
	if missing := MissingFields(c); len(missing) > 0 {
		return shared.NewValidationError(op, missing)
	}
	return nil
}
