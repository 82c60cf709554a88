package customer

import (
	"time"

	customerdom "github.com/crm/backend/internal/domain/customer"
)

// CustomerPayload carries the full set of writable customer fields. The same
// shape is used for create and update since update is a full replace.
type CustomerPayload struct {
	Code          string
	AccountNumber string
	Names         string
	Surname       string
	Phone         string
	Address       string
	Products      []ProductRefPayload
}

// ProductRefPayload carries one product reference from the caller
type ProductRefPayload struct {
	ProductID   int64
	Name        string
	Description string
}

// ToEntity converts the payload to a domain entity
func (p CustomerPayload) ToEntity() *customerdom.Customer {
	refs := make([]customerdom.ProductRef, len(p.Products))
	for i, r := range p.Products {
		refs[i] = customerdom.ProductRef{
			ProductID:   r.ProductID,
			Name:        r.Name,
			Description: r.Description,
		}
	}
	return &customerdom.Customer{
		Code:          p.Code,
		AccountNumber: p.AccountNumber,
		Names:         p.Names,
		Surname:       p.Surname,
		Phone:         p.Phone,
		Address:       p.Address,
		Products:      refs,
	}
}

// CustomerResponse is the application-level view of a customer
type CustomerResponse struct {
	ID            uint                 `json:"id"`
	Code          string               `json:"code"`
	AccountNumber string               `json:"accountNumber"`
	Names         string               `json:"names"`
	Surname       string               `json:"surname"`
	Phone         string               `json:"phone"`
	Address       string               `json:"address"`
	Products      []ProductRefResponse `json:"products"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// ProductRefResponse is one product reference in a customer response. Name
// and description stay empty unless the enrichment read populated them.
type ProductRefResponse struct {
	ProductID   int64  `json:"product"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(c *customerdom.Customer) CustomerResponse {
	refs := make([]ProductRefResponse, len(c.Products))
	for i, r := range c.Products {
		refs[i] = ProductRefResponse{
			ProductID:   r.ProductID,
			Name:        r.Name,
			Description: r.Description,
		}
	}
	return CustomerResponse{
		ID:            c.ID,
		Code:          c.Code,
		AccountNumber: c.AccountNumber,
		Names:         c.Names,
		Surname:       c.Surname,
		Phone:         c.Phone,
		Address:       c.Address,
		Products:      refs,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// ToCustomerResponses converts a slice of domain customers
func ToCustomerResponses(customers []customerdom.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i := range customers {
		out[i] = ToCustomerResponse(&customers[i])
	}
	return out
}
