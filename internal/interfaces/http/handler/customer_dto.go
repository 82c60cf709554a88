package handler

import (
	customerapp "github.com/crm/backend/internal/application/customer"
)

// CustomerRequest is the request body for creating or replacing a customer.
// Business-required fields (names, surname, code, accountNumber) are not
// marked binding:required on purpose: their absence is a domain validation
// failure, not a malformed request.
type CustomerRequest struct {
	Code          string              `json:"code" binding:"omitempty,max=50"`
	AccountNumber string              `json:"accountNumber" binding:"omitempty,max=50"`
	Names         string              `json:"names" binding:"omitempty,max=200"`
	Surname       string              `json:"surname" binding:"omitempty,max=200"`
	Phone         string              `json:"phone" binding:"omitempty,max=50"`
	Address       string              `json:"address" binding:"omitempty,max=500"`
	Products      []ProductRefRequest `json:"products" binding:"omitempty,dive"`
}

// ProductRefRequest is one product reference in a customer request body
type ProductRefRequest struct {
	ProductID int64 `json:"product" binding:"required,gt=0"`
}

// ToPayload converts the request body to the application payload
func (r CustomerRequest) ToPayload() customerapp.CustomerPayload {
	refs := make([]customerapp.ProductRefPayload, len(r.Products))
	for i, p := range r.Products {
		refs[i] = customerapp.ProductRefPayload{ProductID: p.ProductID}
	}
	return customerapp.CustomerPayload{
		Code:          r.Code,
		AccountNumber: r.AccountNumber,
		Names:         r.Names,
		Surname:       r.Surname,
		Phone:         r.Phone,
		Address:       r.Address,
		Products:      refs,
	}
}
