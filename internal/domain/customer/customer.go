package customer

import (
	"time"
)

// Customer is the aggregate root for customer record management. It owns its
// product reference collection: references are persisted and removed together
// with the parent row.
type Customer struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	Code          string       `gorm:"type:varchar(50);not null" json:"code"`
	AccountNumber string       `gorm:"type:varchar(50);not null" json:"accountNumber"`
	Names         string       `gorm:"type:varchar(200);not null" json:"names"`
	Surname       string       `gorm:"type:varchar(200);not null" json:"surname"`
	Phone         string       `gorm:"type:varchar(50)" json:"phone"`
	Address       string       `gorm:"type:text" json:"address"`
	Products      []ProductRef `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"products"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// ProductRef links a customer to a product in the external catalog. Name and
// Description are a read-time projection: they start unset and are filled in
// during enrichment from the authoritative catalog record. The enrichment
// path never writes them back.
type ProductRef struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	CustomerID  uint   `gorm:"index;not null" json:"-"`
	ProductID   int64  `gorm:"not null" json:"product"`
	Name        string `gorm:"type:varchar(200)" json:"name,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

// TableName returns the table name for GORM
func (ProductRef) TableName() string {
	return "customer_products"
}

// Overwrite replaces every mutable field from the incoming record, including
// the whole product reference collection. Full replace, not a partial patch.
func (c *Customer) Overwrite(in *Customer) {
	c.Code = in.Code
	c.AccountNumber = in.AccountNumber
	c.Names = in.Names
	c.Surname = in.Surname
	c.Phone = in.Phone
	c.Address = in.Address
	c.Products = in.Products
	c.UpdatedAt = time.Now()
}
