// Package partner holds the customer model and its read projections.
package partner

import (
	"github.com/google/uuid"
)

// Customer is a billed party. Its ID never changes after creation.
type Customer struct {
	ID       uuid.UUID
	Name     string
	Email    string
	ImageURL string
}

// NewCustomer creates a customer with a freshly generated ID.
func NewCustomer(name, email, imageURL string) *Customer {
	return &Customer{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		ImageURL: imageURL,
	}
}

// CustomerUpdate carries the fields of a partial update.
// A nil field is left untouched.
type CustomerUpdate struct {
	Name     *string
	Email    *string
	ImageURL *string
}

// IsEmpty reports whether no field was supplied.
func (u CustomerUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.ImageURL == nil
}

// Apply copies the supplied fields onto c.
func (u CustomerUpdate) Apply(c *Customer) {
	if u.Name != nil {
		c.Name = *u.Name
	}
	if u.Email != nil {
		c.Email = *u.Email
	}
	if u.ImageURL != nil {
		c.ImageURL = *u.ImageURL
	}
}

// Columns returns the supplied fields keyed by column name.
func (u CustomerUpdate) Columns() map[string]any {
	cols := make(map[string]any, 3)
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Email != nil {
		cols["email"] = *u.Email
	}
	if u.ImageURL != nil {
		cols["image_url"] = *u.ImageURL
	}
	return cols
}

// CustomerSummary is a customer with its invoice aggregates.
// All totals are zero for a customer without invoices.
type CustomerSummary struct {
	ID            uuid.UUID
	Name          string
	Email         string
	ImageURL      string
	TotalInvoices int64
	TotalPending  int64
	TotalPaid     int64
}
