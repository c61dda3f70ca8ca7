package models

import (
	"github.com/dashboard/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:text;not null"`
	Email    string    `gorm:"type:text;not null"`
	ImageURL string    `gorm:"column:image_url;type:text;not null"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		ImageURL: m.ImageURL,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.ID = c.ID
	m.Name = c.Name
	m.Email = c.Email
	m.ImageURL = c.ImageURL
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// CustomerSummaryRow receives one row of the grouped customer/invoice aggregation.
type CustomerSummaryRow struct {
	ID            uuid.UUID
	Name          string
	Email         string
	ImageURL      string `gorm:"column:image_url"`
	TotalInvoices int64
	TotalPending  int64
	TotalPaid     int64
}

// ToDomain converts the row to a domain CustomerSummary.
func (r *CustomerSummaryRow) ToDomain() partner.CustomerSummary {
	return partner.CustomerSummary{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		ImageURL:      r.ImageURL,
		TotalInvoices: r.TotalInvoices,
		TotalPending:  r.TotalPending,
		TotalPaid:     r.TotalPaid,
	}
}
