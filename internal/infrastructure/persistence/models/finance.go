package models

import (
	"time"

	"github.com/dashboard/backend/internal/domain/finance"
	"github.com/google/uuid"
)

// InvoiceModel is the persistence model for the Invoice domain entity.
// The customer reference is a plain column; there are no GORM associations.
type InvoiceModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount     int64     `gorm:"not null"`
	Status     string    `gorm:"type:text;not null"`
	Date       time.Time `gorm:"type:date;not null"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() *finance.Invoice {
	return &finance.Invoice{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Amount:     m.Amount,
		Status:     m.Status,
		Date:       finance.TruncateDate(m.Date),
	}
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(inv *finance.Invoice) {
	m.ID = inv.ID
	m.CustomerID = inv.CustomerID
	m.Amount = inv.Amount
	m.Status = inv.Status
	m.Date = finance.TruncateDate(inv.Date)
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice entity.
func InvoiceModelFromDomain(inv *finance.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(inv)
	return m
}

// InvoiceRow receives one row of the invoice/customer join.
type InvoiceRow struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	Amount           int64
	Status           string
	Date             time.Time
	CustomerName     string
	CustomerEmail    string
	CustomerImageURL string `gorm:"column:customer_image_url"`
}

// ToDomain converts the row to a domain InvoiceRow.
func (r *InvoiceRow) ToDomain() finance.InvoiceRow {
	return finance.InvoiceRow{
		ID:               r.ID,
		CustomerID:       r.CustomerID,
		Amount:           r.Amount,
		Status:           r.Status,
		Date:             finance.TruncateDate(r.Date),
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		CustomerImageURL: r.CustomerImageURL,
	}
}

// RevenueModel is the persistence model for monthly revenue.
type RevenueModel struct {
	Month   string `gorm:"type:text;primaryKey"`
	Revenue int64  `gorm:"not null"`
}

// TableName returns the table name for GORM
func (RevenueModel) TableName() string {
	return "revenue"
}

// ToDomain converts the persistence model to a domain Revenue.
func (m *RevenueModel) ToDomain() *finance.Revenue {
	return &finance.Revenue{
		Month:   m.Month,
		Revenue: m.Revenue,
	}
}
