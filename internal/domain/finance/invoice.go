// Package finance holds invoices, their aggregates and monthly revenue.
package finance

import (
	"time"

	"github.com/google/uuid"
)

// Known invoice statuses. Status is free text in storage; only these two
// values take part in the paid/pending aggregates.
const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"
)

// DateLayout is the wire and storage format of invoice dates.
const DateLayout = "2006-01-02"

// Invoice is an amount in minor currency units billed to one customer.
type Invoice struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Amount     int64
	Status     string
	Date       time.Time
}

// NewInvoice creates an invoice with a freshly generated ID. The date is
// truncated to a calendar day in UTC.
func NewInvoice(customerID uuid.UUID, amount int64, status string, date time.Time) *Invoice {
	return &Invoice{
		ID:         uuid.New(),
		CustomerID: customerID,
		Amount:     amount,
		Status:     status,
		Date:       TruncateDate(date),
	}
}

// TruncateDate drops the time of day, keeping the calendar date.
func TruncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// InvoiceUpdate carries the fields of a partial update.
// A nil field is left untouched.
type InvoiceUpdate struct {
	CustomerID *uuid.UUID
	Amount     *int64
	Status     *string
	Date       *time.Time
}

// IsEmpty reports whether no field was supplied.
func (u InvoiceUpdate) IsEmpty() bool {
	return u.CustomerID == nil && u.Amount == nil && u.Status == nil && u.Date == nil
}

// Apply copies the supplied fields onto inv.
func (u InvoiceUpdate) Apply(inv *Invoice) {
	if u.CustomerID != nil {
		inv.CustomerID = *u.CustomerID
	}
	if u.Amount != nil {
		inv.Amount = *u.Amount
	}
	if u.Status != nil {
		inv.Status = *u.Status
	}
	if u.Date != nil {
		inv.Date = TruncateDate(*u.Date)
	}
}

// Columns returns the supplied fields keyed by column name.
func (u InvoiceUpdate) Columns() map[string]any {
	cols := make(map[string]any, 4)
	if u.CustomerID != nil {
		cols["customer_id"] = *u.CustomerID
	}
	if u.Amount != nil {
		cols["amount"] = *u.Amount
	}
	if u.Status != nil {
		cols["status"] = *u.Status
	}
	if u.Date != nil {
		cols["date"] = TruncateDate(*u.Date)
	}
	return cols
}

// InvoiceRow is an invoice joined with the customer it is billed to.
type InvoiceRow struct {
	ID               uuid.UUID
	CustomerID       uuid.UUID
	Amount           int64
	Status           string
	Date             time.Time
	CustomerName     string
	CustomerEmail    string
	CustomerImageURL string
}

// StatusTotals sums invoice amounts per known status.
type StatusTotals struct {
	Paid    int64
	Pending int64
}
