package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewInvoice_TruncatesDate(t *testing.T) {
	customerID := uuid.New()
	issued := time.Date(2024, 3, 15, 17, 45, 0, 0, time.FixedZone("CET", 3600))

	inv := NewInvoice(customerID, 1250, InvoiceStatusPending, issued)

	assert.NotEqual(t, uuid.Nil, inv.ID)
	assert.Equal(t, customerID, inv.CustomerID)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), inv.Date)
	assert.Equal(t, "2024-03-15", inv.Date.Format(DateLayout))
}

func TestInvoiceUpdate(t *testing.T) {
	inv := NewInvoice(uuid.New(), 100, InvoiceStatusPending, time.Now())
	status := InvoiceStatusPaid

	update := InvoiceUpdate{Status: &status}
	update.Apply(inv)

	assert.Equal(t, InvoiceStatusPaid, inv.Status)
	assert.EqualValues(t, 100, inv.Amount)
	assert.Equal(t, map[string]any{"status": "paid"}, update.Columns())
	assert.False(t, update.IsEmpty())
	assert.True(t, InvoiceUpdate{}.IsEmpty())
}

func TestRevenueUpdate(t *testing.T) {
	amount := int64(4200)

	assert.True(t, RevenueUpdate{}.IsEmpty())
	assert.Equal(t, map[string]any{"revenue": int64(4200)}, RevenueUpdate{Revenue: &amount}.Columns())
}
