package finance

import (
	"context"

	"github.com/dashboard/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindByID returns shared.ErrNotFound when no invoice has the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindAll returns every invoice, most recent first.
	FindAll(ctx context.Context) ([]Invoice, error)

	// ListRows returns one page of invoices joined with their customer,
	// filtered by q.Search and ordered by date then id, both descending.
	ListRows(ctx context.Context, q shared.ListQuery) ([]InvoiceRow, error)

	// CountMatching counts joined invoice rows matching search.
	CountMatching(ctx context.Context, search string) (int64, error)

	// Latest returns the limit most recent invoices joined with their customer.
	Latest(ctx context.Context, limit int) ([]InvoiceRow, error)

	// StatusTotals sums amounts of paid and pending invoices.
	StatusTotals(ctx context.Context) (StatusTotals, error)

	// Create inserts a new invoice.
	Create(ctx context.Context, invoice *Invoice) error

	// Update applies the supplied fields and returns the stored invoice.
	Update(ctx context.Context, id uuid.UUID, update InvoiceUpdate) (*Invoice, error)
}

// RevenueRepository defines the interface for monthly revenue persistence
type RevenueRepository interface {
	// FindAll returns every month ordered by month.
	FindAll(ctx context.Context) ([]Revenue, error)

	// FindByMonth returns shared.ErrNotFound when the month has no row.
	FindByMonth(ctx context.Context, month string) (*Revenue, error)

	// Update applies the supplied fields and returns the stored row.
	Update(ctx context.Context, month string, update RevenueUpdate) (*Revenue, error)
}
