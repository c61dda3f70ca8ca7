package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/dashboard/backend/internal/domain/finance"
	"github.com/dashboard/backend/internal/domain/shared"
	"github.com/dashboard/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const invoiceRowColumns = `i.id, i.customer_id, i.amount, i.status, i.date,
	c.name AS customer_name, c.email AS customer_email, c.image_url AS customer_image_url`

// The amount is searched through its text rendering, a deliberately fuzzy match.
var invoiceSearchColumns = []searchColumn{
	textColumn("c.name"),
	textColumn("c.email"),
	textColumn("i.status"),
	castColumn("i.amount"),
}

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// joined starts a query over invoices with a resolvable customer. Invoices
// pointing at a missing customer are excluded by the inner join.
func (r *GormInvoiceRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("invoices AS i").
		Joins("JOIN customers AS c ON c.id = i.customer_id")
}

// FindByID finds an invoice by ID
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("find invoice: %w", err)
	}
	return model.ToDomain(), nil
}

// FindAll returns every invoice, most recent first
func (r *GormInvoiceRepository) FindAll(ctx context.Context) ([]finance.Invoice, error) {
	var rows []models.InvoiceModel
	if err := r.db.WithContext(ctx).Order("date DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	invoices := make([]finance.Invoice, 0, len(rows))
	for i := range rows {
		invoices = append(invoices, *rows[i].ToDomain())
	}
	return invoices, nil
}

// ListRows returns one page of invoices joined with their customer
func (r *GormInvoiceRepository) ListRows(ctx context.Context, q shared.ListQuery) ([]finance.InvoiceRow, error) {
	var rows []models.InvoiceRow
	err := r.joined(ctx).
		Select(invoiceRowColumns).
		Scopes(matchAny(q.Search, invoiceSearchColumns...)).
		Order("i.date DESC, i.id DESC").
		Scopes(paginate(q)).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list invoice rows: %w", err)
	}
	return toInvoiceRows(rows), nil
}

// CountMatching counts joined invoice rows matching search
func (r *GormInvoiceRepository) CountMatching(ctx context.Context, search string) (int64, error) {
	var count int64
	err := r.joined(ctx).
		Scopes(matchAny(search, invoiceSearchColumns...)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return count, nil
}

// Latest returns the most recent invoices joined with their customer
func (r *GormInvoiceRepository) Latest(ctx context.Context, limit int) ([]finance.InvoiceRow, error) {
	var rows []models.InvoiceRow
	err := r.joined(ctx).
		Select(invoiceRowColumns).
		Order("i.date DESC, i.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list latest invoices: %w", err)
	}
	return toInvoiceRows(rows), nil
}

// StatusTotals sums the amounts of paid and pending invoices, zero when none
func (r *GormInvoiceRepository) StatusTotals(ctx context.Context) (finance.StatusTotals, error) {
	var result struct {
		Paid    int64
		Pending int64
	}
	err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Select(`COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS paid,
			COALESCE(SUM(CASE WHEN status = ? THEN amount ELSE 0 END), 0) AS pending`,
			finance.InvoiceStatusPaid, finance.InvoiceStatusPending).
		Scan(&result).Error
	if err != nil {
		return finance.StatusTotals{}, fmt.Errorf("sum invoices by status: %w", err)
	}
	return finance.StatusTotals{Paid: result.Paid, Pending: result.Pending}, nil
}

// Create inserts a new invoice
func (r *GormInvoiceRepository) Create(ctx context.Context, invoice *finance.Invoice) error {
	if err := r.db.WithContext(ctx).Create(models.InvoiceModelFromDomain(invoice)).Error; err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}
	return nil
}

// Update applies the supplied fields inside one transaction and returns the
// stored invoice. A missing invoice yields shared.ErrNotFound.
func (r *GormInvoiceRepository) Update(ctx context.Context, id uuid.UUID, update finance.InvoiceUpdate) (*finance.Invoice, error) {
	var invoice *finance.Invoice
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.InvoiceModel
		if err := tx.First(&model, "id = ?", id).Error; err != nil {
			return err
		}
		invoice = model.ToDomain()
		if update.IsEmpty() {
			return nil
		}

		update.Apply(invoice)
		return tx.Model(&models.InvoiceModel{}).Where("id = ?", id).Updates(update.Columns()).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return invoice, nil
}

func toInvoiceRows(rows []models.InvoiceRow) []finance.InvoiceRow {
	out := make([]finance.InvoiceRow, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ finance.InvoiceRepository = (*GormInvoiceRepository)(nil)
