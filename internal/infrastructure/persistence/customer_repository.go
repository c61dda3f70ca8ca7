package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/dashboard/backend/internal/domain/finance"
	"github.com/dashboard/backend/internal/domain/partner"
	"github.com/dashboard/backend/internal/domain/shared"
	"github.com/dashboard/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// customerSummaryColumns aggregates every invoice of a customer. Each
// aggregate defaults to zero so customers without invoices still report
// numbers rather than NULL.
const customerSummaryColumns = `c.id, c.name, c.email, c.image_url,
	COUNT(i.id) AS total_invoices,
	COALESCE(SUM(CASE WHEN i.status = ? THEN i.amount ELSE 0 END), 0) AS total_pending,
	COALESCE(SUM(CASE WHEN i.status = ? THEN i.amount ELSE 0 END), 0) AS total_paid`

var customerSearchColumns = []searchColumn{
	textColumn("c.name"),
	textColumn("c.email"),
}

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return model.ToDomain(), nil
}

// FindAll returns every customer ordered by name
func (r *GormCustomerRepository) FindAll(ctx context.Context) ([]partner.Customer, error) {
	var rows []models.CustomerModel
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	customers := make([]partner.Customer, 0, len(rows))
	for i := range rows {
		customers = append(customers, *rows[i].ToDomain())
	}
	return customers, nil
}

// ListSummaries returns one page of customers with their invoice totals.
// The outer join keeps customers without invoices; pagination is applied
// after grouping so every total covers all of a customer's invoices.
func (r *GormCustomerRepository) ListSummaries(ctx context.Context, q shared.ListQuery) ([]partner.CustomerSummary, error) {
	var rows []models.CustomerSummaryRow
	err := r.db.WithContext(ctx).
		Table("customers AS c").
		Select(customerSummaryColumns, finance.InvoiceStatusPending, finance.InvoiceStatusPaid).
		Joins("LEFT JOIN invoices AS i ON i.customer_id = c.id").
		Scopes(matchAny(q.Search, customerSearchColumns...)).
		Group("c.id").
		Order("c.name ASC, c.id ASC").
		Scopes(paginate(q)).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list customer summaries: %w", err)
	}

	summaries := make([]partner.CustomerSummary, 0, len(rows))
	for i := range rows {
		summaries = append(summaries, rows[i].ToDomain())
	}
	return summaries, nil
}

// CountMatching counts customers whose name or email contains search
func (r *GormCustomerRepository) CountMatching(ctx context.Context, search string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("customers AS c").
		Scopes(matchAny(search, customerSearchColumns...)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return count, nil
}

// ExistsByID reports whether a customer with the given ID exists
func (r *GormCustomerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.CustomerModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check customer: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new customer
func (r *GormCustomerRepository) Create(ctx context.Context, customer *partner.Customer) error {
	if err := r.db.WithContext(ctx).Create(models.CustomerModelFromDomain(customer)).Error; err != nil {
		return fmt.Errorf("create customer: %w", err)
	}
	return nil
}

// Update applies the supplied fields inside one transaction and returns the
// stored customer. A missing customer yields shared.ErrNotFound.
func (r *GormCustomerRepository) Update(ctx context.Context, id uuid.UUID, update partner.CustomerUpdate) (*partner.Customer, error) {
	var customer *partner.Customer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.CustomerModel
		if err := tx.First(&model, "id = ?", id).Error; err != nil {
			return err
		}
		customer = model.ToDomain()
		if update.IsEmpty() {
			return nil
		}

		update.Apply(customer)
		return tx.Model(&models.CustomerModel{}).Where("id = ?", id).Updates(update.Columns()).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return customer, nil
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ partner.CustomerRepository = (*GormCustomerRepository)(nil)
