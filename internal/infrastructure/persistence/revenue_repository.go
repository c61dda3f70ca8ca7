package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/dashboard/backend/internal/domain/finance"
	"github.com/dashboard/backend/internal/domain/shared"
	"github.com/dashboard/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormRevenueRepository implements RevenueRepository using GORM
type GormRevenueRepository struct {
	db *gorm.DB
}

// NewGormRevenueRepository creates a new GormRevenueRepository
func NewGormRevenueRepository(db *gorm.DB) *GormRevenueRepository {
	return &GormRevenueRepository{db: db}
}

// FindAll returns every month ordered by month
func (r *GormRevenueRepository) FindAll(ctx context.Context) ([]finance.Revenue, error) {
	var rows []models.RevenueModel
	if err := r.db.WithContext(ctx).Order("month ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list revenue: %w", err)
	}

	revenue := make([]finance.Revenue, 0, len(rows))
	for i := range rows {
		revenue = append(revenue, *rows[i].ToDomain())
	}
	return revenue, nil
}

// FindByMonth finds the revenue row of month
func (r *GormRevenueRepository) FindByMonth(ctx context.Context, month string) (*finance.Revenue, error) {
	var model models.RevenueModel
	if err := r.db.WithContext(ctx).First(&model, "month = ?", month).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("find revenue: %w", err)
	}
	return model.ToDomain(), nil
}

// Update applies the supplied fields inside one transaction and returns the
// stored row. A missing month yields shared.ErrNotFound.
func (r *GormRevenueRepository) Update(ctx context.Context, month string, update finance.RevenueUpdate) (*finance.Revenue, error) {
	var revenue *finance.Revenue
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.RevenueModel
		if err := tx.First(&model, "month = ?", month).Error; err != nil {
			return err
		}
		revenue = model.ToDomain()
		if update.IsEmpty() {
			return nil
		}

		update.Apply(revenue)
		return tx.Model(&models.RevenueModel{}).Where("month = ?", month).Updates(update.Columns()).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("update revenue: %w", err)
	}
	return revenue, nil
}

// Ensure GormRevenueRepository implements RevenueRepository
var _ finance.RevenueRepository = (*GormRevenueRepository)(nil)
