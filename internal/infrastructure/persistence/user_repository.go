package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/dashboard/backend/internal/domain/identity"
	"github.com/dashboard/backend/internal/domain/shared"
	"github.com/dashboard/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return model.ToDomain(), nil
}

// FindAll returns every user ordered by name
func (r *GormUserRepository) FindAll(ctx context.Context) ([]identity.User, error) {
	var rows []models.UserModel
	if err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]identity.User, 0, len(rows))
	for i := range rows {
		users = append(users, *rows[i].ToDomain())
	}
	return users, nil
}

// ExistsByEmail checks if an email already exists
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.existsByEmail(r.db.WithContext(ctx).Where("email = ?", email))
}

// ExistsByEmailExcludingID checks if a user other than id holds email
func (r *GormUserRepository) ExistsByEmailExcludingID(ctx context.Context, email string, id uuid.UUID) (bool, error) {
	return r.existsByEmail(r.db.WithContext(ctx).Where("email = ? AND id <> ?", email, id))
}

func (r *GormUserRepository) existsByEmail(query *gorm.DB) (bool, error) {
	var count int64
	if err := query.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check user email: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new user
func (r *GormUserRepository) Create(ctx context.Context, user *identity.User) error {
	if err := r.db.WithContext(ctx).Create(models.UserModelFromDomain(user)).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update applies the supplied fields inside one transaction and returns the
// stored user. A missing user yields shared.ErrNotFound.
func (r *GormUserRepository) Update(ctx context.Context, id uuid.UUID, update identity.UserUpdate) (*identity.User, error) {
	var user *identity.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.UserModel
		if err := tx.First(&model, "id = ?", id).Error; err != nil {
			return err
		}
		user = model.ToDomain()
		if update.IsEmpty() {
			return nil
		}

		update.Apply(user)
		return tx.Model(&models.UserModel{}).Where("id = ?", id).Updates(update.Columns()).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Ensure GormUserRepository implements UserRepository
var _ identity.UserRepository = (*GormUserRepository)(nil)
