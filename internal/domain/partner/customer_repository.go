package partner

import (
	"context"

	"github.com/dashboard/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID returns shared.ErrNotFound when no customer has the given ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindAll returns every customer ordered by name.
	FindAll(ctx context.Context) ([]Customer, error)

	// ListSummaries returns one page of customers whose name or email contains
	// q.Search, each with its invoice aggregates, ordered by name then id.
	ListSummaries(ctx context.Context, q shared.ListQuery) ([]CustomerSummary, error)

	// CountMatching counts customers whose name or email contains search.
	CountMatching(ctx context.Context, search string) (int64, error)

	// ExistsByID reports whether a customer with the given ID exists.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// Create inserts a new customer.
	Create(ctx context.Context, customer *Customer) error

	// Update applies the supplied fields and returns the stored customer.
	Update(ctx context.Context, id uuid.UUID, update CustomerUpdate) (*Customer, error)
}
