package finance

import (
	"context"

	"github.com/dashboard/backend/internal/domain/finance"
	"github.com/dashboard/backend/internal/domain/partner"
	"github.com/dashboard/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockInvoiceRepository is a mock implementation of InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context) ([]finance.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListRows(ctx context.Context, q shared.ListQuery) ([]finance.InvoiceRow, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.InvoiceRow), args.Error(1)
}

func (m *MockInvoiceRepository) CountMatching(ctx context.Context, search string) (int64, error) {
	args := m.Called(ctx, search)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) Latest(ctx context.Context, limit int) ([]finance.InvoiceRow, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.InvoiceRow), args.Error(1)
}

func (m *MockInvoiceRepository) StatusTotals(ctx context.Context) (finance.StatusTotals, error) {
	args := m.Called(ctx)
	return args.Get(0).(finance.StatusTotals), args.Error(1)
}

func (m *MockInvoiceRepository) Create(ctx context.Context, invoice *finance.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, id uuid.UUID, update finance.InvoiceUpdate) (*finance.Invoice, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Invoice), args.Error(1)
}

// MockRevenueRepository is a mock implementation of RevenueRepository
type MockRevenueRepository struct {
	mock.Mock
}

func (m *MockRevenueRepository) FindAll(ctx context.Context) ([]finance.Revenue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Revenue), args.Error(1)
}

func (m *MockRevenueRepository) FindByMonth(ctx context.Context, month string) (*finance.Revenue, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Revenue), args.Error(1)
}

func (m *MockRevenueRepository) Update(ctx context.Context, month string, update finance.RevenueUpdate) (*finance.Revenue, error) {
	args := m.Called(ctx, month, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Revenue), args.Error(1)
}

// MockCustomerRepository only answers the existence checks made by InvoiceService
type MockCustomerRepository struct {
	mock.Mock
	partner.CustomerRepository
}

func (m *MockCustomerRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
