// Package partner implements the customer use cases.
package partner

import (
	"context"

	"github.com/dashboard/backend/internal/domain/partner"
	"github.com/dashboard/backend/internal/domain/shared"
	"github.com/google/uuid"
)

const customerEntity = "Customer"

// CustomerService handles customer-related business operations
type CustomerService struct {
	customerRepo partner.CustomerRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo partner.CustomerRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
	}
}

// List returns one page of customers with their invoice totals
func (s *CustomerService) List(ctx context.Context, query shared.ListQuery) ([]CustomerSummaryResponse, error) {
	summaries, err := s.customerRepo.ListSummaries(ctx, query)
	if err != nil {
		return nil, err
	}
	return ToCustomerSummaryResponses(summaries), nil
}

// All returns every customer ordered by name
func (s *CustomerService) All(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses, nil
}

// Count returns the number of customers matching search
func (s *CustomerService) Count(ctx context.Context, search string) (int64, error) {
	return s.customerRepo.CountMatching(ctx, search)
}

// TotalPages returns how many pages of pageSize the matching customers fill
func (s *CustomerService) TotalPages(ctx context.Context, search string, pageSize int) (int, error) {
	count, err := s.customerRepo.CountMatching(ctx, search)
	if err != nil {
		return 0, err
	}
	return shared.TotalPages(count, pageSize), nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateNotFound(err, customerEntity)
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer := partner.NewCustomer(req.Name, req.Email, req.ImageURL)
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}

// Update applies the supplied fields to a customer
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.Update(ctx, id, req.ToUpdate())
	if err != nil {
		return nil, shared.TranslateNotFound(err, customerEntity)
	}

	response := ToCustomerResponse(customer)
	return &response, nil
}
