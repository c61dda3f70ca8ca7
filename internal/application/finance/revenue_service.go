package finance

import (
	"context"

	"github.com/dashboard/backend/internal/domain/finance"
	"github.com/dashboard/backend/internal/domain/shared"
)

const revenueEntity = "Revenue for the month"

// RevenueService handles monthly revenue operations
type RevenueService struct {
	revenueRepo finance.RevenueRepository
}

// NewRevenueService creates a new RevenueService
func NewRevenueService(revenueRepo finance.RevenueRepository) *RevenueService {
	return &RevenueService{revenueRepo: revenueRepo}
}

// List returns every month ordered by month
func (s *RevenueService) List(ctx context.Context) ([]RevenueResponse, error) {
	rows, err := s.revenueRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]RevenueResponse, len(rows))
	for i := range rows {
		responses[i] = ToRevenueResponse(&rows[i])
	}
	return responses, nil
}

// GetByMonth retrieves the revenue of month
func (s *RevenueService) GetByMonth(ctx context.Context, month string) (*RevenueResponse, error) {
	revenue, err := s.revenueRepo.FindByMonth(ctx, month)
	if err != nil {
		return nil, shared.TranslateNotFound(err, revenueEntity)
	}

	response := ToRevenueResponse(revenue)
	return &response, nil
}

// Update applies the supplied fields to the revenue of month
func (s *RevenueService) Update(ctx context.Context, month string, req UpdateRevenueRequest) (*RevenueResponse, error) {
	revenue, err := s.revenueRepo.Update(ctx, month, finance.RevenueUpdate{Revenue: req.Revenue})
	if err != nil {
		return nil, shared.TranslateNotFound(err, revenueEntity)
	}

	response := ToRevenueResponse(revenue)
	return &response, nil
}
