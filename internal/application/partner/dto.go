package partner

import (
	"github.com/dashboard/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// =============================================================================
// Customer DTOs
// =============================================================================

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Email    string `json:"email" binding:"required,max=200"`
	ImageURL string `json:"image_url" binding:"required,max=500"`
}

// UpdateCustomerRequest represents a partial update of a customer.
// Omitted fields keep their stored value.
type UpdateCustomerRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email    *string `json:"email" binding:"omitempty,min=1,max=200"`
	ImageURL *string `json:"image_url" binding:"omitempty,min=1,max=500"`
}

// ToUpdate converts the request to a domain update
func (r UpdateCustomerRequest) ToUpdate() partner.CustomerUpdate {
	return partner.CustomerUpdate{
		Name:     r.Name,
		Email:    r.Email,
		ImageURL: r.ImageURL,
	}
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
}

// CustomerSummaryResponse is a customer row of the paginated listing
type CustomerSummaryResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  int64     `json:"total_pending"`
	TotalPaid     int64     `json:"total_paid"`
}

// ToCustomerResponse converts a domain Customer to CustomerResponse
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		ImageURL: c.ImageURL,
	}
}

// ToCustomerSummaryResponses converts summaries, never returning nil
func ToCustomerSummaryResponses(summaries []partner.CustomerSummary) []CustomerSummaryResponse {
	out := make([]CustomerSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = CustomerSummaryResponse{
			ID:            s.ID,
			Name:          s.Name,
			Email:         s.Email,
			ImageURL:      s.ImageURL,
			TotalInvoices: s.TotalInvoices,
			TotalPending:  s.TotalPending,
			TotalPaid:     s.TotalPaid,
		}
	}
	return out
}
