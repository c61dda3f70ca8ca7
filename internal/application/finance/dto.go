package finance

import (
	"time"

	"github.com/dashboard/backend/internal/domain/finance"
	"github.com/google/uuid"
)

// =============================================================================
// Invoice DTOs
// =============================================================================

// CreateInvoiceRequest represents a request to create an invoice.
// Date is an ISO calendar date (YYYY-MM-DD).
type CreateInvoiceRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	Amount     *int64    `json:"amount" binding:"required"`
	Status     string    `json:"status" binding:"required,max=50"`
	Date       string    `json:"date" binding:"required,datetime=2006-01-02"`
}

// UpdateInvoiceRequest represents a partial update of an invoice
type UpdateInvoiceRequest struct {
	CustomerID *uuid.UUID `json:"customer_id"`
	Amount     *int64     `json:"amount"`
	Status     *string    `json:"status" binding:"omitempty,min=1,max=50"`
	Date       *string    `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ToUpdate converts the request to a domain update. Date has already been
// validated by binding, so a parse failure is reported to the caller.
func (r UpdateInvoiceRequest) ToUpdate() (finance.InvoiceUpdate, error) {
	update := finance.InvoiceUpdate{
		CustomerID: r.CustomerID,
		Amount:     r.Amount,
		Status:     r.Status,
	}
	if r.Date != nil {
		date, err := time.Parse(finance.DateLayout, *r.Date)
		if err != nil {
			return finance.InvoiceUpdate{}, err
		}
		update.Date = &date
	}
	return update, nil
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	Date       string    `json:"date"`
}

// InvoiceRowResponse is an invoice with the name, email and image of its customer
type InvoiceRowResponse struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Amount     int64     `json:"amount"`
	Status     string    `json:"status"`
	Date       string    `json:"date"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ImageURL   string    `json:"image_url"`
}

// StatusTotalsResponse holds the paid and pending amounts
type StatusTotalsResponse struct {
	Paid    int64 `json:"paid"`
	Pending int64 `json:"pending"`
}

// ToInvoiceResponse converts a domain Invoice to InvoiceResponse
func ToInvoiceResponse(inv *finance.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     inv.Amount,
		Status:     inv.Status,
		Date:       inv.Date.Format(finance.DateLayout),
	}
}

// ToInvoiceRowResponses converts joined rows, never returning nil
func ToInvoiceRowResponses(rows []finance.InvoiceRow) []InvoiceRowResponse {
	out := make([]InvoiceRowResponse, len(rows))
	for i, r := range rows {
		out[i] = InvoiceRowResponse{
			ID:         r.ID,
			CustomerID: r.CustomerID,
			Amount:     r.Amount,
			Status:     r.Status,
			Date:       r.Date.Format(finance.DateLayout),
			Name:       r.CustomerName,
			Email:      r.CustomerEmail,
			ImageURL:   r.CustomerImageURL,
		}
	}
	return out
}

// =============================================================================
// Revenue DTOs
// =============================================================================

// UpdateRevenueRequest represents a partial update of a month's revenue
type UpdateRevenueRequest struct {
	Revenue *int64 `json:"revenue"`
}

// RevenueResponse represents a month's revenue in API responses
type RevenueResponse struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

// ToRevenueResponse converts a domain Revenue to RevenueResponse
func ToRevenueResponse(r *finance.Revenue) RevenueResponse {
	return RevenueResponse{Month: r.Month, Revenue: r.Revenue}
}
