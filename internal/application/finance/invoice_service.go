// Package finance implements the invoice and revenue use cases.
package finance

import (
	"context"
	"time"

	"github.com/dashboard/backend/internal/domain/finance"
	"github.com/dashboard/backend/internal/domain/partner"
	"github.com/dashboard/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// LatestInvoicesLimit is the number of invoices returned by Latest.
const LatestInvoicesLimit = 5

const invoiceEntity = "Invoice"

// InvoiceService handles invoice-related business operations
type InvoiceService struct {
	invoiceRepo  finance.InvoiceRepository
	customerRepo partner.CustomerRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo finance.InvoiceRepository, customerRepo partner.CustomerRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
	}
}

// List returns one page of invoices joined with their customer
func (s *InvoiceService) List(ctx context.Context, query shared.ListQuery) ([]InvoiceRowResponse, error) {
	rows, err := s.invoiceRepo.ListRows(ctx, query)
	if err != nil {
		return nil, err
	}
	return ToInvoiceRowResponses(rows), nil
}

// All returns every invoice, most recent first
func (s *InvoiceService) All(ctx context.Context) ([]InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses, nil
}

// Count returns the number of invoices matching search
func (s *InvoiceService) Count(ctx context.Context, search string) (int64, error) {
	return s.invoiceRepo.CountMatching(ctx, search)
}

// TotalPages returns how many pages of pageSize the matching invoices fill
func (s *InvoiceService) TotalPages(ctx context.Context, search string, pageSize int) (int, error) {
	count, err := s.invoiceRepo.CountMatching(ctx, search)
	if err != nil {
		return 0, err
	}
	return shared.TotalPages(count, pageSize), nil
}

// Latest returns the most recent invoices. An empty store yields an empty slice.
func (s *InvoiceService) Latest(ctx context.Context) ([]InvoiceRowResponse, error) {
	rows, err := s.invoiceRepo.Latest(ctx, LatestInvoicesLimit)
	if err != nil {
		return nil, err
	}
	return ToInvoiceRowResponses(rows), nil
}

// StatusTotals returns the paid and pending amounts
func (s *InvoiceService) StatusTotals(ctx context.Context) (*StatusTotalsResponse, error) {
	totals, err := s.invoiceRepo.StatusTotals(ctx)
	if err != nil {
		return nil, err
	}
	return &StatusTotalsResponse{Paid: totals.Paid, Pending: totals.Pending}, nil
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.TranslateNotFound(err, invoiceEntity)
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Create creates a new invoice for an existing customer
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	date, err := time.Parse(finance.DateLayout, req.Date)
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Invalid invoice date")
	}
	if err := s.ensureCustomer(ctx, req.CustomerID); err != nil {
		return nil, err
	}

	invoice := finance.NewInvoice(req.CustomerID, *req.Amount, req.Status, date)
	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Update applies the supplied fields to an invoice. Re-pointing the invoice
// requires the new customer to exist.
func (s *InvoiceService) Update(ctx context.Context, id uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	update, err := req.ToUpdate()
	if err != nil {
		return nil, shared.NewDomainError(shared.CodeInvalidInput, "Invalid invoice date")
	}
	if update.CustomerID != nil {
		if err := s.ensureCustomer(ctx, *update.CustomerID); err != nil {
			return nil, err
		}
	}

	invoice, err := s.invoiceRepo.Update(ctx, id, update)
	if err != nil {
		return nil, shared.TranslateNotFound(err, invoiceEntity)
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

func (s *InvoiceService) ensureCustomer(ctx context.Context, customerID uuid.UUID) error {
	exists, err := s.customerRepo.ExistsByID(ctx, customerID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewNotFoundError("Customer")
	}
	return nil
}
