package handler

import (
	"net/http"

	financeapp "github.com/dashboard/backend/internal/application/finance"
	"github.com/dashboard/backend/internal/infrastructure/config"
	"github.com/dashboard/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

const invoiceEntity = "Invoice"

// InvoiceHandler handles invoice-related API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *financeapp.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(pagination config.PaginationConfig, invoiceService *financeapp.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		BaseHandler:    NewBaseHandler(pagination),
		invoiceService: invoiceService,
	}
}

// List handles GET /invoices?query=&page=&limit=
func (h *InvoiceHandler) List(c *gin.Context) {
	req, ok := h.bindList(c)
	if !ok {
		return
	}

	invoices, err := h.invoiceService.List(c.Request.Context(), req.ToListQuery())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// All handles GET /invoices/all
func (h *InvoiceHandler) All(c *gin.Context) {
	invoices, err := h.invoiceService.All(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// Count handles GET /invoices/count?query=
func (h *InvoiceHandler) Count(c *gin.Context) {
	req, ok := h.bindSearch(c)
	if !ok {
		return
	}

	count, err := h.invoiceService.Count(c.Request.Context(), req.Query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// Pages handles GET /invoices/pages?query=&limit=
func (h *InvoiceHandler) Pages(c *gin.Context) {
	req, ok := h.bindPages(c)
	if !ok {
		return
	}

	pages, err := h.invoiceService.TotalPages(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PagesResponse{TotalPages: pages})
}

// Latest handles GET /invoices/latest
func (h *InvoiceHandler) Latest(c *gin.Context) {
	invoices, err := h.invoiceService.Latest(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// Status handles GET /invoices/status
func (h *InvoiceHandler) Status(c *gin.Context) {
	totals, err := h.invoiceService.StatusTotals(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

// GetByID handles GET /invoices/:id
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, invoiceEntity)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// Create handles POST /invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req financeapp.CreateInvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	invoice, err := h.invoiceService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// Update handles PATCH /invoices/:id
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c, invoiceEntity)
	if !ok {
		return
	}

	var req financeapp.UpdateInvoiceRequest
	if !h.bindJSON(c, &req) {
		return
	}

	invoice, err := h.invoiceService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}
